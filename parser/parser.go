package parser

import "github.com/arlyon/levelhm/ast"

// Parser is a recursive-descent parser over the expression grammar, with
// one token of lookahead (cur/peek). Backtracking is never needed here: the
// leading keyword (let/fun) or its absence picks the production uniquely.
type Parser struct {
	lex *Lexer

	cur  Token
	peek Token
}

// NewParser returns a Parser ready to read from src.
func NewParser(src string) *Parser {
	p := &Parser{lex: NewLexer(src)}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

// ParseExpr parses src as a complete expression; trailing, unconsumed
// tokens are a ParseError.
func ParseExpr(src string) (ast.Expr, error) {
	p := NewParser(src)
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != EOF {
		return nil, errorf(p.cur, "unexpected trailing input %s", p.cur)
	}
	return expr, nil
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	switch p.cur.Type {
	case LET:
		return p.parseLet()
	case FUN:
		return p.parseFun()
	default:
		return p.parseApp()
	}
}

func (p *Parser) parseLet() (ast.Expr, error) {
	p.next() // consume "let"

	if p.cur.Type != IDENT {
		return nil, errorf(p.cur, "expected identifier after let, got %s", p.cur)
	}
	name := p.cur.Literal
	p.next()

	if p.cur.Type != ASSIGN {
		return nil, errorf(p.cur, "expected '=', got %s", p.cur)
	}
	p.next()

	bound, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.cur.Type != IN {
		return nil, errorf(p.cur, "expected 'in', got %s", p.cur)
	}
	p.next()

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.Let{Name: name, Bound: bound, Body: body}, nil
}

func (p *Parser) parseFun() (ast.Expr, error) {
	p.next() // consume "fun"

	var params []string
	for p.cur.Type == IDENT {
		params = append(params, p.cur.Literal)
		p.next()
	}
	if len(params) == 0 {
		return nil, errorf(p.cur, "expected at least one parameter after fun, got %s", p.cur)
	}

	if p.cur.Type != ARROW {
		return nil, errorf(p.cur, "expected '->', got %s", p.cur)
	}
	p.next()

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.Fun{Params: params, Body: body}, nil
}

// parseApp parses atom ( "(" expr ("," expr)* ")" )*, left-associative.
func (p *Parser) parseApp() (ast.Expr, error) {
	expr, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for p.cur.Type == LPAREN {
		p.next() // consume "("

		var args []ast.Expr
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.cur.Type != COMMA {
				break
			}
			p.next() // consume ","
		}

		if p.cur.Type != RPAREN {
			return nil, errorf(p.cur, "expected ')', got %s", p.cur)
		}
		p.next()

		expr = &ast.Call{Func: expr, Args: args}
	}

	return expr, nil
}

func (p *Parser) parseAtom() (ast.Expr, error) {
	switch p.cur.Type {
	case LPAREN:
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.Type != RPAREN {
			return nil, errorf(p.cur, "expected ')', got %s", p.cur)
		}
		p.next()
		return inner, nil

	case IDENT:
		name := p.cur.Literal
		p.next()
		return &ast.Var{Name: name}, nil

	default:
		return nil, errorf(p.cur, "expected an expression, got %s", p.cur)
	}
}
