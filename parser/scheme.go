package parser

import (
	"github.com/arlyon/levelhm/internal/typeutil"
	"github.com/arlyon/levelhm/types"
)

// schemeParser parses the type-scheme grammar (spec grammar §6.2), used to
// build the builtin environment's entries from readable scheme literals
// instead of hand-built struct trees.
type schemeParser struct {
	ctx *typeutil.Context

	lex  *Lexer
	cur  Token
	peek Token

	generics map[string]*types.Var
}

// ParseScheme parses src as a complete type scheme: an optional
// forall[...] header naming generic variables, followed by a type. Bare
// identifiers not bound by the header become Const. ctx supplies fresh
// variable ids; callers typically share one Context across an entire
// builtins table so ids stay unique.
func ParseScheme(ctx *typeutil.Context, src string) (types.Type, error) {
	p := &schemeParser{ctx: ctx, lex: NewLexer(src), generics: make(map[string]*types.Var)}
	p.next()
	p.next()

	t, err := p.parseScheme()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != EOF {
		return nil, errorf(p.cur, "unexpected trailing input %s", p.cur)
	}
	markGenericLevels(t)
	return t, nil
}

func (p *schemeParser) next() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *schemeParser) parseScheme() (types.Type, error) {
	if p.cur.Type == FORALL {
		p.next() // consume "forall"
		if p.cur.Type != LBRACKET {
			return nil, errorf(p.cur, "expected '[' after forall, got %s", p.cur)
		}
		p.next()
		for p.cur.Type == IDENT {
			name := p.cur.Literal
			p.generics[name] = p.ctx.NewVarAtLevel(types.GenericLevel)
			p.next()
		}
		if p.cur.Type != RBRACKET {
			return nil, errorf(p.cur, "expected ']', got %s", p.cur)
		}
		p.next()
	}
	return p.parseTy()
}

// parseTy implements:
//
//	ty := tyatom bracket* ("->" ty)?
//	    | "(" ty ("," ty)* ")" ("->" ty)?
func (p *schemeParser) parseTy() (types.Type, error) {
	if p.cur.Type == LPAREN {
		p.next()
		var elems []types.Type
		for {
			t, err := p.parseTy()
			if err != nil {
				return nil, err
			}
			elems = append(elems, t)
			if p.cur.Type != COMMA {
				break
			}
			p.next()
		}
		if p.cur.Type != RPAREN {
			return nil, errorf(p.cur, "expected ')', got %s", p.cur)
		}
		p.next()

		if p.cur.Type == ARROW {
			p.next()
			ret, err := p.parseTy()
			if err != nil {
				return nil, err
			}
			return p.ctx.NewArrow(elems, ret), nil
		}
		if len(elems) != 1 {
			return nil, errorf(p.cur, "expected '->' after a parenthesized type list")
		}
		return elems[0], nil
	}

	if p.cur.Type != IDENT {
		return nil, errorf(p.cur, "expected a type, got %s", p.cur)
	}
	base := p.parseTyatom()

	for p.cur.Type == LBRACKET {
		args, err := p.parseBracket()
		if err != nil {
			return nil, err
		}
		base = p.ctx.NewApp(base, args)
	}

	if p.cur.Type == ARROW {
		p.next()
		ret, err := p.parseTy()
		if err != nil {
			return nil, err
		}
		return p.ctx.NewArrow([]types.Type{base}, ret), nil
	}

	return base, nil
}

func (p *schemeParser) parseTyatom() types.Type {
	name := p.cur.Literal
	p.next()
	if v, ok := p.generics[name]; ok {
		return v
	}
	return types.Const{Name: name}
}

// parseBracket implements: bracket := "[" ty ("," ty)* "]"
func (p *schemeParser) parseBracket() ([]types.Type, error) {
	p.next() // consume "["
	var args []types.Type
	for {
		t, err := p.parseTy()
		if err != nil {
			return nil, err
		}
		args = append(args, t)
		if p.cur.Type != COMMA {
			break
		}
		p.next()
	}
	if p.cur.Type != RBRACKET {
		return nil, errorf(p.cur, "expected ']', got %s", p.cur)
	}
	p.next()
	return args, nil
}

// markGenericLevels stamps every composite node reachable from t with
// level_new = level_old = the highest level among its children, so that a
// scheme literal built directly from source (rather than produced by
// Generalize) still reports IsGeneric correctly wherever it contains a
// generic variable. Returns that level.
func markGenericLevels(t types.Type) int {
	switch t := t.(type) {
	case types.Const:
		return 0

	case *types.Var:
		if t.IsLink() {
			return markGenericLevels(types.Find(t))
		}
		return t.Level()

	case *types.Arrow:
		max := markGenericLevels(t.Return)
		for _, a := range t.Args {
			if l := markGenericLevels(a); l > max {
				max = l
			}
		}
		t.SetLevelOld(max)
		t.SetLevelNew(max)
		return max

	case *types.App:
		max := markGenericLevels(t.Head)
		for _, a := range t.Args {
			if l := markGenericLevels(a); l > max {
				max = l
			}
		}
		t.SetLevelOld(max)
		t.SetLevelNew(max)
		return max

	default:
		return 0
	}
}
