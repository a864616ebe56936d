// Package ast defines the expression surface syntax's abstract syntax tree:
// variable references, multi-argument lambdas, multi-argument application
// and non-recursive let-bindings. The tree is immutable once parsed.
package ast

// Expr is any expression node.
type Expr interface {
	exprNode()
	// ExprName names the node's kind, for error messages.
	ExprName() string
}

// Var is an identifier reference.
type Var struct {
	Name string
}

func (*Var) exprNode()          {}
func (*Var) ExprName() string   { return "variable" }

// Fun is a multi-argument lambda: fun x y -> body.
type Fun struct {
	Params []string
	Body   Expr
}

func (*Fun) exprNode()        {}
func (*Fun) ExprName() string { return "function" }

// Call is a multi-argument application: f(a, b, c).
type Call struct {
	Func Expr
	Args []Expr
}

func (*Call) exprNode()        {}
func (*Call) ExprName() string { return "application" }

// Let is a non-recursive let-binding: let x = bound in body.
type Let struct {
	Name  string
	Bound Expr
	Body  Expr
}

func (*Let) exprNode()        {}
func (*Let) ExprName() string { return "let" }
