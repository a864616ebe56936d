// Package construct offers small, readable constructors over packages
// types and ast, so tests can build expressions and types without spelling
// out struct literals everywhere.
package construct

import (
	"github.com/arlyon/levelhm/ast"
	"github.com/arlyon/levelhm/types"
)

// Types:

// TConst builds a nullary type constructor: int, bool, etc.
func TConst(name string) types.Const { return types.Const{Name: name} }

// TVar builds a unification variable with the given id and binding level.
func TVar(id, level int) *types.Var { return types.NewVar(id, level) }

// TArrow builds a function type: (args...) -> ret, stamped at level 0 (use
// within the inference engine always goes through typeutil.Context's own
// constructors instead, which stamp the current level).
func TArrow(args []types.Type, ret types.Type) *types.Arrow {
	return types.NewArrow(args, ret, 0)
}

// TArrow1 builds a single-argument function type: arg -> ret.
func TArrow1(arg, ret types.Type) *types.Arrow {
	return TArrow([]types.Type{arg}, ret)
}

// TApp builds a type application: head[args...].
func TApp(head types.Type, args ...types.Type) *types.App {
	return types.NewApp(head, args, 0)
}

// Expressions:

// Var builds a variable reference.
func Var(name string) *ast.Var { return &ast.Var{Name: name} }

// Fun builds a multi-argument lambda.
func Fun(params []string, body ast.Expr) *ast.Fun {
	return &ast.Fun{Params: params, Body: body}
}

// Fun1 builds a single-argument lambda.
func Fun1(param string, body ast.Expr) *ast.Fun {
	return Fun([]string{param}, body)
}

// Call builds a multi-argument application: f(args...).
func Call(fn ast.Expr, args ...ast.Expr) *ast.Call {
	return &ast.Call{Func: fn, Args: args}
}

// Let builds a non-recursive let-binding: let name = bound in body.
func Let(name string, bound, body ast.Expr) *ast.Let {
	return &ast.Let{Name: name, Bound: bound, Body: body}
}
