// Package typeutil holds the process-wide state of a single top-level
// inference call — current level, the gensym counter and the deferred
// adjustment queue — threaded as fields of a Context value rather than as
// package globals, per the "re-architect as fields of an inference context"
// design note. A Context must be Reset at the entry of every top-level
// inference; sharing one across concurrent inferences is undefined.
package typeutil

import "github.com/arlyon/levelhm/types"

// Context carries the mutable state a single top-level inference needs:
// the current let-nesting depth, the next gensym id for fresh variables,
// and the queue of composite nodes whose level_new may need lowering.
type Context struct {
	CurLevel int

	nextID   int
	adjQueue []types.Composite
}

// New returns a freshly reset Context.
func New() *Context {
	return &Context{}
}

// Reset clears a Context back to a clean slate, ready for a new top-level
// inference call.
func (ctx *Context) Reset() {
	ctx.CurLevel = 0
	ctx.nextID = 0
	ctx.adjQueue = ctx.adjQueue[:0]
}

// EnterLevel increments the current level; called around a let-bound
// expression.
func (ctx *Context) EnterLevel() { ctx.CurLevel++ }

// LeaveLevel decrements the current level, back to the enclosing scope.
func (ctx *Context) LeaveLevel() { ctx.CurLevel-- }

// NewVar allocates a fresh unbound variable at the current level.
func (ctx *Context) NewVar() *types.Var {
	v := types.NewVar(ctx.nextID, ctx.CurLevel)
	ctx.nextID++
	return v
}

// NewVarAtLevel allocates a fresh unbound variable at an explicit level,
// used by the scheme parser to create generic variables directly at
// GenericLevel.
func (ctx *Context) NewVarAtLevel(level int) *types.Var {
	v := types.NewVar(ctx.nextID, level)
	ctx.nextID++
	return v
}

// NewArrow allocates a fresh Arrow stamped at the current level.
func (ctx *Context) NewArrow(args []types.Type, ret types.Type) *types.Arrow {
	return types.NewArrow(args, ret, ctx.CurLevel)
}

// NewApp allocates a fresh App stamped at the current level.
func (ctx *Context) NewApp(head types.Type, args []types.Type) *types.App {
	return types.NewApp(head, args, ctx.CurLevel)
}
