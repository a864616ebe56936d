package typeutil

import "github.com/arlyon/levelhm/types"

// Instantiate produces a fresh, monomorphic copy of a scheme t: every
// generic variable is replaced by a newly allocated unbound variable at the
// current level, with shared occurrences of the same generic variable
// mapped to the same fresh variable. Non-generic substructure is returned
// as-is (shared, not copied).
func (ctx *Context) Instantiate(t types.Type) types.Type {
	if !types.IsGeneric(t) {
		return t
	}
	lookup := make(map[int]*types.Var)
	return ctx.visitInstantiate(t, lookup)
}

func (ctx *Context) visitInstantiate(t types.Type, lookup map[int]*types.Var) types.Type {
	t = types.Find(t)
	if !types.IsGeneric(t) {
		return t
	}

	switch t := t.(type) {
	case *types.Var:
		if tv, ok := lookup[t.Id()]; ok {
			return tv
		}
		tv := ctx.NewVar()
		lookup[t.Id()] = tv
		return tv

	case *types.Arrow:
		args := make([]types.Type, len(t.Args))
		for i, a := range t.Args {
			args[i] = ctx.visitInstantiate(a, lookup)
		}
		ret := ctx.visitInstantiate(t.Return, lookup)
		return ctx.NewArrow(args, ret)

	case *types.App:
		args := make([]types.Type, len(t.Args))
		for i, a := range t.Args {
			args[i] = ctx.visitInstantiate(a, lookup)
		}
		head := ctx.visitInstantiate(t.Head, lookup)
		return ctx.NewApp(head, args)

	default:
		return t
	}
}
