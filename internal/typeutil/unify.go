package typeutil

import "github.com/arlyon/levelhm/types"

// Unify makes a and b structurally equal by mutating unification variables
// in place, propagating level information as it goes and detecting cycles
// along the way (see occursAdjustLevels in the original eager algorithm;
// here cycle detection is folded into the gray-marking performed while
// descending into composite nodes).
func (ctx *Context) Unify(a, b types.Type) error {
	a, b = types.Find(a), types.Find(b)
	if a == b {
		return nil
	}

	if va, ok := a.(*types.Var); ok {
		return ctx.unifyVar(va, b)
	}
	if vb, ok := b.(*types.Var); ok {
		return ctx.unifyVar(vb, a)
	}

	switch at := a.(type) {
	case types.Const:
		if bt, ok := b.(types.Const); ok && at.Name == bt.Name {
			return nil
		}
		return &FailError{A: a, B: b}

	case *types.Arrow:
		bt, ok := b.(*types.Arrow)
		if !ok {
			return &FailError{A: a, B: b}
		}
		return ctx.unifyComposite(at, bt, types.Children(at), types.Children(bt))

	case *types.App:
		bt, ok := b.(*types.App)
		if !ok {
			return &FailError{A: a, B: b}
		}
		return ctx.unifyComposite(at, bt, types.Children(at), types.Children(bt))

	default:
		return &FailError{A: a, B: b}
	}
}

// unifyVar links an unbound variable v to t, after lowering any levels t
// holds that are deeper than v's own. v must not itself occur in t as the
// same cell; the caller's pointer-identity check before reaching here rules
// that out for the direct case. An occurs-through-a-composite cycle is caught
// here by UpdateLevel's gray check only when that composite is gray (being
// unified) at this moment; otherwise the link is made and the cycle is caught
// later, by a gray check in a later traversal or by the final cycle check
// after inference.
func (ctx *Context) unifyVar(v *types.Var, t types.Type) error {
	if err := ctx.UpdateLevel(v.Level(), t); err != nil {
		return err
	}
	v.SetLink(t)
	return nil
}

// unifyComposite unifies two same-shaped composite nodes (both Arrow or
// both App) child by child, gray-marking both for the duration so a
// structural cycle reentering either one is caught.
func (ctx *Context) unifyComposite(a, b types.Composite, childrenA, childrenB []types.Type) error {
	if a.LevelNew() == types.GrayLevel || b.LevelNew() == types.GrayLevel {
		return &CycleError{Type: a}
	}
	if len(childrenA) != len(childrenB) {
		return &LengthError{A: a, B: b}
	}

	lvl := a.LevelNew()
	if b.LevelNew() < lvl {
		lvl = b.LevelNew()
	}
	oldA, oldB := a.LevelNew(), b.LevelNew()
	a.SetLevelNew(types.GrayLevel)
	b.SetLevelNew(types.GrayLevel)

	for i := range childrenA {
		if err := ctx.unifyLevel(lvl, childrenA[i], childrenB[i]); err != nil {
			a.SetLevelNew(oldA)
			b.SetLevelNew(oldB)
			return err
		}
	}

	a.SetLevelNew(lvl)
	b.SetLevelNew(lvl)
	return nil
}

// unifyLevel propagates the shallower level lvl into a before unifying a
// with b, so whichever side hasn't yet been constrained to lvl picks it up.
func (ctx *Context) unifyLevel(lvl int, a, b types.Type) error {
	a = types.Find(a)
	if err := ctx.UpdateLevel(lvl, a); err != nil {
		return err
	}
	return ctx.Unify(a, b)
}
