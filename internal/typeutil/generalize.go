package typeutil

import "github.com/arlyon/levelhm/types"

// Generalize promotes every unbound variable reachable from t whose level
// is strictly greater than CurLevel to generic status, turning t into a
// reusable scheme. It must run after leaving the let-bound expression's
// scope (CurLevel already restored to the surrounding level) and always
// drains the adjustment queue first, since gen inspects levels that may
// not have been walked yet.
func (ctx *Context) Generalize(t types.Type) error {
	if err := ctx.ForceAdjQueue(); err != nil {
		return err
	}
	ctx.generalizeWalk(t)
	return nil
}

func (ctx *Context) generalizeWalk(t types.Type) {
	switch t := types.Find(t).(type) {
	case types.Const:
		return

	case *types.Var:
		if t.Level() > ctx.CurLevel {
			t.SetLevel(types.GenericLevel)
		}
		return

	case types.Composite:
		if t.LevelNew() <= ctx.CurLevel {
			// Still free in an enclosing scope; leave it ordinary.
			return
		}
		children := types.Children(t)
		for _, c := range children {
			ctx.generalizeWalk(c)
		}
		// Some descendants may have just been retagged generic; re-derive
		// this node's level from its (now possibly-generic) children so it
		// stays an accurate upper bound.
		maxLevel := 0
		for i, c := range children {
			lvl := types.Level(types.Find(c))
			if i == 0 || lvl > maxLevel {
				maxLevel = lvl
			}
		}
		t.SetLevelOld(maxLevel)
		t.SetLevelNew(maxLevel)
	}
}
