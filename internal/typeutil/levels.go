package typeutil

import "github.com/arlyon/levelhm/types"

// UpdateLevel lowers the recorded level of an unbound variable reachable
// through t to l, if l is tighter than what's currently recorded. For a
// composite node this does not recurse into its children immediately;
// instead the node's level_new is lowered and, the first time it becomes
// dirty, it is queued for the next ForceAdjQueue to actually walk its
// children. This is the trick that keeps update_level O(1) amortized.
func (ctx *Context) UpdateLevel(l int, t types.Type) error {
	return ctx.updateLevel(l, t, &ctx.adjQueue)
}

func (ctx *Context) updateLevel(l int, t types.Type, queue *[]types.Composite) error {
	switch t := types.Find(t).(type) {
	case types.Const:
		return nil

	case *types.Var:
		if l < t.Level() {
			t.SetLevel(l)
		}
		return nil

	case types.Composite:
		if t.LevelNew() == types.GrayLevel {
			return &CycleError{Type: t}
		}
		if l < t.LevelNew() {
			if t.LevelOld() == t.LevelNew() {
				// Wasn't already dirty: this is the first tightening
				// since it was last adjusted, so queue it.
				*queue = append(*queue, t)
			}
			t.SetLevelNew(l)
		}
		return nil

	default:
		return nil
	}
}

// ForceAdjQueue drains the adjustment queue exactly once: every node queued
// by UpdateLevel since the last drain has its children's levels actually
// walked and lowered. Nodes outside the scope currently being generalized
// (level_old <= CurLevel) are re-queued unchanged so a later, outer
// generalization still sees them. Must be called before Generalize inspects
// any level.
func (ctx *Context) ForceAdjQueue() error {
	work := ctx.adjQueue
	ctx.adjQueue = nil
	var carry []types.Composite

	for i := 0; i < len(work); i++ {
		t := work[i]
		switch {
		case t.LevelOld() <= ctx.CurLevel:
			// Outside the region being generalized now; must survive to a
			// later, outer generalization.
			carry = append(carry, t)

		case t.LevelOld() == t.LevelNew():
			// Already settled by an earlier entry in this same drain.

		default:
			target := t.LevelNew()
			t.SetLevelNew(types.GrayLevel)
			for _, c := range types.Children(t) {
				if err := ctx.updateLevel(target, c, &work); err != nil {
					t.SetLevelNew(target)
					return err
				}
			}
			t.SetLevelNew(target)
			t.SetLevelOld(target)
		}
	}

	ctx.adjQueue = carry
	return nil
}
