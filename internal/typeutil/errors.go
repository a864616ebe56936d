package typeutil

import (
	"fmt"

	"github.com/arlyon/levelhm/types"
)

// CycleError reports that unification or level-adjustment would otherwise
// construct an infinite type: a composite node was re-entered while still
// gray (on the active traversal stack).
type CycleError struct {
	Type types.Type
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle: %s occurs within itself", types.TypeName(e.Type))
}

// FailError reports a structural mismatch between two types that cannot be
// unified: differing constants, or differing node shapes (e.g. Arrow vs.
// Const).
type FailError struct {
	A, B types.Type
}

func (e *FailError) Error() string {
	return fmt.Sprintf("cannot unify %s with %s", types.TypeName(e.A), types.TypeName(e.B))
}

// LengthError reports an arity mismatch between two Arrow or App types.
type LengthError struct {
	A, B types.Type
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("arity mismatch between %s and %s", types.TypeName(e.A), types.TypeName(e.B))
}
