package levelhm

import (
	"fmt"

	"github.com/arlyon/levelhm/internal/typeutil"
)

// CycleError, FailError and LengthError are the three fatal unification
// conditions from spec.md §7, aliased here so callers never need to import
// internal/typeutil directly to type-switch on them.
type (
	CycleError  = typeutil.CycleError
	FailError   = typeutil.FailError
	LengthError = typeutil.LengthError
)

// UnboundError reports a Var node referencing a name with no binding in
// scope.
type UnboundError struct {
	Name string
}

func (e *UnboundError) Error() string {
	return fmt.Sprintf("unbound identifier %q", e.Name)
}
