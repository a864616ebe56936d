package types

import "fmt"

// TypeName gives a short, shape-level description of a type term for error
// messages. It is not the canonical schematic printer (see package
// printer) — just enough to name what went wrong during unification.
func TypeName(t Type) string {
	switch t := Find(t).(type) {
	case Const:
		return t.Name
	case *Var:
		if t.IsGenericVar() {
			return fmt.Sprintf("generic variable #%d", t.Id())
		}
		return fmt.Sprintf("variable #%d", t.Id())
	case *Arrow:
		return fmt.Sprintf("function of %d argument(s)", len(t.Args))
	case *App:
		return fmt.Sprintf("application of %s", TypeName(t.Head))
	default:
		return "<unknown type>"
	}
}
