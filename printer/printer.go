// Package printer canonicalizes an inferred type into its schematic printed
// form: free and generic variables are renamed to a, b, c, ... in
// first-encounter order, and the result is prefixed with a forall[...]
// header when any variable appears at all (every unsolved variable in a
// top-level result is, by construction, either generalized already or free
// only because nothing further constrains it — both print as quantified).
package printer

import (
	"sort"
	"strings"

	"github.com/arlyon/levelhm/types"
)

// Printer assigns variable letters as it encounters them; a fresh Printer
// should be used per call to Print so letter assignment always
// restarts at "a".
type Printer struct {
	names map[*types.Var]string
	order []*types.Var
	next  int
}

// New returns a Printer with no variables named yet.
func New() *Printer {
	return &Printer{names: make(map[*types.Var]string)}
}

// Print renders t in canonical schematic form.
func Print(t types.Type) string {
	return New().Print(t)
}

// Print renders t using this Printer's (possibly already partly populated)
// variable naming.
func (p *Printer) Print(t types.Type) string {
	body := p.printType(t)
	if len(p.order) == 0 {
		return body
	}
	// Letters are assigned in first-encounter order (needed so nested arrows
	// come out right), but the header lists them sorted: this only differs
	// from assignment order once a scheme needs a 27th variable ("aa" sorts
	// before "z", though "z" is assigned first).
	letters := make([]string, len(p.order))
	for i, v := range p.order {
		letters[i] = p.names[v]
	}
	sort.Strings(letters)
	return "forall[" + strings.Join(letters, " ") + "] " + body
}

func (p *Printer) printType(t types.Type) string {
	switch t := types.Find(t).(type) {
	case types.Const:
		return t.Name

	case *types.Var:
		return p.nameFor(t)

	case *types.App:
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			args[i] = p.printType(a)
		}
		return p.printType(t.Head) + "[" + strings.Join(args, ", ") + "]"

	case *types.Arrow:
		return p.printArrow(t)

	default:
		return "?"
	}
}

func (p *Printer) printArrow(t *types.Arrow) string {
	// Variable letters are assigned in first-encounter order while walking
	// the printed text left to right, so args must be rendered before the
	// result.
	if len(t.Args) == 1 && !isArrow(t.Args[0]) {
		arg := p.printType(t.Args[0])
		return arg + " -> " + p.printType(t.Return)
	}
	args := make([]string, len(t.Args))
	for i, a := range t.Args {
		args[i] = p.printType(a)
	}
	return "(" + strings.Join(args, ", ") + ") -> " + p.printType(t.Return)
}

func isArrow(t types.Type) bool {
	_, ok := types.Find(t).(*types.Arrow)
	return ok
}

// nameFor returns v's letter, assigning the next one (a, b, ..., z, aa, ...)
// in base-26 on first encounter.
func (p *Printer) nameFor(v *types.Var) string {
	if n, ok := p.names[v]; ok {
		return n
	}
	n := letterName(p.next)
	p.next++
	p.names[v] = n
	p.order = append(p.order, v)
	return n
}

func letterName(n int) string {
	var buf []byte
	for {
		buf = append([]byte{byte('a' + n%26)}, buf...)
		n = n/26 - 1
		if n < 0 {
			break
		}
	}
	return string(buf)
}
