package levelhm

import "github.com/arlyon/levelhm/types"

// TypeEnv maps identifiers to type schemes. Each name keeps its own stack
// of bindings so that a fun-parameter or let-binding shadowing an outer
// binding of the same name can be removed on scope exit without disturbing
// the outer one — last-in-first-out shadowing, innermost binding wins.
type TypeEnv struct {
	vars map[string][]types.Type
}

// NewTypeEnv returns an environment seeded with the given builtins.
func NewTypeEnv(builtins map[string]types.Type) *TypeEnv {
	env := &TypeEnv{vars: make(map[string][]types.Type, len(builtins))}
	for name, t := range builtins {
		env.Bind(name, t)
	}
	return env
}

// Lookup returns the innermost binding for name, if any.
func (e *TypeEnv) Lookup(name string) (types.Type, bool) {
	stack := e.vars[name]
	if len(stack) == 0 {
		return nil, false
	}
	return stack[len(stack)-1], true
}

// Bind pushes a new innermost binding for name.
func (e *TypeEnv) Bind(name string, t types.Type) {
	e.vars[name] = append(e.vars[name], t)
}

// Unbind pops the innermost binding for name, restoring whatever binding
// (if any) was shadowed.
func (e *TypeEnv) Unbind(name string) {
	stack := e.vars[name]
	e.vars[name] = stack[:len(stack)-1]
}
