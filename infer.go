// Package levelhm implements Hindley-Milner type inference over a small
// ML-like expression language, using Oleg Kiselyov's level-based
// generalization scheme with a deferred, amortized adjustment queue. See
// package types for the type representation and package internal/typeutil
// for the unifier and generalize/instantiate pair; this package is the
// inference walk (C5) and its top-level entry point.
package levelhm

import (
	"fmt"

	"github.com/arlyon/levelhm/ast"
	"github.com/arlyon/levelhm/internal/typeutil"
	"github.com/arlyon/levelhm/types"
)

// InferenceContext runs a single top-level inference. Its process-wide
// state (current level, gensym counter, adjustment queue) is reset at
// every call to TopTypeof; sharing one InferenceContext across concurrent
// top-level inferences is undefined.
type InferenceContext struct {
	common *typeutil.Context

	// invalid/err record the first sub-expression and error that aborted
	// the walk, for user-facing diagnostics (exposed through Invalid).
	invalid ast.Expr
	err     error
}

// NewInferenceContext returns a ready-to-use InferenceContext.
func NewInferenceContext() *InferenceContext {
	return &InferenceContext{common: typeutil.New()}
}

// Invalid returns the sub-expression at which the last TopTypeof call
// failed, or nil if it succeeded (or hasn't run yet).
func (ic *InferenceContext) Invalid() ast.Expr { return ic.invalid }

// TopTypeof infers the principal type of e against env, then runs a final
// cycle check over the result. It resets all process-wide inference state
// first, per the single-top-level-call contract.
func (ic *InferenceContext) TopTypeof(env *TypeEnv, e ast.Expr) (types.Type, error) {
	ic.common.Reset()
	ic.invalid, ic.err = nil, nil

	t, err := ic.typeof(env, e)
	if err != nil {
		return nil, err
	}
	if err := checkCycles(t); err != nil {
		ic.invalid, ic.err = e, err
		return nil, err
	}
	return t, nil
}

func (ic *InferenceContext) typeof(env *TypeEnv, e ast.Expr) (types.Type, error) {
	switch e := e.(type) {
	case *ast.Var:
		return ic.inferVar(env, e)
	case *ast.Fun:
		return ic.inferFun(env, e)
	case *ast.Call:
		return ic.inferCall(env, e)
	case *ast.Let:
		return ic.inferLet(env, e)
	default:
		ic.invalid, ic.err = e, fmt.Errorf("unhandled expression kind")
		return nil, ic.err
	}
}

func (ic *InferenceContext) inferVar(env *TypeEnv, e *ast.Var) (types.Type, error) {
	scheme, ok := env.Lookup(e.Name)
	if !ok {
		ic.invalid, ic.err = e, &UnboundError{Name: e.Name}
		return nil, ic.err
	}
	return ic.common.Instantiate(scheme), nil
}

func (ic *InferenceContext) inferFun(env *TypeEnv, e *ast.Fun) (types.Type, error) {
	params := make([]types.Type, len(e.Params))
	for i, name := range e.Params {
		tv := ic.common.NewVar()
		params[i] = tv
		env.Bind(name, tv)
	}

	body, err := ic.typeof(env, e.Body)
	for _, name := range e.Params {
		env.Unbind(name)
	}
	if err != nil {
		return nil, err
	}
	return ic.common.NewArrow(params, body), nil
}

func (ic *InferenceContext) inferCall(env *TypeEnv, e *ast.Call) (types.Type, error) {
	fn, err := ic.typeof(env, e.Func)
	if err != nil {
		return nil, err
	}

	args := make([]types.Type, len(e.Args))
	for i, a := range e.Args {
		at, err := ic.typeof(env, a)
		if err != nil {
			return nil, err
		}
		args[i] = at
	}

	ret := ic.common.NewVar()
	if err := ic.common.Unify(fn, ic.common.NewArrow(args, ret)); err != nil {
		ic.invalid, ic.err = e, err
		return nil, err
	}
	return ret, nil
}

func (ic *InferenceContext) inferLet(env *TypeEnv, e *ast.Let) (types.Type, error) {
	ic.common.EnterLevel()
	bound, err := ic.typeof(env, e.Bound)
	ic.common.LeaveLevel()
	if err != nil {
		return nil, err
	}

	if err := ic.common.Generalize(bound); err != nil {
		ic.invalid, ic.err = e, err
		return nil, err
	}

	env.Bind(e.Name, bound)
	body, err := ic.typeof(env, e.Body)
	env.Unbind(e.Name)
	return body, err
}

// checkCycles runs a final DFS over t, gray-marking each composite node it
// visits; re-entering an already-gray node means the type is infinite.
// Linking a variable into a composite that is not gray at that moment is not
// checked, so a cycle such as the one built by fun x -> x(x) can survive the
// walk: the gray checks in unification and in the adjustment queue only
// catch a cycle that a later traversal re-enters, and this final walk
// catches the rest.
func checkCycles(t types.Type) error {
	onStack := make(map[types.Composite]bool)
	return walkCheckCycles(t, onStack)
}

func walkCheckCycles(t types.Type, onStack map[types.Composite]bool) error {
	switch t := types.Find(t).(type) {
	case types.Composite:
		if onStack[t] {
			return &typeutil.CycleError{Type: t}
		}
		onStack[t] = true
		for _, c := range types.Children(t) {
			if err := walkCheckCycles(c, onStack); err != nil {
				return err
			}
		}
		delete(onStack, t)
		return nil
	default:
		return nil
	}
}
