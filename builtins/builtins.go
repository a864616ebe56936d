// Package builtins declares the fixed primitive environment every inference
// session starts with, as a table of name/scheme-source pairs parsed
// through the scheme grammar at load time rather than built by hand as
// struct literals.
package builtins

import (
	"github.com/pkg/errors"

	"github.com/arlyon/levelhm/internal/typeutil"
	"github.com/arlyon/levelhm/parser"
	"github.com/arlyon/levelhm/types"
)

// entry pairs a primitive's name with its scheme, written in the §6.2
// surface syntax.
type entry struct {
	name   string
	scheme string
}

// table is the full primitive environment. Order matches the declaration
// order of the specification's fixture; it has no semantic effect since
// Env is a map, but keeps this list diffable against it.
var table = []entry{
	{"head", "forall[a] list[a] -> a"},
	{"tail", "forall[a] list[a] -> list[a]"},
	{"nil", "forall[a] list[a]"},
	{"cons", "forall[a] (a, list[a]) -> list[a]"},
	{"cons_curry", "forall[a] a -> list[a] -> list[a]"},
	{"map", "forall[a b] (a -> b, list[a]) -> list[b]"},
	{"map_curry", "forall[a b] (a -> b) -> list[a] -> list[b]"},
	{"one", "int"},
	{"zero", "int"},
	{"succ", "int -> int"},
	{"plus", "(int, int) -> int"},
	{"true", "bool"},
	{"false", "bool"},
	{"not", "bool -> bool"},
	{"eq", "forall[a] (a, a) -> bool"},
	{"eq_curry", "forall[a] a -> a -> bool"},
	{"id", "forall[a] a -> a"},
	{"const", "forall[a b] (a, b) -> a"},
	{"apply", "forall[a b] (a -> b, a) -> b"},
	{"apply_curry", "forall[a b] (a -> b) -> a -> b"},
	{"choose", "forall[a] (a, a) -> a"},
	{"choose_curry", "forall[a] a -> a -> a"},
	{"pair", "forall[a b] (a, b) -> pair[a, b]"},
	{"pair_curry", "forall[a b] a -> b -> pair[a, b]"},
	{"first", "forall[a b] pair[a, b] -> a"},
	{"second", "forall[a b] pair[a, b] -> b"},
}

// Env builds a fresh name -> scheme map, parsing every entry in table
// through a scratch Context of its own. Generic variables inside a scheme
// are only ever read through Instantiate, which allocates its own fresh
// copies, so builtin schemes never need to share a gensym counter with the
// inference session that uses them; each call to Env returns independently
// allocated variable cells, so two inference sessions must not share one
// builtin environment's type terms.
func Env() (map[string]types.Type, error) {
	ctx := typeutil.New()
	env := make(map[string]types.Type, len(table))
	for _, e := range table {
		t, err := parser.ParseScheme(ctx, e.scheme)
		if err != nil {
			return nil, errors.Wrapf(err, "builtins: invalid scheme for %q", e.name)
		}
		env[e.name] = t
	}
	return env, nil
}

// Names returns the primitives' names in declaration order, for listing.
func Names() []string {
	names := make([]string, len(table))
	for i, e := range table {
		names[i] = e.name
	}
	return names
}
