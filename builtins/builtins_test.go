package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlyon/levelhm/builtins"
	"github.com/arlyon/levelhm/printer"
)

func TestEnv_ParsesEveryScheme(t *testing.T) {
	env, err := builtins.Env()
	require.NoError(t, err)

	for _, name := range builtins.Names() {
		typ, ok := env[name]
		require.Truef(t, ok, "builtin %q missing from Env()", name)
		require.NotNil(t, typ)
	}
}

func TestEnv_KnownSchemes(t *testing.T) {
	env, err := builtins.Env()
	require.NoError(t, err)

	cases := map[string]string{
		"id":     "forall[a] a -> a",
		"plus":   "(int, int) -> int",
		"one":    "int",
		"true":   "bool",
		"pair":   "forall[a b] (a, b) -> pair[a, b]",
		"head":   "forall[a] list[a] -> a",
		"choose": "forall[a] (a, a) -> a",
	}
	for name, want := range cases {
		assert.Equal(t, want, printer.Print(env[name]), "scheme for %q", name)
	}
}

func TestEnv_IndependentAcrossCalls(t *testing.T) {
	env1, err := builtins.Env()
	require.NoError(t, err)
	env2, err := builtins.Env()
	require.NoError(t, err)

	assert.NotSame(t, env1["id"], env2["id"])
}
