package levelhm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	levelhm "github.com/arlyon/levelhm"
	"github.com/arlyon/levelhm/builtins"
	"github.com/arlyon/levelhm/construct"
	"github.com/arlyon/levelhm/internal/typeutil"
	"github.com/arlyon/levelhm/parser"
	"github.com/arlyon/levelhm/printer"
)

// infer is the test-only end-to-end helper: parse, build a fresh builtin
// environment, run TopTypeof, print the result.
func infer(t *testing.T, src string) (string, error) {
	t.Helper()
	expr, err := parser.ParseExpr(src)
	require.NoError(t, err)

	prims, err := builtins.Env()
	require.NoError(t, err)

	ic := levelhm.NewInferenceContext()
	env := levelhm.NewTypeEnv(prims)

	typ, err := ic.TopTypeof(env, expr)
	if err != nil {
		return "", err
	}
	return printer.Print(typ), nil
}

func TestTopTypeof_Principal(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"builtin id", "id", "forall[a] a -> a"},
		{"identity lambda", "fun x -> x", "forall[a] a -> a"},
		{"let self application of id-like function", "let f = fun x -> x in f(f)", "forall[a] a -> a"},
		{
			"let-bound function used at two different types",
			"let f = fun x -> x in pair(f(one), f(true))",
			"pair[int, bool]",
		},
		{
			"let inside a lambda generalizes independently of the outer parameter",
			"fun x -> let y = fun z -> z in y",
			"forall[a b] a -> b -> b",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := infer(t, tc.src)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTopTypeof_Errors(t *testing.T) {
	t.Run("self application is an occurs-check cycle", func(t *testing.T) {
		_, err := infer(t, "fun x -> x(x)")
		require.Error(t, err)
		var cycleErr *typeutil.CycleError
		assert.ErrorAs(t, err, &cycleErr)
	})

	t.Run("applying a non-function is a shape mismatch", func(t *testing.T) {
		_, err := infer(t, "one(one)")
		require.Error(t, err)
		var failErr *typeutil.FailError
		assert.ErrorAs(t, err, &failErr)
	})

	t.Run("wrong arity is a length mismatch", func(t *testing.T) {
		_, err := infer(t, "plus(one)")
		require.Error(t, err)
		var lengthErr *typeutil.LengthError
		assert.ErrorAs(t, err, &lengthErr)
	})

	t.Run("unbound identifier", func(t *testing.T) {
		_, err := infer(t, "nonexistent")
		require.Error(t, err)
		var unboundErr *levelhm.UnboundError
		assert.ErrorAs(t, err, &unboundErr)
	})
}

func TestTypeEnv_Shadowing(t *testing.T) {
	env := levelhm.NewTypeEnv(nil)

	env.Bind("x", construct.TConst("int"))
	env.Bind("x", construct.TConst("bool"))

	got, ok := env.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "bool", printer.Print(got))

	env.Unbind("x")
	got, ok = env.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "int", printer.Print(got))
}
