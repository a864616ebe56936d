package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlyon/levelhm/ast"
	"github.com/arlyon/levelhm/parser"
)

func TestParseExpr_Shapes(t *testing.T) {
	t.Run("bare variable", func(t *testing.T) {
		e, err := parser.ParseExpr("x")
		require.NoError(t, err)
		v, ok := e.(*ast.Var)
		require.True(t, ok)
		assert.Equal(t, "x", v.Name)
	})

	t.Run("multi-parameter fun", func(t *testing.T) {
		e, err := parser.ParseExpr("fun x y -> x")
		require.NoError(t, err)
		f, ok := e.(*ast.Fun)
		require.True(t, ok)
		assert.Equal(t, []string{"x", "y"}, f.Params)
	})

	t.Run("multi-argument left-associative application", func(t *testing.T) {
		e, err := parser.ParseExpr("f(a, b)(c)")
		require.NoError(t, err)
		outer, ok := e.(*ast.Call)
		require.True(t, ok)
		require.Len(t, outer.Args, 1)
		inner, ok := outer.Func.(*ast.Call)
		require.True(t, ok)
		require.Len(t, inner.Args, 2)
		fn, ok := inner.Func.(*ast.Var)
		require.True(t, ok)
		assert.Equal(t, "f", fn.Name)
	})

	t.Run("let binding", func(t *testing.T) {
		e, err := parser.ParseExpr("let x = one in x")
		require.NoError(t, err)
		l, ok := e.(*ast.Let)
		require.True(t, ok)
		assert.Equal(t, "x", l.Name)
	})

	t.Run("parenthesized atom", func(t *testing.T) {
		e, err := parser.ParseExpr("(x)")
		require.NoError(t, err)
		_, ok := e.(*ast.Var)
		assert.True(t, ok)
	})
}

func TestParseExpr_Errors(t *testing.T) {
	cases := []string{
		"fun -> x",       // fun needs at least one parameter
		"let x = y",      // missing "in"
		"f(a, )",         // trailing comma
		"x)",             // unbalanced paren
		"x y",            // bare juxtaposition isn't application
		"let x y = z in x", // "=" expected, not another identifier
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			_, err := parser.ParseExpr(src)
			var parseErr *parser.ParseError
			require.ErrorAs(t, err, &parseErr)
		})
	}
}
