package printer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arlyon/levelhm/printer"
	"github.com/arlyon/levelhm/types"
)

func TestPrint_Const(t *testing.T) {
	assert.Equal(t, "int", printer.Print(types.Const{Name: "int"}))
}

func TestPrint_UnnamedVarsGetLetters(t *testing.T) {
	a := types.NewVar(0, 0)
	b := types.NewVar(1, 0)
	arrow := types.NewArrow([]types.Type{a, b}, a, 0)
	assert.Equal(t, "forall[a b] (a, b) -> a", printer.Print(arrow))
}

func TestPrint_SingleNonArrowArgHasNoParens(t *testing.T) {
	a := types.NewVar(0, 0)
	arrow := types.NewArrow([]types.Type{a}, a, 0)
	assert.Equal(t, "forall[a] a -> a", printer.Print(arrow))
}

func TestPrint_SingleArrowArgGetsParens(t *testing.T) {
	a := types.NewVar(0, 0)
	inner := types.NewArrow([]types.Type{a}, a, 0)
	outer := types.NewArrow([]types.Type{inner}, types.Const{Name: "int"}, 0)
	assert.Equal(t, "forall[a] (a -> a) -> int", printer.Print(outer))
}

func TestPrint_App(t *testing.T) {
	a := types.NewVar(0, 0)
	app := types.NewApp(types.Const{Name: "list"}, []types.Type{a}, 0)
	assert.Equal(t, "forall[a] list[a]", printer.Print(app))
}

func TestPrint_NoVarsNoForall(t *testing.T) {
	pair := types.NewApp(types.Const{Name: "pair"}, []types.Type{types.Const{Name: "int"}, types.Const{Name: "bool"}}, 0)
	assert.Equal(t, "pair[int, bool]", printer.Print(pair))
}

func TestPrint_LinkedVarsResolveBeforePrinting(t *testing.T) {
	v := types.NewVar(0, 0)
	v.SetLink(types.Const{Name: "bool"})
	assert.Equal(t, "bool", printer.Print(v))
}

// TestPrint_HeaderListIsSortedNotEncounterOrder exercises a scheme that
// needs a 27th variable, so letter assignment spills from "z" into "aa".
// Letters are still assigned in first-encounter order (so the body's use of
// each variable stays correct), but the forall[...] header must list them
// sorted: "aa" sorts right after "a" and before "b", not after "z" where it
// was assigned.
func TestPrint_HeaderListIsSortedNotEncounterOrder(t *testing.T) {
	vars := make([]types.Type, 27)
	for i := range vars {
		vars[i] = types.NewVar(i, 0)
	}
	app := types.NewApp(types.Const{Name: "tup"}, vars, 0)

	want := "forall[a aa b c d e f g h i j k l m n o p q r s t u v w x y z] " +
		"tup[a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p, q, r, s, t, u, v, w, x, y, z, aa]"
	assert.Equal(t, want, printer.Print(app))
}
