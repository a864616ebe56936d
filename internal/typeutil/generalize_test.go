package typeutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlyon/levelhm/internal/typeutil"
	"github.com/arlyon/levelhm/types"
)

func TestGeneralize_PromotesDeeperVars(t *testing.T) {
	ctx := typeutil.New()
	ctx.EnterLevel()
	v := ctx.NewVar()
	arrow := ctx.NewArrow([]types.Type{v}, v)
	ctx.LeaveLevel()

	require.NoError(t, ctx.Generalize(arrow))

	assert.True(t, types.IsGeneric(arrow))
	assert.True(t, v.IsGenericVar())
}

func TestGeneralize_LeavesEnclosingScopeVarsAlone(t *testing.T) {
	ctx := typeutil.New()
	// v is bound at the current (outer) level, so it must not be
	// generalized by a let one level deeper.
	v := ctx.NewVar()

	ctx.EnterLevel()
	arrow := ctx.NewArrow([]types.Type{v}, v)
	ctx.LeaveLevel()

	require.NoError(t, ctx.Generalize(arrow))

	assert.False(t, v.IsGenericVar())
	assert.False(t, types.IsGeneric(arrow))
}

func TestInstantiate_FreshensGenericVarsConsistently(t *testing.T) {
	ctx := typeutil.New()
	ctx.EnterLevel()
	v := ctx.NewVar()
	scheme := ctx.NewArrow([]types.Type{v}, v)
	ctx.LeaveLevel()
	require.NoError(t, ctx.Generalize(scheme))

	inst1 := ctx.Instantiate(scheme)
	inst2 := ctx.Instantiate(scheme)

	arrow1, ok := inst1.(*types.Arrow)
	require.True(t, ok)
	arrow2, ok := inst2.(*types.Arrow)
	require.True(t, ok)

	// Each instantiation gets its own fresh variable...
	assert.NotSame(t, arrow1.Args[0], arrow2.Args[0])
	// ...but within one instantiation, every occurrence of the same
	// generic variable maps to the same fresh cell.
	assert.Same(t, arrow1.Args[0], arrow1.Return)
}

func TestInstantiate_NonGenericIsReturnedUnchanged(t *testing.T) {
	ctx := typeutil.New()
	intT := types.Const{Name: "int"}
	arrow := ctx.NewArrow([]types.Type{intT}, intT)
	assert.Same(t, arrow, ctx.Instantiate(arrow))
}
