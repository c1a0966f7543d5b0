package ops_test

import (
	"testing"

	"github.com/halvard-labs/serialcheck/matrix"
	"github.com/halvard-labs/serialcheck/matrix/ops"
	"github.com/stretchr/testify/require"
)

func TestRowEchelonDetectsInconsistency(t *testing.T) {
	a, err := matrix.FromRows([][]int64{{1, 1}, {1, 1}})
	require.NoError(t, err)
	_, consistent, err := ops.RowEchelon(a, []int64{2, 3})
	require.NoError(t, err)
	require.False(t, consistent)
}

func TestRowEchelonConsistentSystem(t *testing.T) {
	a, err := matrix.FromRows([][]int64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	_, consistent, err := ops.RowEchelon(a, []int64{3, 4})
	require.NoError(t, err)
	require.True(t, consistent)
}

func TestLatticeContainsDetectsNonMembership(t *testing.T) {
	// Column span is {(2,0), (0,2)}: only even-even points are reachable.
	a, err := matrix.FromRows([][]int64{{2, 0}, {0, 2}})
	require.NoError(t, err)

	ok, err := ops.LatticeContains(a, []int64{4, 6})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = ops.LatticeContains(a, []int64{1, 0})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFourierMotzkinDetectsInfeasibility(t *testing.T) {
	// x <= -1 and x >= 1 (i.e. -x <= -1) is infeasible.
	sys := ops.System{Vars: 1, Rows: []ops.Ineq{
		{Coeffs: []int64{1}, RHS: -1},
		{Coeffs: []int64{-1}, RHS: -1},
	}}
	require.False(t, ops.Feasible(sys))
}

func TestFourierMotzkinFeasibleSystem(t *testing.T) {
	// 0 <= x <= 5
	sys := ops.System{Vars: 1, Rows: []ops.Ineq{
		{Coeffs: []int64{-1}, RHS: 0},
		{Coeffs: []int64{1}, RHS: 5},
	}}
	require.True(t, ops.Feasible(sys))
}

func TestProjectDropsEliminatedVariable(t *testing.T) {
	// x + y <= 10, x >= 0, y >= 0; project onto x alone.
	sys := ops.System{Vars: 2, Rows: []ops.Ineq{
		{Coeffs: []int64{1, 1}, RHS: 10},
		{Coeffs: []int64{-1, 0}, RHS: 0},
		{Coeffs: []int64{0, -1}, RHS: 0},
	}}
	proj, ok := ops.Project(sys, []int{0})
	require.True(t, ok)
	require.Equal(t, 1, proj.Vars)
}
