package oracle_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvard-labs/serialcheck/oracle"
	"github.com/halvard-labs/serialcheck/schema"
	"github.com/halvard-labs/serialcheck/semilinear"
)

func twoDimSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.New(
		schema.Dim{Name: "x", Kind: schema.Global},
		schema.Dim{Name: "y", Kind: schema.Global},
	)
	require.NoError(t, err)

	return s
}

func TestNativeEmptinessAlwaysFalse(t *testing.T) {
	sch := twoDimSchema(t)
	n := oracle.NewNative(oracle.Config{})
	empty, err := n.Emptiness(context.Background(), sch, semilinear.LinearSet{Base: []int64{0, 0}})
	require.NoError(t, err)
	require.False(t, empty)
}

func TestNativeProjectRestrictsVectors(t *testing.T) {
	sch := twoDimSchema(t)
	n := oracle.NewNative(oracle.Config{})
	l := semilinear.LinearSet{Base: []int64{3, 5}, Periods: [][]int64{{1, 2}}}

	pieces, err := n.Project(context.Background(), sch, l, []int{0})
	require.NoError(t, err)
	require.Len(t, pieces, 1)
	require.Equal(t, []int64{3}, pieces[0].Base)
	require.Equal(t, [][]int64{{1}}, pieces[0].Periods)
}

func TestNativeIntersectFindsCommonPoints(t *testing.T) {
	sch := twoDimSchema(t)
	n := oracle.NewNative(oracle.Config{Bound: 5, MaxPoints: 1000})
	ctx := context.Background()

	// a: {(n, 0) | n >= 0}; b: {(0, n) | n >= 0}. Only (0,0) is common.
	a := semilinear.LinearSet{Base: []int64{0, 0}, Periods: [][]int64{{1, 0}}}
	b := semilinear.LinearSet{Base: []int64{0, 0}, Periods: [][]int64{{0, 1}}}

	pieces, err := n.Intersect(ctx, sch, a, b)
	require.NoError(t, err)
	require.Len(t, pieces, 1)
	require.Equal(t, []int64{0, 0}, pieces[0].Base)
}

func TestNativeIntersectDisjointIsEmpty(t *testing.T) {
	sch := twoDimSchema(t)
	n := oracle.NewNative(oracle.Config{Bound: 3, MaxPoints: 1000})
	ctx := context.Background()

	a := semilinear.LinearSet{Base: []int64{0, 0}, Periods: [][]int64{{1, 0}}}
	b := semilinear.LinearSet{Base: []int64{0, 1}}

	pieces, err := n.Intersect(ctx, sch, a, b)
	require.NoError(t, err)
	require.Empty(t, pieces)
}

func TestNativeSubsetTrueAndFalse(t *testing.T) {
	sch := twoDimSchema(t)
	n := oracle.NewNative(oracle.Config{Bound: 3, MaxPoints: 1000})
	ctx := context.Background()

	small, err := semilinear.New(sch, semilinear.LinearSet{Base: []int64{0, 0}})
	require.NoError(t, err)
	big, err := semilinear.New(sch, semilinear.LinearSet{Base: []int64{0, 0}, Periods: [][]int64{{1, 0}}})
	require.NoError(t, err)

	ok, err := n.Subset(ctx, sch, small, big)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = n.Subset(ctx, sch, big, small)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestNativeReturnsBoundExceeded(t *testing.T) {
	sch := twoDimSchema(t)
	// Bound/MaxPoints small enough that even one operand's enumeration
	// overflows: 6 periods at Bound=4 gives 5^6 = 15625 points.
	n := oracle.NewNative(oracle.Config{Bound: 4, MaxPoints: 10})
	ctx := context.Background()

	a := semilinear.LinearSet{Base: []int64{0, 0}, Periods: [][]int64{{1, 0}, {0, 1}, {1, 1}, {2, 0}, {0, 2}, {1, 2}}}
	b := semilinear.LinearSet{Base: []int64{0, 0}}

	_, err := n.Intersect(ctx, sch, a, b)
	require.Error(t, err)
	require.True(t, errors.Is(err, oracle.ErrBoundExceeded))
}
