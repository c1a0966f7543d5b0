package oracle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvard-labs/serialcheck/oracle"
	"github.com/halvard-labs/serialcheck/semilinear"
)

// These exercise Subset's singleton fast path (native_exact.go), which must
// decide membership the same way the bounded-enumeration path would, but
// without needing the point to fall inside cfg.Bound.
func TestNativeSubsetSingletonFastPathAvoidsBoundExceeded(t *testing.T) {
	sch := twoDimSchema(t)
	// Bound/MaxPoints small enough that enumerating b outright would
	// overflow (same shape as TestNativeReturnsBoundExceeded): 6 periods at
	// Bound=4 gives 5^6 = 15625 candidate points against a MaxPoints of 10.
	n := oracle.NewNative(oracle.Config{Bound: 4, MaxPoints: 10})
	ctx := context.Background()

	b, err := semilinear.New(sch, semilinear.LinearSet{
		Base:    []int64{0, 0},
		Periods: [][]int64{{1, 0}, {0, 1}, {1, 1}, {2, 0}, {0, 2}, {1, 2}},
	})
	require.NoError(t, err)

	// Every period has nonnegative coordinates, so no nonnegative
	// combination can ever produce a negative coordinate: pointExcludedFrom
	// proves this via the real-relaxation check alone, so Subset answers
	// exactly rather than surfacing ErrBoundExceeded from enumeration.
	point, err := semilinear.Singleton(sch, []int64{-1, -1})
	require.NoError(t, err)

	ok, err := n.Subset(ctx, sch, point, b)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestNativeSubsetSingletonFastPathRejectsOffAxisPoint(t *testing.T) {
	sch := twoDimSchema(t)
	n := oracle.NewNative(oracle.Config{Bound: 2, MaxPoints: 1000})
	ctx := context.Background()

	// b is the diagonal {(0,0) + k*(1,1) | k >= 0}; (3,4) is off the
	// diagonal, so no rational combination reaches it at all —
	// pointExcludedFrom's RowEchelon check proves this directly.
	point, err := semilinear.Singleton(sch, []int64{3, 4})
	require.NoError(t, err)
	b, err := semilinear.New(sch, semilinear.LinearSet{Base: []int64{0, 0}, Periods: [][]int64{{1, 1}}})
	require.NoError(t, err)

	ok, err := n.Subset(ctx, sch, point, b)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestNativeSubsetSingletonFastPathRejectsNonLatticePoint(t *testing.T) {
	sch := twoDimSchema(t)
	n := oracle.NewNative(oracle.Config{Bound: 2, MaxPoints: 1000})
	ctx := context.Background()

	// b: {(0,0) + k*(2,2) | k >= 0}. (3,3) sits on the real ray but is not
	// an integer multiple of the period, so the real-relaxation check
	// alone would wrongly accept it; LatticeContains is what rejects it.
	point, err := semilinear.Singleton(sch, []int64{3, 3})
	require.NoError(t, err)
	b, err := semilinear.New(sch, semilinear.LinearSet{Base: []int64{0, 0}, Periods: [][]int64{{2, 2}}})
	require.NoError(t, err)

	ok, err := n.Subset(ctx, sch, point, b)
	require.NoError(t, err)
	require.False(t, ok)
}
