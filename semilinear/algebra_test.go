package semilinear_test

import (
	"context"
	"testing"

	"github.com/halvard-labs/serialcheck/schema"
	"github.com/halvard-labs/serialcheck/semilinear"
	"github.com/stretchr/testify/require"
)

// boundedOracle is a brute-force Oracle good only for the small, bounded
// fixtures exercised in this package's tests: it enumerates period
// coefficients up to `bound` to decide feasibility and membership instead of
// doing real polyhedral algebra. Package oracle's Native engine is the real
// implementation; this stays deliberately tiny so semilinear's tests do not
// depend on oracle (and vice versa).
type boundedOracle struct{ bound int }

func (o boundedOracle) points(sch *schema.Schema, l semilinear.LinearSet) [][]int64 {
	var out [][]int64
	var rec func(i int, acc []int64)
	rec = func(i int, acc []int64) {
		if i == len(l.Periods) {
			pt := append([]int64(nil), l.Base...)
			for j, n := range acc {
				for d := range pt {
					pt[d] += n * l.Periods[j][d]
				}
			}
			out = append(out, pt)
			return
		}
		for n := 0; n <= o.bound; n++ {
			rec(i+1, append(acc, int64(n)))
		}
	}
	rec(0, nil)

	return out
}

func (o boundedOracle) Emptiness(_ context.Context, sch *schema.Schema, l semilinear.LinearSet) (bool, error) {
	return false, nil // generator form always contains its base point
}

func vecEqual(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func (o boundedOracle) Intersect(_ context.Context, sch *schema.Schema, a, b semilinear.LinearSet) ([]semilinear.LinearSet, error) {
	pa := o.points(sch, a)
	pb := o.points(sch, b)
	var common [][]int64
	for _, x := range pa {
		for _, y := range pb {
			if vecEqual(x, y) {
				common = append(common, x)
				break
			}
		}
	}
	if len(common) == 0 {
		return nil, nil
	}
	pieces := make([]semilinear.LinearSet, len(common))
	for i, c := range common {
		pieces[i] = semilinear.LinearSet{Base: c}
	}

	return pieces, nil
}

func (o boundedOracle) Project(_ context.Context, sch *schema.Schema, l semilinear.LinearSet, keep []int) ([]semilinear.LinearSet, error) {
	seen := map[string][]int64{}
	for _, pt := range o.points(sch, l) {
		projected := schema.RestrictVector(pt, keep)
		seen[vecKey(projected)] = projected
	}
	out := make([]semilinear.LinearSet, 0, len(seen))
	for _, v := range seen {
		out = append(out, semilinear.LinearSet{Base: v})
	}

	return out, nil
}

func (o boundedOracle) Subset(ctx context.Context, sch *schema.Schema, a, b semilinear.Set) (bool, error) {
	for _, la := range a.Linears {
		for _, pt := range o.points(sch, la) {
			if !containsPoint(o, sch, b, pt) {
				return false, nil
			}
		}
	}

	return true, nil
}

func containsPoint(o boundedOracle, sch *schema.Schema, s semilinear.Set, pt []int64) bool {
	for _, l := range s.Linears {
		for _, cand := range o.points(sch, l) {
			if vecEqual(cand, pt) {
				return true
			}
		}
	}

	return false
}

func vecKey(v []int64) string {
	b := make([]byte, 0, len(v)*3)
	for _, n := range v {
		b = append(b, byte(n), byte(n>>8), ',')
	}

	return string(b)
}

func twoDimSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.New(
		schema.Dim{Name: "x", Kind: schema.Global},
		schema.Dim{Name: "y", Kind: schema.Global},
	)
	require.NoError(t, err)

	return s
}

func TestUnionConcatenatesHarmonizedLinears(t *testing.T) {
	sch := twoDimSchema(t)
	a, err := semilinear.New(sch, semilinear.LinearSet{Base: []int64{0, 0}, Periods: [][]int64{{1, 0}}})
	require.NoError(t, err)
	b, err := semilinear.New(sch, semilinear.LinearSet{Base: []int64{0, 1}})
	require.NoError(t, err)

	u, err := semilinear.Union(a, b)
	require.NoError(t, err)
	require.Len(t, u.Linears, 2)
}

func TestIntersectDropsInfeasiblePieces(t *testing.T) {
	sch := twoDimSchema(t)
	o := boundedOracle{bound: 3}
	ctx := context.Background()

	a, err := semilinear.New(sch, semilinear.LinearSet{Base: []int64{0, 0}, Periods: [][]int64{{1, 0}}})
	require.NoError(t, err)
	b, err := semilinear.New(sch, semilinear.LinearSet{Base: []int64{0, 1}})
	require.NoError(t, err)

	inter, err := semilinear.Intersect(ctx, o, a, b)
	require.NoError(t, err)
	require.True(t, inter.IsSyntacticallyEmpty())
}

func TestComposeIdentityIsNoop(t *testing.T) {
	base := twoDimSchema(t)
	o := boundedOracle{bound: 2}
	ctx := context.Background()

	doubling, err := schema.Double(base)
	require.NoError(t, err)
	id, err := semilinear.Identity(doubling)
	require.NoError(t, err)

	r, err := semilinear.New(doubling.Doubled, semilinear.LinearSet{Base: []int64{0, 0, 1, 0}})
	require.NoError(t, err)

	composed, err := semilinear.Compose(ctx, o, base, id, r)
	require.NoError(t, err)

	eqLeft, err := semilinear.Subset(ctx, o, composed, r)
	require.NoError(t, err)
	eqRight, err := semilinear.Subset(ctx, o, r, composed)
	require.NoError(t, err)
	require.True(t, eqLeft)
	require.True(t, eqRight)
}

func TestStarContainsIdentityAndOneStep(t *testing.T) {
	base := twoDimSchema(t)
	o := boundedOracle{bound: 2}
	ctx := context.Background()

	doubling, err := schema.Double(base)
	require.NoError(t, err)
	// R: x' = x+1, y'=y (a single-step "increment x" relation).
	r, err := semilinear.New(doubling.Doubled, semilinear.LinearSet{Base: []int64{0, 0, 1, 0}})
	require.NoError(t, err)

	star, err := semilinear.Star(ctx, o, base, r, 10)
	require.NoError(t, err)

	id, err := semilinear.Identity(doubling)
	require.NoError(t, err)
	idSub, err := semilinear.Subset(ctx, o, id, star)
	require.NoError(t, err)
	require.True(t, idSub)

	rSub, err := semilinear.Subset(ctx, o, r, star)
	require.NoError(t, err)
	require.True(t, rSub)
}

func TestIsEmptyOnSyntacticallyEmptySet(t *testing.T) {
	sch := twoDimSchema(t)
	ctx := context.Background()
	empty, err := semilinear.IsEmpty(ctx, nil, semilinear.Empty(sch))
	require.NoError(t, err)
	require.True(t, empty)
}
