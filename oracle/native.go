package oracle

import (
	"context"
	"fmt"

	"github.com/halvard-labs/serialcheck/schema"
	"github.com/halvard-labs/serialcheck/semilinear"
)

// Config tunes Native's bounded enumeration.
type Config struct {
	// Bound caps the per-period coefficient Native will try (0..Bound
	// inclusive) when enumerating a LinearSet's points.
	Bound int
	// MaxPoints caps the total number of generated points across an
	// enumeration call; exceeding it surfaces ErrBoundExceeded rather than
	// continuing to burn CPU on a combinatorial explosion.
	MaxPoints int
}

// DefaultConfig returns production-safe defaults: small enough to stay fast
// on the bundled examples, generous enough not to falsely report
// ErrBoundExceeded on them.
func DefaultConfig() Config {
	return Config{Bound: 4, MaxPoints: 50_000}
}

// Native is a pure-Go semilinear.Oracle. See doc.go for what it can and
// cannot decide exactly.
type Native struct {
	cfg Config
}

// NewNative builds a Native engine. A zero Config is replaced with
// DefaultConfig.
func NewNative(cfg Config) *Native {
	if cfg.Bound <= 0 {
		cfg.Bound = DefaultConfig().Bound
	}
	if cfg.MaxPoints <= 0 {
		cfg.MaxPoints = DefaultConfig().MaxPoints
	}

	return &Native{cfg: cfg}
}

// Emptiness always reports false: a generator-form LinearSet denotes
// {Base + Σ nᵢ·Periods[i] | nᵢ ≥ 0}, which contains Base itself regardless
// of Periods. There is no generator-form description of ∅ as a single
// LinearSet — the empty Set is the zero-length union (semilinear.Empty) —
// so this is an exact answer, not an approximation.
func (n *Native) Emptiness(_ context.Context, _ *schema.Schema, _ semilinear.LinearSet) (bool, error) {
	return false, nil
}

// Project restricts Base and every period onto the kept dimensions. In
// generator-form this is exact and total: dropping coordinates from a
// generating set's vectors yields a valid generating set for the image, so
// no oracle decision is actually required — Native still routes it through
// this method so callers do not need to special-case which backend they
// hold.
func (n *Native) Project(_ context.Context, _ *schema.Schema, l semilinear.LinearSet, keep []int) ([]semilinear.LinearSet, error) {
	periods := make([][]int64, len(l.Periods))
	for i, p := range l.Periods {
		periods[i] = schema.RestrictVector(p, keep)
	}

	return []semilinear.LinearSet{{Base: schema.RestrictVector(l.Base, keep), Periods: periods}}, nil
}

// Intersect enumerates both operands' points up to the configured bound and
// intersects the resulting finite sets, returning one singleton LinearSet
// per surviving point. This is exact whenever both operands' true
// intersection lies entirely within the enumerated window; beyond that it
// is a sound under-approximation (it can miss points, never invent one) and
// signals ErrBoundExceeded.
func (n *Native) Intersect(_ context.Context, sch *schema.Schema, a, b semilinear.LinearSet) ([]semilinear.LinearSet, error) {
	pa, ok := n.enumerateLinear(sch, a)
	if !ok {
		return nil, fmt.Errorf("intersect operand a: %w", ErrBoundExceeded)
	}
	pb, ok := n.enumerateLinear(sch, b)
	if !ok {
		return nil, fmt.Errorf("intersect operand b: %w", ErrBoundExceeded)
	}

	inB := make(map[string]bool, len(pb))
	for _, pt := range pb {
		inB[vecKey(pt)] = true
	}

	out := make([]semilinear.LinearSet, 0)
	seen := make(map[string]bool)
	for _, pt := range pa {
		k := vecKey(pt)
		if inB[k] && !seen[k] {
			seen[k] = true
			out = append(out, semilinear.LinearSet{Base: pt})
		}
	}

	return out, nil
}

// Subset decides a ⊆ b by enumerating a's points up to the configured
// bound and checking each is among b's enumerated points. Like Intersect,
// this is exact within the enumeration window and returns ErrBoundExceeded
// when either side's point count would exceed it, rather than silently
// reporting an unsound "true".
//
// When a is a single concrete point — the shape certificate.Check always
// passes for its HoldsAtInitial obligation — Subset defers to pointInSet
// instead, which can often prove the point absent from b algebraically
// (see native_exact.go) without ever enumerating b, and stays exact even
// past cfg.Bound in that case.
func (n *Native) Subset(_ context.Context, sch *schema.Schema, a, b semilinear.Set) (bool, error) {
	if pt, ok := singlePoint(a); ok {
		return n.pointInSet(sch, b, pt)
	}

	aPoints, ok := n.enumerateSet(sch, a)
	if !ok {
		return false, fmt.Errorf("subset lhs: %w", ErrBoundExceeded)
	}
	bPoints, ok := n.enumerateSet(sch, b)
	if !ok {
		return false, fmt.Errorf("subset rhs: %w", ErrBoundExceeded)
	}
	inB := make(map[string]bool, len(bPoints))
	for _, pt := range bPoints {
		inB[vecKey(pt)] = true
	}
	for _, pt := range aPoints {
		if !inB[vecKey(pt)] {
			return false, nil
		}
	}

	return true, nil
}

func (n *Native) enumerateSet(sch *schema.Schema, s semilinear.Set) ([][]int64, bool) {
	seen := make(map[string][]int64)
	for _, l := range s.Linears {
		pts, ok := n.enumerateLinear(sch, l)
		if !ok {
			return nil, false
		}
		for _, pt := range pts {
			seen[vecKey(pt)] = pt
			if len(seen) > n.cfg.MaxPoints {
				return nil, false
			}
		}
	}
	out := make([][]int64, 0, len(seen))
	for _, pt := range seen {
		out = append(out, pt)
	}

	return out, true
}

// enumerateLinear lists every point Base + Σ nᵢ·Periods[i] with each nᵢ in
// [0, Bound], capped at MaxPoints total.
func (n *Native) enumerateLinear(sch *schema.Schema, l semilinear.LinearSet) ([][]int64, bool) {
	dim := sch.Len()
	if len(l.Periods) == 0 {
		return [][]int64{append([]int64(nil), l.Base...)}, true
	}

	var out [][]int64
	coeffs := make([]int64, len(l.Periods))
	var rec func(idx int) bool
	rec = func(idx int) bool {
		if idx == len(l.Periods) {
			pt := make([]int64, dim)
			copy(pt, l.Base)
			for j, p := range l.Periods {
				for d := 0; d < dim; d++ {
					pt[d] += coeffs[j] * p[d]
				}
			}
			out = append(out, pt)

			return len(out) <= n.cfg.MaxPoints
		}
		for v := int64(0); v <= int64(n.cfg.Bound); v++ {
			coeffs[idx] = v
			if !rec(idx + 1) {
				return false
			}
		}

		return true
	}

	if !rec(0) {
		return nil, false
	}

	return out, true
}

func vecKey(v []int64) string {
	// Fixed-width encoding avoids ambiguity between e.g. [1,23] and [12,3].
	buf := make([]byte, 0, len(v)*9)
	for _, n := range v {
		buf = append(buf, byte(n>>56), byte(n>>48), byte(n>>40), byte(n>>32), byte(n>>24), byte(n>>16), byte(n>>8), byte(n), ',')
	}

	return string(buf)
}
