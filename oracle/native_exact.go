package oracle

import (
	"fmt"

	"github.com/halvard-labs/serialcheck/matrix"
	"github.com/halvard-labs/serialcheck/matrix/ops"
	"github.com/halvard-labs/serialcheck/schema"
	"github.com/halvard-labs/serialcheck/semilinear"
)

// singlePoint reports whether s denotes exactly one concrete vector (a
// LinearSet with no periods), returning it. This is the shape
// certificate.Check's HoldsAtInitial obligation always passes as Subset's
// lhs (semilinear.Singleton), and the shape worth special-casing: a's side
// of the comparison is trivial, so all the work is in deciding membership
// in b without enumerating it first.
func singlePoint(s semilinear.Set) ([]int64, bool) {
	if len(s.Linears) != 1 || len(s.Linears[0].Periods) != 0 {
		return nil, false
	}

	return s.Linears[0].Base, true
}

// pointExcludedFrom decides, without enumeration, whether pt is provably
// absent from l = {l.Base + Σ nᵢ·l.Periods[i] | nᵢ ≥ 0}. It chains three
// independent necessary conditions, cheapest first, any one of which being
// false proves pt ∉ l exactly:
//
//  1. RowEchelon: the system Periods·n = diff must be consistent over the
//     rationals at all (ignoring both integrality and the nᵢ ≥ 0
//     constraint) — a rational solution is necessary for an integer,
//     nonnegative one to exist.
//  2. Feasible (Fourier-Motzkin): the same system restricted to n ≥ 0 must
//     be feasible over the reals — nonnegativity can rule out solutions
//     RowEchelon alone accepts.
//  3. LatticeContains (Hermite normal form): diff must lie in the ℤ-span of
//     Periods's columns — a necessary condition distinct from both reals
//     checks above, since a point can be a nonnegative real combination
//     without being an integer one.
//
// None of these conditions is sufficient: proving all three does not prove
// pt ∈ l (that still requires either a nonnegative integer combination to
// be exhibited, which is what enumerateLinear searches for, or full integer
// programming this engine does not implement). So a true return here means
// "proved absent"; a false return means "inconclusive, ask enumeration."
func pointExcludedFrom(l semilinear.LinearSet, pt []int64) (excluded bool) {
	if len(l.Periods) == 0 {
		for d := range pt {
			if pt[d] != l.Base[d] {
				return true
			}
		}

		return false
	}

	dim := len(pt)
	diff := make([]int64, dim)
	for d := 0; d < dim; d++ {
		diff[d] = pt[d] - l.Base[d]
	}

	a := matrix.NewMatrix(dim, len(l.Periods))
	for d := 0; d < dim; d++ {
		for j, p := range l.Periods {
			a.Set(d, j, p[d])
		}
	}

	if _, consistent, err := ops.RowEchelon(a, diff); err == nil && !consistent {
		return true
	}

	sys := nonnegSystem(l.Periods, diff)
	if !ops.Feasible(sys) {
		return true
	}

	if contains, err := ops.LatticeContains(a, diff); err == nil && !contains {
		return true
	}

	return false
}

// nonnegSystem builds the Fourier-Motzkin system for "does there exist n ≥
// 0 with Σ nⱼ·periods[j] = diff", expressed as the pair of inequalities
// Periods·n ≤ diff and Periods·n ≥ diff (i.e. -Periods·n ≤ -diff) alongside
// -n ≤ 0 for every variable.
func nonnegSystem(periods [][]int64, diff []int64) ops.System {
	sys := ops.System{Vars: len(periods)}
	for d := range diff {
		row := make([]int64, len(periods))
		for j, p := range periods {
			row[j] = p[d]
		}
		neg := make([]int64, len(row))
		for i, c := range row {
			neg[i] = -c
		}
		sys.Rows = append(sys.Rows,
			ops.Ineq{Coeffs: row, RHS: diff[d]},
			ops.Ineq{Coeffs: neg, RHS: -diff[d]},
		)
	}
	for j := range periods {
		row := make([]int64, len(periods))
		row[j] = -1
		sys.Rows = append(sys.Rows, ops.Ineq{Coeffs: row, RHS: 0})
	}

	return sys
}

// pointInSet decides pt ∈ b using pointExcludedFrom against every linear
// component first; only when none of them can settle it does it fall back
// to enumerateSet's bounded search, so a negative answer stays exact even
// when b's periods would otherwise force the search past cfg.Bound.
func (n *Native) pointInSet(sch *schema.Schema, b semilinear.Set, pt []int64) (bool, error) {
	unresolved := make([]semilinear.LinearSet, 0, len(b.Linears))
	for _, l := range b.Linears {
		if !pointExcludedFrom(l, pt) {
			unresolved = append(unresolved, l)
		}
	}
	if len(unresolved) == 0 {
		return false, nil
	}

	pts, ok := n.enumerateSet(sch, semilinear.Set{Schema: sch, Linears: unresolved})
	if !ok {
		return false, fmt.Errorf("subset rhs: %w", ErrBoundExceeded)
	}
	key := vecKey(pt)
	for _, p := range pts {
		if vecKey(p) == key {
			return true, nil
		}
	}

	return false, nil
}
