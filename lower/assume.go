package lower

import (
	"github.com/halvard-labs/serialcheck/program"
	"github.com/halvard-labs/serialcheck/semilinear"
)

// Assume builds the identity-restricted-by-cond relation. When negate is true it builds assume(¬cond) instead — used
// for If's else branch and While's exit guard.
func (lw *Lowering) Assume(cond program.Cond, negate bool) (semilinear.Set, error) {
	eq, ok := cond.(program.Eq)
	if !ok {
		return semilinear.Set{}, ErrUnsupportedCond
	}

	cx, kx, err := affineOf(eq.X)
	if err != nil {
		return semilinear.Set{}, err
	}
	cy, ky, err := affineOf(eq.Y)
	if err != nil {
		return semilinear.Set{}, err
	}
	coeffs := mergeAdd(cx, negateCoeffs(cy))
	k := kx - ky
	for name := range coeffs {
		if _, known := lw.Base.IndexOf(name); !known {
			return semilinear.Set{}, ErrUnknownVariable
		}
		if coeffs[name] == 0 {
			delete(coeffs, name)
		}
	}

	if len(coeffs) == 0 {
		holds := k == 0
		if holds != negate {
			return lw.identity(), nil
		}

		return semilinear.Empty(lw.Doubling.Doubled), nil
	}

	pivot, cp := lw.pickPivot(coeffs)
	if pivot == "" {
		return semilinear.Set{}, ErrNonUnitPivot
	}
	v := -(cp * k)

	if !negate {
		return lw.equalitySet(pivot, coeffs, cp, v)
	}

	return lw.disequalitySet(pivot, v)
}

// pickPivot returns the first dimension, in base-schema order, whose
// coefficient has absolute value 1, along with that coefficient.
func (lw *Lowering) pickPivot(coeffs map[string]int64) (string, int64) {
	for _, d := range lw.Base.Dims() {
		c, ok := coeffs[d.Name]
		if ok && (c == 1 || c == -1) {
			return d.Name, c
		}
	}

	return "", 0
}

func (lw *Lowering) identity() semilinear.Set {
	s, err := semilinear.Identity(lw.Doubling)
	if err != nil {
		// Doubling was already validated in New; this cannot fail.
		panic(err)
	}

	return s
}

// freePeriod returns the period vector that lets dimension j vary freely
// while leaving every other dimension untouched: +1 on both its pre- and
// post-copy, same shape as semilinear.Identity's own per-dimension period.
func (lw *Lowering) freePeriod(j int) []int64 {
	vec := make([]int64, lw.Doubling.Doubled.Len())
	vec[lw.Doubling.PreOf(j)] = 1
	vec[lw.Doubling.PostOf(j)] = 1

	return vec
}

// equalitySet builds the generator-form description of {x | Σcoeffs·x = 0
// pinned via pivot}, pre=post on every dimension (an assume never writes).
// Every non-pivot dimension j contributes one period: it moves freely by
// +1, compensated on the pivot by -(cp·coeffs[j]) so the equation stays
// satisfied (0 when j doesn't appear in the constraint).
func (lw *Lowering) equalitySet(pivot string, coeffs map[string]int64, cp, v int64) (semilinear.Set, error) {
	pivotIdx, _ := lw.Base.IndexOf(pivot)

	base := make([]int64, lw.Doubling.Doubled.Len())
	base[lw.Doubling.PreOf(pivotIdx)] = v
	base[lw.Doubling.PostOf(pivotIdx)] = v

	periods := make([][]int64, 0, lw.Base.Len()-1)
	for _, d := range lw.Base.Dims() {
		if d.Name == pivot {
			continue
		}
		j, _ := lw.Base.IndexOf(d.Name)
		p := lw.freePeriod(j)
		comp := -(cp * coeffs[d.Name])
		if comp != 0 {
			p[lw.Doubling.PreOf(pivotIdx)] += comp
			p[lw.Doubling.PostOf(pivotIdx)] += comp
		}
		periods = append(periods, p)
	}

	return semilinear.New(lw.Doubling.Doubled, semilinear.LinearSet{Base: base, Periods: periods})
}

// disequalitySet builds assume(x_pivot ≠ v): the finite run of pinned
// values below v (0..v-1, each with every other dimension free) unioned
// with the half-line v+1, v+2, ... .
func (lw *Lowering) disequalitySet(pivot string, v int64) (semilinear.Set, error) {
	if v > NegationBound {
		return semilinear.Set{}, ErrNegationBoundExceeded
	}
	pivotIdx, _ := lw.Base.IndexOf(pivot)

	var linears []semilinear.LinearSet
	for m := int64(0); m < v; m++ {
		base := make([]int64, lw.Doubling.Doubled.Len())
		base[lw.Doubling.PreOf(pivotIdx)] = m
		base[lw.Doubling.PostOf(pivotIdx)] = m

		periods := make([][]int64, 0, lw.Base.Len()-1)
		for _, d := range lw.Base.Dims() {
			if d.Name == pivot {
				continue
			}
			j, _ := lw.Base.IndexOf(d.Name)
			periods = append(periods, lw.freePeriod(j))
		}
		linears = append(linears, semilinear.LinearSet{Base: base, Periods: periods})
	}

	above := make([]int64, lw.Doubling.Doubled.Len())
	above[lw.Doubling.PreOf(pivotIdx)] = v + 1
	above[lw.Doubling.PostOf(pivotIdx)] = v + 1
	abovePeriods := make([][]int64, 0, lw.Base.Len())
	abovePeriods = append(abovePeriods, lw.freePeriod(pivotIdx))
	for _, d := range lw.Base.Dims() {
		if d.Name == pivot {
			continue
		}
		j, _ := lw.Base.IndexOf(d.Name)
		abovePeriods = append(abovePeriods, lw.freePeriod(j))
	}
	linears = append(linears, semilinear.LinearSet{Base: above, Periods: abovePeriods})

	return semilinear.New(lw.Doubling.Doubled, linears...)
}
