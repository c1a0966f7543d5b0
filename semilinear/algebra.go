package semilinear

import (
	"context"

	"github.com/halvard-labs/serialcheck/schema"
)

// Union computes A ∪ B: harmonize onto the shared schema, then concatenate
// linear-set lists. Union never consults the Oracle — it is
// always total and exact, since a disjoint-list union of generator-form
// pieces denotes exactly the union of what they denote.
func Union(a, b Set) (Set, error) {
	lifted, err := Harmonize(a, b)
	if err != nil {
		return Set{}, err
	}
	la, lb := lifted[0], lifted[1]
	out := make([]LinearSet, 0, len(la.Linears)+len(lb.Linears))
	out = append(out, la.Linears...)
	out = append(out, lb.Linears...)

	return Set{Schema: la.Schema, Linears: out}, nil
}

// UnionAll folds Union over a non-empty slice of sets.
func UnionAll(sets ...Set) (Set, error) {
	if len(sets) == 0 {
		return Set{}, nil
	}
	acc := sets[0]
	for _, s := range sets[1:] {
		var err error
		acc, err = Union(acc, s)
		if err != nil {
			return Set{}, err
		}
	}

	return acc, nil
}

// Intersect computes A ∩ B via pairwise intersection of every pair of linear
// pieces, delegated to oracle.Intersect, dropping pieces the Oracle reports
// Empty.
func Intersect(ctx context.Context, oracle Oracle, a, b Set) (Set, error) {
	if oracle == nil {
		return Set{}, ErrNoOracle
	}
	lifted, err := Harmonize(a, b)
	if err != nil {
		return Set{}, err
	}
	la, lb := lifted[0], lifted[1]

	out := make([]LinearSet, 0, len(la.Linears)*len(lb.Linears))
	for _, x := range la.Linears {
		for _, y := range lb.Linears {
			pieces, err := oracle.Intersect(ctx, la.Schema, x, y)
			if err != nil {
				return Set{}, err
			}
			for _, p := range pieces {
				empty, err := oracle.Emptiness(ctx, la.Schema, p)
				if err != nil {
					return Set{}, err
				}
				if !empty {
					out = append(out, p)
				}
			}
		}
	}

	return Set{Schema: la.Schema, Linears: out}, nil
}

// Project existentially eliminates the named dimensions from s, returning a
// Set over the schema with those dimensions removed. Project
// fails with the Oracle's error only — an infeasible or vacuous projection
// of an individual piece simply contributes no output pieces, not an error.
func Project(ctx context.Context, oracle Oracle, s Set, eliminate []string) (Set, error) {
	if oracle == nil {
		return Set{}, ErrNoOracle
	}
	drop := make(map[string]bool, len(eliminate))
	for _, name := range eliminate {
		drop[name] = true
	}
	keep := make([]int, 0, s.Schema.Len())
	for i, d := range s.Schema.Dims() {
		if !drop[d.Name] {
			keep = append(keep, i)
		}
	}
	reduced, err := schema.Restrict(s.Schema, keep)
	if err != nil {
		return Set{}, err
	}

	out := make([]LinearSet, 0, len(s.Linears))
	for _, l := range s.Linears {
		pieces, err := oracle.Project(ctx, s.Schema, l, keep)
		if err != nil {
			return Set{}, err
		}
		out = append(out, pieces...)
	}

	return Set{Schema: reduced, Linears: out}, nil
}

// Compose computes relation composition R;S: rename R's post
// to fresh middle names, rename S's pre to the same middle names, intersect,
// then project the middle out. base is the (undoubled) variable schema both
// R and S are relations over; R and S are themselves given over base's
// Doubling (dimensions named "pre:x" / "post:x").
func Compose(ctx context.Context, oracle Oracle, base *schema.Schema, r, s Set) (Set, error) {
	mid, err := schema.Middle(base)
	if err != nil {
		return Set{}, err
	}

	rRename := make(map[string]string, base.Len())
	sRename := make(map[string]string, base.Len())
	for _, d := range base.Dims() {
		rRename["post:"+d.Name] = "mid:" + d.Name
		sRename["pre:"+d.Name] = "mid:" + d.Name
	}

	rSchema, err := schema.Rename(r.Schema, rRename)
	if err != nil {
		return Set{}, err
	}
	sSchema, err := schema.Rename(s.Schema, sRename)
	if err != nil {
		return Set{}, err
	}
	rRenamed := Set{Schema: rSchema, Linears: r.Linears}
	sRenamed := Set{Schema: sSchema, Linears: s.Linears}

	joined, err := Intersect(ctx, oracle, rRenamed, sRenamed)
	if err != nil {
		return Set{}, err
	}

	return Project(ctx, oracle, joined, midNames(mid))
}

func midNames(mid *schema.Schema) []string {
	names := make([]string, mid.Len())
	for i, d := range mid.Dims() {
		names[i] = d.Name
	}

	return names
}

// Subset decides A ⊆ B, delegated to the Oracle.
func Subset(ctx context.Context, oracle Oracle, a, b Set) (bool, error) {
	if oracle == nil {
		return false, ErrNoOracle
	}
	lifted, err := Harmonize(a, b)
	if err != nil {
		return false, err
	}

	return oracle.Subset(ctx, lifted[0].Schema, lifted[0], lifted[1])
}

// IsEmpty reports whether s denotes ∅: true iff every linear component's
// defining system is infeasible. A syntactically
// empty Set (no components at all) is trivially empty without consulting
// the Oracle.
func IsEmpty(ctx context.Context, oracle Oracle, s Set) (bool, error) {
	if s.IsSyntacticallyEmpty() {
		return true, nil
	}
	if oracle == nil {
		return false, ErrNoOracle
	}
	for _, l := range s.Linears {
		empty, err := oracle.Emptiness(ctx, s.Schema, l)
		if err != nil {
			return false, err
		}
		if !empty {
			return false, nil
		}
	}

	return true, nil
}

// Star computes R* — the reflexive-transitive closure of relation R over
// base — by the standard iterative fixpoint: R₀ = identity;
// Rₖ₊₁ = Rₖ ∪ compose(Rₖ, R); stop when Rₖ₊₁ ⊆ Rₖ (oracle-decided
// inclusion). Classically, star of a semilinear relation is semilinear, so
// this loop must terminate; maxIterations is a defensive ceiling catching
// that invariant's violation rather than a normal exit path — exceeding it returns
// ErrSaturationStalled, which the coordinator reports as InternalError.
func Star(ctx context.Context, oracle Oracle, base *schema.Schema, r Set, maxIterations int) (Set, error) {
	if oracle == nil {
		return Set{}, ErrNoOracle
	}
	doubling, err := schema.Double(base)
	if err != nil {
		return Set{}, err
	}
	acc, err := Identity(doubling)
	if err != nil {
		return Set{}, err
	}

	for iter := 0; maxIterations <= 0 || iter < maxIterations; iter++ {
		select {
		case <-ctx.Done():
			return Set{}, ctx.Err()
		default:
		}

		composed, err := Compose(ctx, oracle, base, acc, r)
		if err != nil {
			return Set{}, err
		}
		next, err := Union(acc, composed)
		if err != nil {
			return Set{}, err
		}

		stable, err := Subset(ctx, oracle, next, acc)
		if err != nil {
			return Set{}, err
		}
		if stable {
			return next, nil
		}
		acc = next
	}

	return Set{}, ErrSaturationStalled
}

// RemoveRedundant drops any linear component L of s for which L ⊆ (union of
// the others). When maxComponents is positive and s has more pieces than
// that, the O(k²) subset checks are skipped entirely and s is returned
// unchanged. The
// optimize package decides whether to call this at all (one of the four
// independent switches); this function is the unconditional primitive.
func RemoveRedundant(ctx context.Context, oracle Oracle, s Set, maxComponents int) (Set, error) {
	if oracle == nil {
		return Set{}, ErrNoOracle
	}
	if maxComponents > 0 && len(s.Linears) > maxComponents {
		return s, nil
	}

	kept := make([]LinearSet, 0, len(s.Linears))
	for i, l := range s.Linears {
		others := make([]LinearSet, 0, len(s.Linears)-1)
		others = append(others, kept...)
		others = append(others, s.Linears[i+1:]...)

		candidate := Set{Schema: s.Schema, Linears: []LinearSet{l}}
		rest := Set{Schema: s.Schema, Linears: others}
		redundant, err := Subset(ctx, oracle, candidate, rest)
		if err != nil {
			return Set{}, err
		}
		if !redundant {
			kept = append(kept, l)
		}
	}

	return Set{Schema: s.Schema, Linears: kept}, nil
}
