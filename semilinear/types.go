package semilinear

import "github.com/halvard-labs/serialcheck/schema"

// LinearSet is a generator-form description of {Base + Σ nᵢ·Periods[i] | nᵢ ∈
// ℕ} over some Schema. Both Base and every entry of Periods have length
// Schema.Len(). LinearSet values are treated as immutable after
// construction: operations always return a new value rather than mutating
// Periods in place, so a LinearSet referenced from multiple Kleene
// expression nodes can be shared without defensive copying.
type LinearSet struct {
	Base    []int64
	Periods [][]int64
}

// Clone returns a deep copy of l. Most code should not need this — LinearSet
// values are never mutated in place — but it is provided for callers that
// hand a LinearSet to code outside this module's control.
func (l LinearSet) Clone() LinearSet {
	base := append([]int64(nil), l.Base...)
	periods := make([][]int64, len(l.Periods))
	for i, p := range l.Periods {
		periods[i] = append([]int64(nil), p...)
	}

	return LinearSet{Base: base, Periods: periods}
}

// validate checks that l's vectors all have sch.Len() entries.
func (l LinearSet) validate(sch *schema.Schema) error {
	if err := sch.ValidateVector(l.Base); err != nil {
		return ErrVectorLength
	}
	for _, p := range l.Periods {
		if err := sch.ValidateVector(p); err != nil {
			return ErrVectorLength
		}
	}

	return nil
}

// Set is a finite union of LinearSets sharing one Schema — a semilinear set.
// The empty union (Linears == nil) denotes the empty set.
type Set struct {
	Schema  *schema.Schema
	Linears []LinearSet
}

// New builds a Set after validating every LinearSet against sch.
func New(sch *schema.Schema, linears ...LinearSet) (Set, error) {
	for _, l := range linears {
		if err := l.validate(sch); err != nil {
			return Set{}, err
		}
	}

	return Set{Schema: sch, Linears: linears}, nil
}

// Empty returns the empty semilinear set over sch.
func Empty(sch *schema.Schema) Set {
	return Set{Schema: sch}
}

// Singleton returns the Set containing exactly {point}.
func Singleton(sch *schema.Schema, point []int64) (Set, error) {
	return New(sch, LinearSet{Base: point})
}

// Identity returns the diagonal relation {(x,x) | x ∈ ℕ^n} over the doubled
// schema d — the identity atom used as Kleene star's base case and as the
// semantics of `yield` and of reads.
func Identity(d schema.Doubling) (Set, error) {
	n := d.Base.Len()
	base := make([]int64, d.Doubled.Len())
	periods := make([][]int64, n)
	for i := 0; i < n; i++ {
		p := make([]int64, d.Doubled.Len())
		p[d.PreOf(i)] = 1
		p[d.PostOf(i)] = 1
		periods[i] = p
	}

	return New(d.Doubled, LinearSet{Base: base, Periods: periods})
}

// IsSyntacticallyEmpty reports whether s has zero linear components. This is
// a structural check only — it does not ask the Oracle whether a non-empty
// generator list might still denote ∅ under additional implicit constraints,
// which cannot happen for a bare generator-form Set (it always contains at
// least its Base), but can arise from Intersect's output, which is why
// Intersect consults the Oracle's Emptiness instead of relying on this.
func (s Set) IsSyntacticallyEmpty() bool { return len(s.Linears) == 0 }

// Clone returns a deep copy of s.
func (s Set) Clone() Set {
	out := Set{Schema: s.Schema, Linears: make([]LinearSet, len(s.Linears))}
	for i, l := range s.Linears {
		out.Linears[i] = l.Clone()
	}

	return out
}
