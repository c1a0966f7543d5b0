package semilinear

import "github.com/halvard-labs/serialcheck/schema"

// Harmonize lifts every set in sets onto their shared union schema,
// inserting zero-coefficient columns for dimensions a given set lacked.
// The result is independent of input order: Union
// already iterates in first-seen order, and Lift only ever adds zero
// columns, which is commutative.
func Harmonize(sets ...Set) ([]Set, error) {
	schemas := make([]*schema.Schema, len(sets))
	for i, s := range sets {
		schemas[i] = s.Schema
	}
	union, err := schema.Union(schemas...)
	if err != nil {
		return nil, err
	}

	out := make([]Set, len(sets))
	for i, s := range sets {
		lifted, err := liftSet(s, union)
		if err != nil {
			return nil, err
		}
		out[i] = lifted
	}

	return out, nil
}

func liftSet(s Set, into *schema.Schema) (Set, error) {
	if s.Schema.Equal(into) {
		return s, nil
	}
	emb, err := schema.Embed(s.Schema, into)
	if err != nil {
		return Set{}, err
	}
	linears := make([]LinearSet, len(s.Linears))
	for i, l := range s.Linears {
		periods := make([][]int64, len(l.Periods))
		for j, p := range l.Periods {
			periods[j] = emb.Lift(p)
		}
		linears[i] = LinearSet{Base: emb.Lift(l.Base), Periods: periods}
	}

	return Set{Schema: into, Linears: linears}, nil
}
