package schema

// Union computes the ordered superschema of the given schemas: every
// dimension across all inputs, each appearing exactly once, in first-seen
// order. Insertion-order iteration (rather than map iteration) keeps the
// result bit-reproducible across runs.
//
// Union returns ErrKindConflict if the same name appears as Global in one
// input schema and Local in another — harmonizing across that conflict would
// silently change a request's local state into shared state or vice versa.
func Union(schemas ...*Schema) (*Schema, error) {
	seen := make(map[string]Kind)
	order := make([]Dim, 0)
	for _, s := range schemas {
		if s == nil {
			continue
		}
		for _, d := range s.dims {
			if prior, ok := seen[d.Name]; ok {
				if prior != d.Kind {
					return nil, ErrKindConflict
				}
				continue
			}
			seen[d.Name] = d.Kind
			order = append(order, d)
		}
	}

	return New(order...)
}

// Embedding describes how to lift a vector over `From` into a vector over
// `Into` by inserting zero-coefficient columns on every dimension `From`
// lacks. This is the harmonization step required before any operation mixes
// sets with differing schemas.
type Embedding struct {
	From, Into *Schema
	// positions[i] is the index in Into that From's dimension i maps to.
	positions []int
}

// Embed computes the Embedding of `from` into `into`. `into` must already
// contain every dimension of `from` (typically the result of Union); Embed
// returns ErrUnknownDim otherwise.
func Embed(from, into *Schema) (Embedding, error) {
	positions := make([]int, from.Len())
	for i, d := range from.dims {
		j, ok := into.index[d.Name]
		if !ok {
			return Embedding{}, ErrUnknownDim
		}
		positions[i] = j
	}

	return Embedding{From: from, Into: into, positions: positions}, nil
}

// Lift embeds a vector over e.From into a zero-filled vector over e.Into.
func (e Embedding) Lift(vec []int64) []int64 {
	out := make([]int64, e.Into.Len())
	for i, j := range e.positions {
		out[j] = vec[i]
	}

	return out
}

// Restrict builds the schema consisting of exactly the dimensions at the
// given indices (into s.Dims()), in the given order. Used by project to
// describe the schema of the surviving dimensions after existential
// elimination.
func Restrict(s *Schema, keep []int) (*Schema, error) {
	dims := make([]Dim, len(keep))
	for i, idx := range keep {
		dims[i] = s.dims[idx]
	}

	return New(dims...)
}

// RestrictVector projects vec onto the given indices, in order.
func RestrictVector(vec []int64, keep []int) []int64 {
	out := make([]int64, len(keep))
	for i, idx := range keep {
		out[i] = vec[idx]
	}

	return out
}

// Rename returns a schema identical to s but with each dimension whose name
// appears in `to` renamed accordingly; dimensions absent from `to` keep
// their name. Used by compose to align two relations' adjoining ends onto a
// shared set of fresh middle names before intersecting them.
func Rename(s *Schema, to map[string]string) (*Schema, error) {
	dims := make([]Dim, s.Len())
	for i, d := range s.dims {
		name := d.Name
		if renamed, ok := to[name]; ok {
			name = renamed
		}
		dims[i] = Dim{Name: name, Kind: d.Kind}
	}

	return New(dims...)
}
