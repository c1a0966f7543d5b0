package schema

// Doubling builds the pre⊕post schema an atomic relation is defined over:
// every dimension of the base schema appears twice, once prefixed "pre:" and
// once "post:". A third, fresh-named middle
// copy is produced on demand by Middle, used by compose to rename two relations' adjoining ends onto the same dimensions
// before intersecting and projecting them away.
type Doubling struct {
	Base       *Schema
	Pre, Post  *Schema
	Doubled    *Schema
	preIdx     []int
	postIdx    []int
}

// Double builds the Doubling of base.
func Double(base *Schema) (Doubling, error) {
	preDims := make([]Dim, base.Len())
	postDims := make([]Dim, base.Len())
	for i, d := range base.dims {
		preDims[i] = Dim{Name: "pre:" + d.Name, Kind: d.Kind}
		postDims[i] = Dim{Name: "post:" + d.Name, Kind: d.Kind}
	}
	pre, err := New(preDims...)
	if err != nil {
		return Doubling{}, err
	}
	post, err := New(postDims...)
	if err != nil {
		return Doubling{}, err
	}
	doubled, err := New(append(append([]Dim{}, preDims...), postDims...)...)
	if err != nil {
		return Doubling{}, err
	}

	preIdx := make([]int, base.Len())
	postIdx := make([]int, base.Len())
	for i := range base.dims {
		preIdx[i] = i
		postIdx[i] = base.Len() + i
	}

	return Doubling{Base: base, Pre: pre, Post: post, Doubled: doubled, preIdx: preIdx, postIdx: postIdx}, nil
}

// PreOf returns the index, within Doubled, of the pre-copy of base dimension i.
func (d Doubling) PreOf(i int) int { return d.preIdx[i] }

// PostOf returns the index, within Doubled, of the post-copy of base dimension i.
func (d Doubling) PostOf(i int) int { return d.postIdx[i] }

// Middle builds a schema of freshly-named dimensions — one per base
// dimension, prefixed "mid:" — used to rename R's post and S's pre onto a
// shared name set before Compose intersects and projects them away.
func Middle(base *Schema) (*Schema, error) {
	dims := make([]Dim, base.Len())
	for i, d := range base.dims {
		dims[i] = Dim{Name: "mid:" + d.Name, Kind: d.Kind}
	}

	return New(dims...)
}
