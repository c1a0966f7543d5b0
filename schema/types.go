package schema

// Kind distinguishes shared global dimensions from per-instance local ones.
type Kind int

const (
	// Global marks a dimension as shared mutable state visible to every
	// concurrently-running request instance.
	Global Kind = iota
	// Local marks a dimension as private to one request instance.
	Local
)

// String renders Kind for diagnostics and logging.
func (k Kind) String() string {
	switch k {
	case Global:
		return "global"
	case Local:
		return "local"
	default:
		return "unknown"
	}
}

// Dim names a single integer dimension and its Kind.
type Dim struct {
	Name string
	Kind Kind
}

// Schema is a finite ordered list of named integer dimensions.
//
// Order is significant: every vector over this Schema has len(vector) ==
// Schema.Len(), and vector[i] corresponds to Schema.Dims()[i]. Schema values
// are immutable after construction; New returns an error rather than a
// mutable builder, validate-then-freeze rather than build-then-check.
type Schema struct {
	dims  []Dim
	index map[string]int
}

// New builds a Schema from an ordered list of dimensions. It rejects empty
// names and duplicate names (even across differing Kind, since a name used
// as both Global and Local within one schema is a harmonization hazard,
// reported as SchemaError).
func New(dims ...Dim) (*Schema, error) {
	s := &Schema{
		dims:  make([]Dim, 0, len(dims)),
		index: make(map[string]int, len(dims)),
	}
	for _, d := range dims {
		if d.Name == "" {
			return nil, ErrEmptyName
		}
		if _, exists := s.index[d.Name]; exists {
			return nil, ErrDuplicateName
		}
		s.index[d.Name] = len(s.dims)
		s.dims = append(s.dims, d)
	}

	return s, nil
}

// MustNew is New but panics on error; reserved for package-level fixture
// construction in tests and examples where the schema is a compile-time
// constant.
func MustNew(dims ...Dim) *Schema {
	s, err := New(dims...)
	if err != nil {
		panic(err)
	}

	return s
}

// Len reports the number of dimensions.
func (s *Schema) Len() int { return len(s.dims) }

// Dims returns the ordered dimension list. Callers must not mutate the
// returned slice.
func (s *Schema) Dims() []Dim { return s.dims }

// IndexOf returns the position of name within the schema.
func (s *Schema) IndexOf(name string) (int, bool) {
	i, ok := s.index[name]

	return i, ok
}

// Globals returns the names of every Global dimension, in schema order.
func (s *Schema) Globals() []string {
	return s.filterNames(Global)
}

// Locals returns the names of every Local dimension, in schema order.
func (s *Schema) Locals() []string {
	return s.filterNames(Local)
}

func (s *Schema) filterNames(k Kind) []string {
	out := make([]string, 0, len(s.dims))
	for _, d := range s.dims {
		if d.Kind == k {
			out = append(out, d.Name)
		}
	}

	return out
}

// ValidateVector checks that vec has exactly Len() entries.
func (s *Schema) ValidateVector(vec []int64) error {
	if len(vec) != s.Len() {
		return ErrVectorLength
	}

	return nil
}

// Equal reports whether two schemas declare the same dimensions in the same
// order. Semilinear-set equality is decided by the oracle, but
// schema equality is purely structural and never needs the oracle.
func (s *Schema) Equal(other *Schema) bool {
	if s == other {
		return true
	}
	if other == nil || len(s.dims) != len(other.dims) {
		return false
	}
	for i, d := range s.dims {
		if other.dims[i] != d {
			return false
		}
	}

	return true
}
