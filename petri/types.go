package petri

import (
	"github.com/google/uuid"

	"github.com/halvard-labs/serialcheck/matrix"
)

// PlaceKind distinguishes the three roles a place can play.
type PlaceKind int

const (
	// ValuePlace holds the current value of one global dimension;
	// unbounded.
	ValuePlace PlaceKind = iota
	// ControlPlace gates how many instances of a (request, component) pair
	// may still be started.
	ControlPlace
	// AccountingPlace counts completed instances of a request, for trace
	// explanation; only present when a net is built with Options.WithRequests.
	AccountingPlace
)

// String renders PlaceKind for diagnostics and logging.
func (k PlaceKind) String() string {
	switch k {
	case ValuePlace:
		return "value"
	case ControlPlace:
		return "control"
	case AccountingPlace:
		return "accounting"
	default:
		return "unknown"
	}
}

// Place is one place in the net.
type Place struct {
	Name string
	Kind PlaceKind
}

// Transition fires by consuming Input tokens and producing Output tokens,
// both keyed by place name. Request and Component identify which
// request/linear-component this transition was generated from, for trace
// explanation.
type Transition struct {
	Name      string
	Request   string
	Component int
	Input     map[string]int64
	Output    map[string]int64
}

// Marking maps place name to token count.
type Marking map[string]int64

// Clone returns an independent copy of m.
func (m Marking) Clone() Marking {
	out := make(Marking, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// Net is a Petri net: places, transitions, and the place-name→index
// lookup Incidence needs to build a matrix.Matrix.
type Net struct {
	Places      []Place
	Transitions []Transition

	placeIndex map[string]int
}

// NewNet returns an empty net.
func NewNet() *Net {
	return &Net{placeIndex: make(map[string]int)}
}

// AddPlace registers p. Adding the same name twice is a no-op if the Kind
// matches (idempotent registration, since Translate may want to ensure a
// shared accounting place exists without tracking whether it already
// added it) and an error if the Kind disagrees.
func (n *Net) AddPlace(p Place) error {
	if i, ok := n.placeIndex[p.Name]; ok {
		if n.Places[i].Kind != p.Kind {
			return ErrDuplicatePlace
		}

		return nil
	}
	n.placeIndex[p.Name] = len(n.Places)
	n.Places = append(n.Places, p)

	return nil
}

// PlaceIndex returns p's position within Places.
func (n *Net) PlaceIndex(name string) (int, bool) {
	i, ok := n.placeIndex[name]

	return i, ok
}

// AddTransition validates that every place t references was already added
// via AddPlace, then appends it.
func (n *Net) AddTransition(t Transition) error {
	for place := range t.Input {
		if _, ok := n.placeIndex[place]; !ok {
			return ErrUnknownPlace
		}
	}
	for place := range t.Output {
		if _, ok := n.placeIndex[place]; !ok {
			return ErrUnknownPlace
		}
	}
	n.Transitions = append(n.Transitions, t)

	return nil
}

// Incidence builds the net's incidence matrix: rows are places, columns
// are transitions, and entry (p,t) is Output[p]-Input[p] for transition t
// — the net token change Incidence.(p,t) contributes to place p each time
// t fires. This mirrors graph.IncidenceMatrix's row=vertex/column=edge
// convention, generalized from ±1 endpoint markers to arbitrary integer
// deltas.
func (n *Net) Incidence() *matrix.Matrix {
	m := matrix.NewMatrix(len(n.Places), len(n.Transitions))
	for col, t := range n.Transitions {
		for place, v := range t.Output {
			row := n.placeIndex[place]
			m.Set(row, col, m.At(row, col)+v)
		}
		for place, v := range t.Input {
			row := n.placeIndex[place]
			m.Set(row, col, m.At(row, col)-v)
		}
	}

	return m
}

// Enabled reports whether t can fire at marking m: every input place must
// carry at least the required token count.
func (n *Net) Enabled(m Marking, t Transition) bool {
	for place, need := range t.Input {
		if m[place] < need {
			return false
		}
	}

	return true
}

// Fire applies t to m, returning the resulting marking. It returns
// ErrNotEnabled without mutating m's copy if t is not enabled.
func (n *Net) Fire(m Marking, t Transition) (Marking, error) {
	if !n.Enabled(m, t) {
		return nil, ErrNotEnabled
	}
	next := m.Clone()
	for place, need := range t.Input {
		next[place] -= need
	}
	for place, add := range t.Output {
		next[place] += add
	}

	return next, nil
}

// FireInstance fires t as Fire does, additionally minting a fresh instance
// identity when t produces output to an AccountingPlace. The accounting
// place itself only tracks how many instances of a request have
// completed, a bare count; FireInstance is what lets a trace explanation
// name which one, by tagging this specific firing event rather than the
// place's running total. It returns uuid.Nil when t touches no
// AccountingPlace.
func (n *Net) FireInstance(m Marking, t Transition) (Marking, uuid.UUID, error) {
	next, err := n.Fire(m, t)
	if err != nil {
		return nil, uuid.Nil, err
	}
	for place := range t.Output {
		if i, ok := n.placeIndex[place]; ok && n.Places[i].Kind == AccountingPlace {
			return next, uuid.New(), nil
		}
	}

	return next, uuid.Nil, nil
}
