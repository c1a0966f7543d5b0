package serialnfa

import (
	"github.com/halvard-labs/serialcheck/schema"
	"github.com/halvard-labs/serialcheck/semilinear"
)

// Symbol names one alphabet letter: the linear-component-th observable
// result of request Request.
type Symbol struct {
	Request   string
	Component int
}

// State is an automaton state index.
type State int

// Transition is one labeled edge: firing Symbol from From lands on To,
// applying Relation to the global state.
type Transition struct {
	From     State
	Symbol   Symbol
	To       State
	Relation semilinear.Set
}

// Automaton is an NFA over per-request observable-result symbols. Build
// always produces a single accepting state with one
// self-loop per symbol, but the type itself stays general in case a future
// alphabet needs intermediate states (e.g. a request whose observable
// result depends on more than one yield).
type Automaton struct {
	Base        *schema.Schema
	Doubling    schema.Doubling
	States      []State
	Start       State
	Accept      map[State]bool
	Transitions []Transition
}

// SymbolsFrom returns every transition leaving s, in insertion order.
func (a *Automaton) SymbolsFrom(s State) []Transition {
	out := make([]Transition, 0, len(a.Transitions))
	for _, t := range a.Transitions {
		if t.From == s {
			out = append(out, t)
		}
	}

	return out
}
