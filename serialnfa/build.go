package serialnfa

import (
	"github.com/halvard-labs/serialcheck/petri"
	"github.com/halvard-labs/serialcheck/schema"
	"github.com/halvard-labs/serialcheck/semilinear"
)

// Build constructs the single-state NFA over globals: one self-loop
// transition per (request, linear-component) pair found across summaries.
// summaries is the same []petri.NamedSummary the coordinator also feeds to
// petri.Translate, so both the concurrent and the serial views of a query
// are built from one set of per-request relations.
func Build(globals *schema.Schema, summaries []petri.NamedSummary) (*Automaton, error) {
	if len(summaries) == 0 {
		return nil, ErrNoSymbols
	}
	doubling, err := schema.Double(globals)
	if err != nil {
		return nil, err
	}

	const start State = 0
	auto := &Automaton{
		Base:     globals,
		Doubling: doubling,
		States:   []State{start},
		Start:    start,
		Accept:   map[State]bool{start: true},
	}

	for _, ns := range summaries {
		if !ns.Summary.Schema.Equal(doubling.Doubled) {
			return nil, ErrSchemaMismatch
		}
		for ci, comp := range ns.Summary.Linears {
			rel, err := semilinear.New(doubling.Doubled, comp)
			if err != nil {
				return nil, err
			}
			auto.Transitions = append(auto.Transitions, Transition{
				From: start, To: start,
				Symbol:   Symbol{Request: ns.Name, Component: ci},
				Relation: rel,
			})
		}
	}

	return auto, nil
}
