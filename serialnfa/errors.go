package serialnfa

import "errors"

var (
	// ErrNoSymbols is returned by Build when given zero summaries — an NFA
	// with an empty alphabet accepts only the empty word, which is a
	// degenerate input worth rejecting explicitly rather than silently
	// producing a trivial automaton.
	ErrNoSymbols = errors.New("serialnfa: no request summaries given")

	// ErrSchemaMismatch mirrors petri.ErrSchemaMismatch: every summary must
	// already be expressed over the same doubled-globals schema.
	ErrSchemaMismatch = errors.New("serialnfa: summary schema does not match expected doubled globals schema")
)
