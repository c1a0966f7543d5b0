package petri

import "errors"

var (
	// ErrDuplicatePlace is returned by AddPlace for an already-registered
	// place name given with a different Kind.
	ErrDuplicatePlace = errors.New("petri: duplicate place name")

	// ErrUnknownPlace is returned when a transition references a place
	// that was never added to the net.
	ErrUnknownPlace = errors.New("petri: transition references unknown place")

	// ErrSchemaMismatch is returned by Translate when a summary relation's
	// schema does not match the expected doubled-globals schema — it must
	// already have been projected down to globals only by the caller.
	ErrSchemaMismatch = errors.New("petri: summary schema does not match doubled globals schema")

	// ErrNotEnabled is returned by Fire when the marking does not carry
	// enough tokens on one of the transition's input places.
	ErrNotEnabled = errors.New("petri: transition is not enabled at this marking")
)
