package program

import "errors"

var (
	// ErrEmptyRequestName is returned by NewRequest when Name is blank — a
	// request is identified by name throughout the pipeline (stats
	// records, Petri net control places), so an unnamed request can never
	// be traced back to its source.
	ErrEmptyRequestName = errors.New("program: request name must not be empty")

	// ErrNilBody is returned by NewRequest when Body is nil.
	ErrNilBody = errors.New("program: request body must not be nil")

	// ErrDuplicateLocal is returned when a request declares the same local
	// variable name twice.
	ErrDuplicateLocal = errors.New("program: duplicate local variable declaration")
)
