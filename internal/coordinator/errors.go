package coordinator

import "errors"

var (
	// ErrNoRequests is returned by Decide when called with an empty
	// request set — there is nothing to translate into a net.
	ErrNoRequests = errors.New("coordinator: no requests given")

	// ErrGlobalsMismatch is returned when two requests in the same query
	// declare different global-variable lists; every request sharing one
	// query must agree on the shared global schema.
	ErrGlobalsMismatch = errors.New("coordinator: requests disagree on global variables")
)
