package oracle

import "errors"

// Sentinel errors for the oracle package. All of them are reported to
// callers wrapped as the top-level OracleError kind; they stay
// distinguishable via errors.Is/errors.As.
var (
	// ErrBoundExceeded indicates Native's bounded enumeration ran out of
	// budget before deciding the query.
	ErrBoundExceeded = errors.New("oracle: native engine's enumeration bound was exceeded")

	// ErrSubprocessUnavailable indicates the Subprocess backend's binary
	// could not be located (ISL_PREFIX unset or pointing at a non-executable
	// path).
	ErrSubprocessUnavailable = errors.New("oracle: configured integer-set binary is unavailable")

	// ErrSubprocessFailed indicates the external binary ran but exited
	// non-zero or produced output this adapter could not parse.
	ErrSubprocessFailed = errors.New("oracle: integer-set subprocess failed")
)
