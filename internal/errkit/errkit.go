// Package errkit implements this module's error kinds as typed structs
// wrapping package-level sentinels: a typed struct carries the payload and
// is retrievable with errors.As, and its Unwrap method returns the kind's
// unexported sentinel. Unwrap does not return Cause, so errors.Is does not
// see through to the wrapped cause.
package errkit

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	errParse        = fmt.Errorf("malformed input")
	errSchema       = fmt.Errorf("harmonization inconsistency")
	errOracle       = fmt.Errorf("integer-set oracle failure")
	errTimeout      = fmt.Errorf("deadline exceeded")
	errInvalidProof = fmt.Errorf("certificate check failed")
	errInternal     = fmt.Errorf("invariant violation")
)

// ParseError reports a malformed-input failure at Location (e.g. a
// request name or source line) — fatal to the run.
type ParseError struct {
	Location string
	Cause    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("errkit: parse error at %s: %v", e.Location, e.Cause)
}
func (e *ParseError) Unwrap() error { return errParse }

// NewParseError wraps cause with a stack trace via pkg/errors, so the
// coordinator's stats record can log a useful trace without the call site
// that detected the malformed input doing so itself.
func NewParseError(location string, cause error) *ParseError {
	return &ParseError{Location: location, Cause: errors.WithStack(cause)}
}

// SchemaError reports a harmonization inconsistency — e.g. Variable is
// used as both a local and a global across the schemas being merged.
type SchemaError struct {
	Variable string
	Cause    error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("errkit: schema error on %q: %v", e.Variable, e.Cause)
}
func (e *SchemaError) Unwrap() error { return errSchema }

func NewSchemaError(variable string, cause error) *SchemaError {
	return &SchemaError{Variable: variable, Cause: errors.WithStack(cause)}
}

// OracleError reports an integer-set library or reachability subprocess
// failure. Retryable indicates the coordinator may retry once with the
// next optimization-degraded configuration before treating it as fatal.
type OracleError struct {
	Op        string
	Retryable bool
	Cause     error
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("errkit: oracle error during %s: %v", e.Op, e.Cause)
}
func (e *OracleError) Unwrap() error { return errOracle }

func NewOracleError(op string, retryable bool, cause error) *OracleError {
	return &OracleError{Op: op, Retryable: retryable, Cause: errors.WithStack(cause)}
}

// TimeoutError reports a deadline exceeded — not an error for the outer
// driver, but reported as result: timeout.
type TimeoutError struct {
	Stage string
}

func (e *TimeoutError) Error() string { return fmt.Sprintf("errkit: timeout in stage %s", e.Stage) }
func (e *TimeoutError) Unwrap() error { return errTimeout }

func NewTimeoutError(stage string) *TimeoutError { return &TimeoutError{Stage: stage} }

// InvalidProofError reports a failed certificate check, naming the
// obligation that failed. Treated as fatal — it indicates an oracle or
// adapter bug, not a property of the query.
type InvalidProofError struct {
	Obligation string
	Cause      error
}

func (e *InvalidProofError) Error() string {
	return fmt.Sprintf("errkit: invalid proof: %s: %v", e.Obligation, e.Cause)
}
func (e *InvalidProofError) Unwrap() error { return errInvalidProof }

func NewInvalidProofError(obligation string, cause error) *InvalidProofError {
	return &InvalidProofError{Obligation: obligation, Cause: errors.WithStack(cause)}
}

// InternalError reports an invariant violation, e.g. a Closure that fails
// to saturate within its configured bound. Always fatal.
type InternalError struct {
	Invariant string
	Cause     error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("errkit: internal error: %s: %v", e.Invariant, e.Cause)
}
func (e *InternalError) Unwrap() error { return errInternal }

func NewInternalError(invariant string, cause error) *InternalError {
	return &InternalError{Invariant: invariant, Cause: errors.WithStack(cause)}
}
