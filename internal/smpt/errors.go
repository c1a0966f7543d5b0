package smpt

import "errors"

var (
	// ErrUnavailable indicates the configured SMPT-shaped binary could not
	// be located (SMPT_PREFIX unset or pointing at a non-executable path) —
	// mirroring oracle.ErrSubprocessUnavailable's role for the integer-set
	// binary.
	ErrUnavailable = errors.New("smpt: configured reachability checker binary is unavailable")

	// ErrSubprocessFailed indicates the external binary exited non-zero, or
	// answered NOT_REACHABLE without leaving a readable proof file.
	// Unrecognized stdout is reported as ErrUnknownVerdict instead.
	ErrSubprocessFailed = errors.New("smpt: reachability checker subprocess failed")

	// ErrUnknownVerdict indicates the subprocess's stdout named none of
	// REACHABLE/NOT_REACHABLE/TIMEOUT.
	ErrUnknownVerdict = errors.New("smpt: subprocess produced an unrecognized verdict")
)
