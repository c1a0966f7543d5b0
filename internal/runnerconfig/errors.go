package runnerconfig

import "errors"

var (
	// ErrInvalidTimeout is returned by Config.Validate when Timeout is not
	// strictly positive.
	ErrInvalidTimeout = errors.New("runnerconfig: timeout must be positive")

	// ErrEmptyOutputDir is returned by Config.Validate when OutputDir is
	// empty.
	ErrEmptyOutputDir = errors.New("runnerconfig: output dir must not be empty")

	// ErrUnknownBackend is returned by Config.Validate for an
	// OracleBackend value other than BackendNative/BackendSubprocess.
	ErrUnknownBackend = errors.New("runnerconfig: unknown oracle backend")
)
