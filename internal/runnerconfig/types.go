// Package runnerconfig holds the query-level Config (the four optimization
// switches, timeout, output directory, oracle backend selection) and the
// process-level Env (ISL_PREFIX and friends): an exported struct of knobs
// plus a documented zero-value-safe default, rather than functional
// options — query configuration here is set once per run, not
// incrementally composed.
package runnerconfig

import (
	"time"

	"github.com/halvard-labs/serialcheck/optimize"
)

// OracleBackend selects which semilinear.Oracle implementation a run uses.
type OracleBackend string

const (
	// BackendNative uses oracle.Native, the bounded-enumeration decision
	// procedure — no external process, suitable for small examples.
	BackendNative OracleBackend = "native"
	// BackendSubprocess uses oracle.Subprocess, delegating to the external
	// integer-set binary resolved from ISL_PREFIX.
	BackendSubprocess OracleBackend = "subprocess"
)

// Config is the per-query configuration the CLI flags populate.
type Config struct {
	// Timeout bounds the whole decision pipeline; exceeding it yields
	// result: timeout rather than an error.
	Timeout time.Duration `yaml:"timeout"`

	// OutputDir is the directory run artifacts are written under.
	OutputDir string `yaml:"output_dir"`

	// Backend selects the Oracle implementation.
	Backend OracleBackend `yaml:"backend"`

	// Switches configures the optimization layer; the CLI's --without-*
	// flags each clear one field starting from DefaultConfig's All().
	Switches optimize.Switches `yaml:"switches"`
}

// DefaultConfig returns every optimization switch enabled, a 60-second
// timeout, output under "out", and the native oracle backend — the
// configuration used when no flags or config file override it.
func DefaultConfig() Config {
	return Config{
		Timeout:   60 * time.Second,
		OutputDir: "out",
		Backend:   BackendNative,
		Switches:  optimize.All(),
	}
}

// Validate rejects configurations the pipeline cannot act on.
func (c Config) Validate() error {
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.OutputDir == "" {
		return ErrEmptyOutputDir
	}
	switch c.Backend {
	case BackendNative, BackendSubprocess:
	default:
		return ErrUnknownBackend
	}

	return nil
}
