package smpt

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Verdict is the reachability checker's answer for one query.
type Verdict string

const (
	Reachable    Verdict = "REACHABLE"
	NotReachable Verdict = "NOT_REACHABLE"
	TimedOut     Verdict = "TIMEOUT"
)

// Result is one query's outcome. InvariantText is populated only when
// Verdict is NotReachable, and is certificate.ParseInvariant's textual
// grammar.
type Result struct {
	Verdict       Verdict
	InvariantText string
}

// Checker invokes the configured reachability-checker binary.
type Checker struct {
	BinaryPath string
	Logger     zerolog.Logger
}

// NewChecker resolves the binary from SMPT_PREFIX (a directory containing
// a "smpt" executable), mirroring oracle.NewSubprocess's resolution for
// the integer-set library.
func NewChecker(logger zerolog.Logger) (*Checker, error) {
	prefix := os.Getenv("SMPT_PREFIX")
	if prefix == "" {
		return nil, errors.Wrap(ErrUnavailable, "SMPT_PREFIX is not set")
	}
	bin := filepath.Join(prefix, "smpt")
	info, err := os.Stat(bin)
	if err != nil {
		return nil, errors.Wrapf(ErrUnavailable, "stat %s: %v", bin, err)
	}
	if info.Mode()&0o111 == 0 {
		return nil, errors.Wrapf(ErrUnavailable, "%s is not executable", bin)
	}

	return &Checker{BinaryPath: bin, Logger: logger}, nil
}

// Check invokes the binary against netPath and queryPath, allowing it up
// to timeout to decide. proofPath is passed through as the path the
// binary should write its inductive invariant to on NOT_REACHABLE; it is
// read back only in that case.
func (c *Checker) Check(ctx context.Context, netPath, queryPath, proofPath string, timeout time.Duration) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.BinaryPath, "--net", netPath, "--xml", queryPath, "--proof-out", proofPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.Logger.Debug().Str("net", netPath).Str("query", queryPath).Msg("invoking reachability checker subprocess")

	runErr := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return Result{Verdict: TimedOut}, nil
	}
	if runErr != nil {
		return Result{}, errors.Wrapf(ErrSubprocessFailed, "%v (stderr: %s)", runErr, stderr.String())
	}

	verdict, err := parseVerdict(stdout.String())
	if err != nil {
		return Result{}, err
	}

	result := Result{Verdict: verdict}
	if verdict == NotReachable {
		proof, err := os.ReadFile(proofPath)
		if err != nil {
			return Result{}, errors.Wrapf(ErrSubprocessFailed, "reading proof at %s: %v", proofPath, err)
		}
		result.InvariantText = string(proof)
	}

	return result, nil
}

func parseVerdict(stdout string) (Verdict, error) {
	upper := strings.ToUpper(stdout)
	switch {
	case strings.Contains(upper, string(NotReachable)):
		return NotReachable, nil
	case strings.Contains(upper, string(Reachable)):
		return Reachable, nil
	case strings.Contains(upper, string(TimedOut)):
		return TimedOut, nil
	default:
		return "", errors.Wrapf(ErrUnknownVerdict, "stdout: %q", stdout)
	}
}
