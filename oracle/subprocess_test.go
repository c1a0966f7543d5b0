package oracle_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/halvard-labs/serialcheck/oracle"
	"github.com/halvard-labs/serialcheck/semilinear"
)

func TestNewSubprocessUnavailableWithoutISLPrefix(t *testing.T) {
	t.Setenv("ISL_PREFIX", "")
	_, err := oracle.NewSubprocess(zerolog.Nop())
	require.ErrorIs(t, err, oracle.ErrSubprocessUnavailable)
}

func TestNewSubprocessUnavailableWhenBinaryMissing(t *testing.T) {
	t.Setenv("ISL_PREFIX", t.TempDir())
	_, err := oracle.NewSubprocess(zerolog.Nop())
	require.ErrorIs(t, err, oracle.ErrSubprocessUnavailable)
}

// fakeSolver writes a minimal shell script standing in for the external
// integer-set binary, echoing back a fixed JSON response regardless of its
// stdin — enough to exercise Subprocess's request/response plumbing without
// a real integer-set library installed.
func fakeSolver(t *testing.T, response string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "islsolve")
	script := "#!/bin/sh\ncat >/dev/null\ncat <<'SOLVER_EOF'\n" + response + "\nSOLVER_EOF\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	t.Setenv("ISL_PREFIX", dir)

	return path
}

func TestSubprocessEmptinessParsesResponse(t *testing.T) {
	fakeSolver(t, `{"empty": true}`)
	s, err := oracle.NewSubprocess(zerolog.Nop())
	require.NoError(t, err)

	sch := twoDimSchema(t)
	empty, err := s.Emptiness(context.Background(), sch, semilinear.LinearSet{Base: []int64{0, 0}})
	require.NoError(t, err)
	require.True(t, empty)
}

func TestSubprocessSurfacesSolverError(t *testing.T) {
	fakeSolver(t, `{"error": "unsupported constraint shape"}`)
	s, err := oracle.NewSubprocess(zerolog.Nop())
	require.NoError(t, err)

	sch := twoDimSchema(t)
	_, err = s.Emptiness(context.Background(), sch, semilinear.LinearSet{Base: []int64{0, 0}})
	require.ErrorIs(t, err, oracle.ErrSubprocessFailed)
}
