package smpt_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvard-labs/serialcheck/internal/smpt"
	"github.com/halvard-labs/serialcheck/internal/telemetry"
)

func TestNewCheckerRejectsMissingPrefix(t *testing.T) {
	prior, wasSet := os.LookupEnv("SMPT_PREFIX")
	require.NoError(t, os.Unsetenv("SMPT_PREFIX"))
	t.Cleanup(func() {
		if wasSet {
			os.Setenv("SMPT_PREFIX", prior)
		}
	})

	_, err := smpt.NewChecker(telemetry.Default())
	require.ErrorIs(t, err, smpt.ErrUnavailable)
}

func TestNewCheckerRejectsNonExecutablePath(t *testing.T) {
	dir := t.TempDir()
	binPath := dir + "/smpt"
	require.NoError(t, os.WriteFile(binPath, []byte("not a real binary"), 0o644))

	t.Setenv("SMPT_PREFIX", dir)

	_, err := smpt.NewChecker(telemetry.Default())
	require.ErrorIs(t, err, smpt.ErrUnavailable)
}

func TestNewCheckerRejectsMissingBinary(t *testing.T) {
	t.Setenv("SMPT_PREFIX", t.TempDir())

	_, err := smpt.NewChecker(telemetry.Default())
	require.ErrorIs(t, err, smpt.ErrUnavailable)
}
