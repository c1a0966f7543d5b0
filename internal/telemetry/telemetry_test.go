package telemetry_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvard-labs/serialcheck/internal/telemetry"
)

func TestFromContextReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := telemetry.New(&buf, telemetry.LevelDebug)

	ctx := telemetry.WithLogger(context.Background(), logger)
	telemetry.FromContext(ctx).Debug().Msg("hello")

	require.Contains(t, buf.String(), "hello")
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	got := telemetry.FromContext(context.Background())
	require.Equal(t, telemetry.Default().GetLevel(), got.GetLevel())
}

func TestLevelFiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	logger := telemetry.New(&buf, telemetry.LevelWarn)

	logger.Info().Msg("suppressed")
	require.Empty(t, buf.String())

	logger.Warn().Msg("visible")
	require.Contains(t, buf.String(), "visible")
}
