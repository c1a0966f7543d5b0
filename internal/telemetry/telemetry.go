// Package telemetry constructs the zerolog.Logger a query runs with. The
// pipeline passes that logger as an explicit value (coordinator.Decide,
// smpt.NewChecker, stats.NewWriter, oracle.NewSubprocess) rather than using
// a package-global; WithLogger/FromContext additionally let a caller carry
// it in a context.Context.
package telemetry

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
)

type ctxKey struct{}

// Level mirrors zerolog's level names for config/flag parsing without
// leaking the zerolog type into callers that only need to name a level.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New builds a console-friendly logger writing to w at the given level.
// Pass os.Stderr for interactive CLI use; a file handle for batch runs.
func New(w io.Writer, level Level) zerolog.Logger {
	return zerolog.New(w).Level(level.zerolog()).With().Timestamp().Logger()
}

// Default is New(os.Stderr, LevelInfo), the zero-config logger cmd/serialcheck
// runs with.
func Default() zerolog.Logger {
	return New(os.Stderr, LevelInfo)
}

// WithLogger returns a context carrying logger, retrievable with FromContext.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger attached by WithLogger, or Default() if
// none was attached.
func FromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(zerolog.Logger); ok {
		return logger
	}

	return Default()
}
