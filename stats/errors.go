package stats

import "errors"

// ErrWriterClosed is returned by Writer.Append after Close has run.
var ErrWriterClosed = errors.New("stats: writer is closed")
