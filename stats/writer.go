package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// Writer appends Records to a JSONL file, one object per line, never
// rewriting earlier lines. It is safe for concurrent use by multiple
// goroutines, each call to Append taking the same lock history.Store's
// SaveSession leaves implicit by writing one file per call; here the file
// is shared, so the mutex is load-bearing rather than incidental.
type Writer struct {
	mu     sync.Mutex
	file   *os.File
	enc    *json.Encoder
	log    zerolog.Logger
	closed bool
}

// NewWriter opens (creating parent directories as needed) path for
// appending and returns a Writer ready to accept Records.
func NewWriter(path string, log zerolog.Logger) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	return &Writer{file: f, enc: json.NewEncoder(f), log: log.With().Str("component", "stats").Logger()}, nil
}

// Append writes rec as one JSON line and flushes immediately so a later
// crash never leaves a Record half-written.
func (w *Writer) Append(rec Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWriterClosed
	}
	if err := w.enc.Encode(rec); err != nil {
		return err
	}

	w.log.Debug().Str("run_id", rec.RunID).Str("result", string(rec.Result)).Msg("stats record appended")

	return w.file.Sync()
}

// Close flushes and closes the underlying file. Further Append calls
// return ErrWriterClosed.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	return w.file.Close()
}
