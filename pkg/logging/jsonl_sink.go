package logging

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/jingkaihe/appkit/internal/errx"
)

// Record is the JSON shape written by JSONLSink.
type Record struct {
	Timestamp time.Time `json:"ts"`
	RunID     string    `json:"run_id"`
	Context   string    `json:"context"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
}

// JSONLSink writes entries as JSON-L to a file, one object per line.
// It implements EntrySink and is safe for concurrent use.
type JSONLSink struct {
	mu    sync.Mutex
	runID string
	file  *os.File
}

// NewJSONLSink creates a JSON-L sink that appends to path. Every record is
// stamped with runID.
// The parent directory must already exist.
func NewJSONLSink(path, runID string) (*JSONLSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errx.Wrap(ErrCreateLogFile, err)
	}
	return &JSONLSink{
		runID: runID,
		file:  f,
	}, nil
}

// DeliverEntry serializes the entry as a single JSON line.
func (s *JSONLSink) DeliverEntry(entry *Entry) error {
	return s.write(Record{
		Timestamp: entry.Time,
		RunID:     s.runID,
		Context:   entry.Context,
		Level:     entry.Level,
		Message:   entry.Message,
	})
}

// Deliver records a bare line with no structure. The Logger never calls it,
// but it keeps JSONLSink usable wherever a plain Sink is expected.
func (s *JSONLSink) Deliver(line string) error {
	return s.write(Record{
		Timestamp: time.Now().UTC(),
		RunID:     s.runID,
		Level:     LevelInfo,
		Message:   line,
	})
}

func (s *JSONLSink) write(rec Record) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return errx.Wrap(ErrMarshalEntry, err)
	}
	b = append(b, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.file.Write(b); err != nil {
		return errx.Wrap(ErrWriteLine, err)
	}
	return nil
}

// Close syncs and closes the underlying file.
func (s *JSONLSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.file.Sync()
	if err := s.file.Close(); err != nil {
		return errx.Wrap(ErrCloseWriter, err)
	}
	return nil
}
