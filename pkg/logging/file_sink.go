package logging

import (
	"os"
	"sync"

	"github.com/jingkaihe/appkit/internal/errx"
)

// FileSink appends formatted lines to a file.
// It implements Sink and is safe for concurrent use.
type FileSink struct {
	mu   sync.Mutex
	path string
	file *os.File
}

// NewFileSink opens path for appending, creating it if needed.
// The parent directory must already exist.
func NewFileSink(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errx.Wrap(ErrCreateLogFile, err)
	}
	return &FileSink{path: path, file: f}, nil
}

// Path returns the destination the sink was opened with.
func (s *FileSink) Path() string { return s.path }

// Deliver appends line followed by a newline.
func (s *FileSink) Deliver(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.file.WriteString(line + "\n"); err != nil {
		return errx.Wrap(ErrWriteLine, err)
	}
	return nil
}

// Close syncs and closes the underlying file.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.file.Sync()
	if err := s.file.Close(); err != nil {
		return errx.Wrap(ErrCloseWriter, err)
	}
	return nil
}
