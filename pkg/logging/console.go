package logging

import (
	"io"
	"os"
	"sync"

	"github.com/jingkaihe/appkit/internal/errx"
)

// ConsoleSink writes each line to an io.Writer, stdout by default.
type ConsoleSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleSink returns a sink writing to w. A nil w means os.Stdout.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleSink{w: w}
}

func (s *ConsoleSink) Deliver(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.WriteString(s.w, line+"\n"); err != nil {
		return errx.Wrap(ErrWriteLine, err)
	}
	return nil
}

// Close is a no-op; the console sink does not own its writer.
func (s *ConsoleSink) Close() error { return nil }
