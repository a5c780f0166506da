package logging

// Sink receives fully formatted log lines.
// Implementations must be safe for concurrent use.
type Sink interface {
	// Deliver writes one line. The line carries no trailing newline.
	Deliver(line string) error

	// Close flushes any buffered data and releases resources.
	Close() error
}

// EntrySink is implemented by sinks that want the structured entry rather
// than the preformatted line. The Logger calls DeliverEntry instead of
// Deliver for such sinks.
type EntrySink interface {
	Sink
	DeliverEntry(entry *Entry) error
}

// NopSink discards everything.
type NopSink struct{}

func (NopSink) Deliver(string) error { return nil }
func (NopSink) Close() error         { return nil }
