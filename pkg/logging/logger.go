package logging

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jingkaihe/appkit/internal/errx"
)

// Logger formats messages for a fixed context and dispatches them to its
// sinks in the order they were added.
//
// Every attached sink receives every emitted line, even when an earlier
// sink fails. Failures are joined and returned to the caller, counted in
// Metrics and reported to the fallback logger when one is set.
//
// Logger is safe for concurrent use.
type Logger struct {
	context  string
	now      func() time.Time
	metrics  *Metrics
	fallback *slog.Logger

	mu        sync.RWMutex
	threshold Level
	sinks     []Sink
}

// Option configures a Logger at construction.
type Option func(*Logger)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		if now != nil {
			l.now = now
		}
	}
}

// WithMetrics records emissions into m.
func WithMetrics(m *Metrics) Option {
	return func(l *Logger) { l.metrics = m }
}

// WithFallback reports sink failures to logger.
func WithFallback(logger *slog.Logger) Option {
	return func(l *Logger) { l.fallback = logger }
}

// WithSinks attaches sinks in the given order.
func WithSinks(sinks ...Sink) Option {
	return func(l *Logger) {
		for _, s := range sinks {
			l.addSink(s)
		}
	}
}

// New creates a Logger for context with no sinks and an info threshold.
func New(context string, opts ...Option) *Logger {
	l := &Logger{
		context:   context,
		now:       time.Now,
		threshold: LevelInfo,
		sinks:     []Sink{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Context returns the label given at construction.
func (l *Logger) Context() string { return l.context }

// AddSink appends s to the sink list. Nil sinks are ignored.
func (l *Logger) AddSink(s Sink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.addSink(s)
}

func (l *Logger) addSink(s Sink) {
	if s == nil {
		return
	}
	l.sinks = append(l.sinks, s)
}

// Sinks returns the number of attached sinks.
func (l *Logger) Sinks() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.sinks)
}

// SetThreshold sets the least severe level that is still emitted.
func (l *Logger) SetThreshold(level Level) error {
	if !level.Valid() {
		return errx.With(ErrUnknownLevel, ": %d", int(level))
	}
	l.mu.Lock()
	l.threshold = level
	l.mu.Unlock()
	return nil
}

// Threshold returns the current threshold.
func (l *Logger) Threshold() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.threshold
}

// Enabled reports whether a message at level would be emitted.
func (l *Logger) Enabled(level Level) bool {
	return l.Threshold().Allows(level)
}

func (l *Logger) Info(msg string) error  { return l.Log(LevelInfo, msg) }
func (l *Logger) Warn(msg string) error  { return l.Log(LevelWarn, msg) }
func (l *Logger) Error(msg string) error { return l.Log(LevelError, msg) }

func (l *Logger) Infof(format string, args ...any) error {
	return l.Log(LevelInfo, fmt.Sprintf(format, args...))
}

func (l *Logger) Warnf(format string, args ...any) error {
	return l.Log(LevelWarn, fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) error {
	return l.Log(LevelError, fmt.Sprintf(format, args...))
}

// Log formats msg once and delivers it to every sink if level passes the
// threshold. The returned error joins every sink failure; it is nil when
// all deliveries succeed or the message was suppressed.
func (l *Logger) Log(level Level, msg string) error {
	if !level.Valid() {
		return errx.With(ErrUnknownLevel, ": %d", int(level))
	}

	l.mu.RLock()
	threshold := l.threshold
	sinks := l.sinks[:len(l.sinks):len(l.sinks)]
	l.mu.RUnlock()

	if !threshold.Allows(level) {
		l.metrics.suppressed(l.context, level)
		return nil
	}
	l.metrics.emitted(l.context, level)

	entry := newEntry(l.now(), l.context, level, msg)

	var errs []error
	for i, sink := range sinks {
		var err error
		if es, ok := sink.(EntrySink); ok {
			err = es.DeliverEntry(entry)
		} else {
			err = sink.Deliver(entry.Line)
		}
		if err == nil {
			continue
		}
		l.metrics.sinkError(l.context)
		if l.fallback != nil {
			l.fallback.Warn("log sink delivery failed", "context", l.context, "sink", i, "error", err)
		}
		errs = append(errs, errx.With(ErrDeliver, " %d: %w", i, err))
	}
	return errors.Join(errs...)
}

// Close closes all sinks. Returns the first error encountered.
func (l *Logger) Close() error {
	l.mu.RLock()
	sinks := l.sinks[:len(l.sinks):len(l.sinks)]
	l.mu.RUnlock()

	var firstErr error
	for _, sink := range sinks {
		if err := sink.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
