package logging

import (
	"time"

	"github.com/valyala/bytebufferpool"
)

// TimestampLayout is UTC ISO-8601 with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Entry is a single emission. Line holds the formatted text every sink
// receives; the other fields are there for sinks that want structure.
type Entry struct {
	Time    time.Time
	Context string
	Level   Level
	Message string
	Line    string
}

// FormatLine renders "[<timestamp>] [<context>] [<LEVEL>] <message>".
func FormatLine(ts time.Time, context string, level Level, message string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.B = append(buf.B, '[')
	buf.B = ts.UTC().AppendFormat(buf.B, TimestampLayout)
	buf.WriteString("] [")
	buf.WriteString(context)
	buf.WriteString("] [")
	buf.WriteString(level.Tag())
	buf.WriteString("] ")
	buf.WriteString(message)
	return buf.String()
}

func newEntry(ts time.Time, context string, level Level, message string) *Entry {
	return &Entry{
		Time:    ts.UTC(),
		Context: context,
		Level:   level,
		Message: message,
		Line:    FormatLine(ts, context, level, message),
	}
}
