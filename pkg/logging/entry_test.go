package logging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatLine_ConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	ts := time.Date(2026, 2, 23, 16, 30, 0, 0, loc)

	got := FormatLine(ts, "svc", LevelInfo, "hi")
	assert.Equal(t, "[2026-02-23T14:30:00.000Z] [svc] [INFO] hi", got)
}

func TestFormatLine_MillisecondTruncation(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 987654321, time.UTC)
	got := FormatLine(ts, "svc", LevelWarn, "")
	assert.Equal(t, "[2026-01-02T03:04:05.987Z] [svc] [WARN] ", got)
}

func TestFormatLine_ContextVerbatim(t *testing.T) {
	got := FormatLine(fixedClock(), "  odd [ctx] ", LevelError, "m")
	assert.Equal(t, "[2026-02-23T14:30:00.123Z] [  odd [ctx] ] [ERROR] m", got)
}

func TestNewEntry(t *testing.T) {
	e := newEntry(fixedClock(), "svc", LevelInfo, "hello")
	assert.Equal(t, "svc", e.Context)
	assert.Equal(t, LevelInfo, e.Level)
	assert.Equal(t, "hello", e.Message)
	assert.Equal(t, FormatLine(fixedClock(), "svc", LevelInfo, "hello"), e.Line)
}
