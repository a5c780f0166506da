package logging

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLSink_ValidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	s, err := NewJSONLSink(path, "run-1")
	require.NoError(t, err)

	l := New("AuthService", WithClock(fixedClock), WithSinks(s))
	require.NoError(t, l.Warn("token expiring"))
	require.NoError(t, l.Close())

	lines := readLines(t, path)
	require.Len(t, lines, 1)

	var rec Record
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "run-1", rec.RunID)
	assert.Equal(t, "AuthService", rec.Context)
	assert.Equal(t, LevelWarn, rec.Level)
	assert.Equal(t, "token expiring", rec.Message)
	assert.True(t, rec.Timestamp.Equal(fixedClock()))
}

func TestJSONLSink_FieldNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	s, err := NewJSONLSink(path, "r")
	require.NoError(t, err)
	require.NoError(t, s.DeliverEntry(newEntry(fixedClock(), "svc", LevelInfo, "m")))
	require.NoError(t, s.Close())

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(readLines(t, path)[0]), &m))
	for _, key := range []string{"ts", "run_id", "context", "level", "message"} {
		assert.Contains(t, m, key)
	}
	assert.Equal(t, "info", m["level"])
}

func TestJSONLSink_PlainDeliver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	s, err := NewJSONLSink(path, "r")
	require.NoError(t, err)
	require.NoError(t, s.Deliver("[x] [svc] [INFO] raw"))
	require.NoError(t, s.Close())

	var rec Record
	require.NoError(t, json.Unmarshal([]byte(readLines(t, path)[0]), &rec))
	assert.Equal(t, "[x] [svc] [INFO] raw", rec.Message)
}

func TestJSONLSink_MissingParentDir(t *testing.T) {
	_, err := NewJSONLSink(filepath.Join(t.TempDir(), "missing", "events.jsonl"), "r")
	assert.ErrorIs(t, err, ErrCreateLogFile)
}
