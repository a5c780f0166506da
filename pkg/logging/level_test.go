package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"error": LevelError,
		"warn":  LevelWarn,
		"info":  LevelInfo,
		"INFO":  LevelInfo,
		" Warn": LevelWarn,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseLevel_Rejects(t *testing.T) {
	for _, in := range []string{"", "debug", "warning", "fatal"} {
		_, err := ParseLevel(in)
		assert.ErrorIs(t, err, ErrUnknownLevel, in)
	}
}

func TestLevel_Rank(t *testing.T) {
	assert.Equal(t, 0, int(LevelError))
	assert.Equal(t, 1, int(LevelWarn))
	assert.Equal(t, 2, int(LevelInfo))
}

func TestLevel_Allows(t *testing.T) {
	assert.True(t, LevelInfo.Allows(LevelError))
	assert.True(t, LevelInfo.Allows(LevelInfo))
	assert.True(t, LevelWarn.Allows(LevelWarn))
	assert.False(t, LevelWarn.Allows(LevelInfo))
	assert.True(t, LevelError.Allows(LevelError))
	assert.False(t, LevelError.Allows(LevelWarn))
}

func TestLevel_Tags(t *testing.T) {
	assert.Equal(t, "ERROR", LevelError.Tag())
	assert.Equal(t, "WARN", LevelWarn.Tag())
	assert.Equal(t, "INFO", LevelInfo.Tag())
	assert.Equal(t, "unknown", Level(9).String())
}

func TestLevel_Text(t *testing.T) {
	b, err := LevelWarn.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "warn", string(b))

	_, err = Level(5).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownLevel)

	var l Level
	require.NoError(t, l.UnmarshalText([]byte("ERROR")))
	assert.Equal(t, LevelError, l)
	assert.ErrorIs(t, l.UnmarshalText([]byte("loud")), ErrUnknownLevel)
}
