package logging

import (
	"strings"

	"github.com/jingkaihe/appkit/internal/errx"
)

// Level is a message severity. Lower values are more severe, so a message
// passes a threshold when its Level is less than or equal to it.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
)

// Levels lists every level from most to least severe.
var Levels = []Level{LevelError, LevelWarn, LevelInfo}

// ParseLevel accepts "error", "warn" or "info" in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LevelError, nil
	case "warn":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	}
	return 0, errx.With(ErrUnknownLevel, ": %q (expected info, warn or error)", s)
}

// Valid reports whether l is one of the declared levels.
func (l Level) Valid() bool {
	return l >= LevelError && l <= LevelInfo
}

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	}
	return "unknown"
}

// Tag is the upper-case form written into log lines.
func (l Level) Tag() string {
	return strings.ToUpper(l.String())
}

// Allows reports whether a message at level msg passes threshold l.
func (l Level) Allows(msg Level) bool {
	return msg <= l
}

func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, errx.With(ErrUnknownLevel, ": %d", int(l))
	}
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(b []byte) error {
	parsed, err := ParseLevel(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
