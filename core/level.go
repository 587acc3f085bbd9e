package core

import (
	"strings"

	"github.com/pkg/errors"
)

// Level represents the severity of a log message
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// VerboseLevel for chatty progress information
	VerboseLevel
	// InfoLevel for general informational messages
	InfoLevel
	// MandatoryLevel for messages that should always reach an operator
	MandatoryLevel
	// ErrorLevel for error messages
	ErrorLevel
	// PlaintextLevel is outside the ordering: it passes every threshold
	// and its lines carry no prefix.
	PlaintextLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case VerboseLevel:
		return "VERBOSE"
	case InfoLevel:
		return "INFO"
	case MandatoryLevel:
		return "MANDATORY"
	case ErrorLevel:
		return "ERROR"
	case PlaintextLevel:
		return "PLAINTEXT"
	default:
		return "UNKNOWN"
	}
}

// Passes reports whether a message at level l reaches a sink whose
// minimum level is threshold.
func (l Level) Passes(threshold Level) bool {
	return l == PlaintextLevel || l >= threshold
}

// ParseLevel converts a level name (case-insensitive) to a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, nil
	case "VERBOSE":
		return VerboseLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "MANDATORY":
		return MandatoryLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "PLAINTEXT":
		return PlaintextLevel, nil
	default:
		return InfoLevel, errors.Errorf("unknown level %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
