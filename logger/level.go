package logger

import (
	"github.com/philipp01105/threadlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel     = core.DebugLevel
	VerboseLevel   = core.VerboseLevel
	InfoLevel      = core.InfoLevel
	MandatoryLevel = core.MandatoryLevel
	ErrorLevel     = core.ErrorLevel
	PlaintextLevel = core.PlaintextLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
