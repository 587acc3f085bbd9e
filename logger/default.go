package logger

import (
	"sync"

	"github.com/philipp01105/threadlog/core"
)

var (
	defaultRegistry = NewRegistry(nil)
	defaultMu       sync.RWMutex
)

// Default returns the default registry
func Default() *Registry {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRegistry
}

// SetDefault sets the default registry
func SetDefault(r *Registry) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = r
}

// Package-level convenience functions using the default registry

// Register registers the calling goroutine with the default registry
func Register(displayName string) Logger {
	return Default().Register(displayName)
}

// Current returns the calling goroutine's Logger from the default registry
func Current() Logger {
	return Default().Current()
}

// NewMessage starts a message on the current Logger
func NewMessage(callerLabel string, level core.Level) Message {
	return Current().NewMessage(callerLabel, level)
}

// Debug starts a DEBUG message on the current Logger
func Debug(callerLabel string) Message {
	return Current().Debug(callerLabel)
}

// Verbose starts a VERBOSE message on the current Logger
func Verbose(callerLabel string) Message {
	return Current().Verbose(callerLabel)
}

// Info starts an INFO message on the current Logger
func Info(callerLabel string) Message {
	return Current().Info(callerLabel)
}

// Mandatory starts a MANDATORY message on the current Logger
func Mandatory(callerLabel string) Message {
	return Current().Mandatory(callerLabel)
}

// Error starts an ERROR message on the current Logger
func Error(callerLabel string) Message {
	return Current().Error(callerLabel)
}

// Plaintext starts an unprefixed message on the current Logger
func Plaintext() Message {
	return Current().Plaintext()
}
