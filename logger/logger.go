package logger

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/philipp01105/threadlog/config"
	"github.com/philipp01105/threadlog/core"
	"github.com/philipp01105/threadlog/formatter"
	"github.com/philipp01105/threadlog/internal/shared"
	"github.com/philipp01105/threadlog/sink"
)

var (
	// ErrInvalidLogger is returned by operations on the zero Logger
	ErrInvalidLogger = errors.New("logger: invalid logger")
	// ErrLoggerClosed is returned by Initialize after shutdown
	ErrLoggerClosed = errors.New("logger: closed")
)

// Logger is a handle to one goroutine's logging state. Copies share the
// state; the zero Logger is invalid and every operation on it is a no-op.
//
// Handles returned by a Registry are borrowed: the registry owns the
// reference until Close, and Release on a borrowed handle does nothing.
// Retain turns any handle into an owned one.
type Logger struct {
	ref      shared.Ref[*loggerState]
	borrowed bool
}

type loggerState struct {
	mu           sync.RWMutex
	name         string
	thread       core.ThreadID
	file         sink.Sink
	console      *sink.Console
	formatter    formatter.Formatter
	clock        core.Clock
	diagnostics  *zap.Logger
	consoleLevel core.Level
	fileLevel    core.Level
	closed       bool
}

func newLogger(s *loggerState) Logger {
	return Logger{ref: shared.New(s, releaseLogger)}
}

func releaseLogger(s *loggerState) {
	if err := s.shutdown(); err != nil {
		s.diagnostics.Error("close log file", zap.String("logger", s.name), zap.Error(err))
	}
}

// shutdown closes the file sink. Messages created afterwards are inert.
func (s *loggerState) shutdown() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	f := s.file
	s.file = sink.NewNull()
	s.mu.Unlock()

	return errors.Wrapf(f.Close(), "logger %q", s.name)
}

func (l Logger) state() *loggerState {
	return l.ref.Value()
}

// Valid reports whether l was built by a Builder or Registry
func (l Logger) Valid() bool {
	return l.ref.Valid()
}

// Name returns the display name
func (l Logger) Name() string {
	if s := l.state(); s != nil {
		return s.name
	}
	return ""
}

// Thread returns the id the Logger was registered for
func (l Logger) Thread() core.ThreadID {
	s := l.state()
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.thread
}

// Thresholds returns the console and file minimum levels
func (l Logger) Thresholds() (consoleLevel, fileLevel core.Level) {
	s := l.state()
	if s == nil {
		return core.InfoLevel, core.InfoLevel
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.consoleLevel, s.fileLevel
}

// Same reports whether l and o are handles to the same Logger
func (l Logger) Same(o Logger) bool {
	return l.ref.Same(o.ref)
}

// Retain returns a handle holding its own reference. Release it when done.
func (l Logger) Retain() Logger {
	return Logger{ref: l.ref.Retain()}
}

// Release drops the handle's reference. The last release closes the file
// sink. Borrowed handles hold no reference of their own.
func (l Logger) Release() {
	if l.borrowed {
		return
	}
	l.ref.Release()
}

// borrow returns a handle sharing l's reference
func (l Logger) borrow() Logger {
	return Logger{ref: l.ref, borrowed: true}
}

// Initialize opens folder/filename for append and sets both thresholds.
// A relative folder resolves against the working directory and is
// created if missing. If the file cannot be opened the failure is
// reported to the diagnostics logger and returned, the Logger stays
// usable and file output is dropped. Calling Initialize again replaces
// the previous file.
func (l Logger) Initialize(folder, filename string, consoleLevel, fileLevel core.Level) error {
	s := l.state()
	if s == nil {
		return ErrInvalidLogger
	}

	var next sink.Sink
	f, openErr := sink.OpenFile(sink.FileConfig{Folder: folder, Filename: filename})
	if openErr != nil {
		next = sink.NewNull()
	} else {
		next = f
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		next.Close()
		return ErrLoggerClosed
	}
	prev := s.file
	s.file = next
	s.consoleLevel = consoleLevel
	s.fileLevel = fileLevel
	s.mu.Unlock()

	if err := prev.Close(); err != nil {
		s.diagnostics.Warn("close previous log file", zap.String("logger", s.name), zap.Error(err))
	}

	if openErr != nil {
		s.diagnostics.Error("cannot open log file",
			zap.String("logger", s.name),
			zap.String("folder", folder),
			zap.String("filename", filename),
			zap.Error(openErr),
		)
		return errors.Wrapf(openErr, "initialize logger %q", s.name)
	}
	return nil
}

// InitializeFromConfig calls Initialize with the folder, file name and
// thresholds of cfg.
func (l Logger) InitializeFromConfig(cfg *config.Config) error {
	consoleLevel, fileLevel, err := cfg.Levels()
	if err != nil {
		return errors.Wrap(err, "initialize from config")
	}
	return l.Initialize(cfg.Folder, cfg.Filename, consoleLevel, fileLevel)
}

// Flush pushes buffered file output to disk
func (l Logger) Flush() error {
	s := l.state()
	if s == nil {
		return nil
	}
	s.mu.RLock()
	f := s.file
	s.mu.RUnlock()
	if fl, ok := f.(interface{ Flush() error }); ok {
		return fl.Flush()
	}
	return nil
}

// Stats holds the counters of a Logger's sinks
type Stats struct {
	File sink.Snapshot
	// Console counts every Logger sharing the console sink
	Console sink.Snapshot
}

// Stats returns the current sink counters
func (l Logger) Stats() Stats {
	s := l.state()
	if s == nil {
		return Stats{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{File: s.file.Stats(), Console: s.console.Stats()}
}

// NewMessage starts a message at level. callerLabel names the code
// emitting it and appears in the prefix unless it equals the display
// name. Which sinks the message reaches is decided here, once.
func (l Logger) NewMessage(callerLabel string, level core.Level) Message {
	s := l.state()
	if s == nil {
		return Message{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return Message{}
	}

	fileOn := level.Passes(s.fileLevel)
	consoleOn := level.Passes(s.consoleLevel)
	if !fileOn && !consoleOn {
		return Message{}
	}

	m := &messageState{
		prefix: formatter.Prefix{Level: level, CallerLabel: callerLabel},
		clock:  s.clock,
	}
	if fileOn {
		// The display name is only known to lines that reach the file
		m.prefix.DisplayName = s.name
		m.file = outlet{enabled: true, sink: s.file, format: s.formatter.FormatFilePrefix}
	}
	if consoleOn {
		m.console = outlet{enabled: true, sink: s.console.For(level), format: s.formatter.FormatConsolePrefix}
	}
	return newMessage(m)
}

// NewMessageHere starts a message labelled with the calling function
func (l Logger) NewMessageHere(level core.Level) Message {
	if !l.Valid() {
		return Message{}
	}
	return l.NewMessage(core.CallerLabel(1), level)
}

// MessageFor starts a message labelled with obj's log name
func (l Logger) MessageFor(obj core.Named, level core.Level) Message {
	var label string
	if obj != nil {
		label = obj.LogName()
	}
	return l.NewMessage(label, level)
}

// Debug starts a DEBUG message
func (l Logger) Debug(callerLabel string) Message {
	return l.NewMessage(callerLabel, core.DebugLevel)
}

// Verbose starts a VERBOSE message
func (l Logger) Verbose(callerLabel string) Message {
	return l.NewMessage(callerLabel, core.VerboseLevel)
}

// Info starts an INFO message
func (l Logger) Info(callerLabel string) Message {
	return l.NewMessage(callerLabel, core.InfoLevel)
}

// Mandatory starts a MANDATORY message
func (l Logger) Mandatory(callerLabel string) Message {
	return l.NewMessage(callerLabel, core.MandatoryLevel)
}

// Error starts an ERROR message. On the console it goes to stderr.
func (l Logger) Error(callerLabel string) Message {
	return l.NewMessage(callerLabel, core.ErrorLevel)
}

// Plaintext starts a message that reaches both sinks without a prefix
func (l Logger) Plaintext() Message {
	return l.NewMessage("", core.PlaintextLevel)
}
