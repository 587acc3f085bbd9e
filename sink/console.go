package sink

import (
	"io"
	"os"
	"sync"

	"github.com/philipp01105/threadlog/core"
)

// ConsoleConfig holds configuration for the console sink
type ConsoleConfig struct {
	// Writer receives every level except ERROR (default: os.Stdout)
	Writer io.Writer
	// ErrWriter receives ERROR lines (default: os.Stderr)
	ErrWriter io.Writer
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.ErrWriter == nil {
		cfg.ErrWriter = os.Stderr
	}
}

// Console is the console sink pair: a standard stream for ordinary lines
// and an error stream for ERROR lines.
type Console struct {
	out   *stream
	err   *stream
	stats *Stats
}

// NewConsole creates a console sink. When Writer and ErrWriter are the
// same writer both streams share one lock.
func NewConsole(cfg ConsoleConfig) *Console {
	applyConsoleDefaults(&cfg)

	c := &Console{stats: NewStats()}
	outMu := &sync.Mutex{}
	errMu := outMu
	if cfg.ErrWriter != cfg.Writer {
		errMu = &sync.Mutex{}
	}
	c.out = &stream{w: cfg.Writer, mu: outMu, stats: c.stats}
	c.err = &stream{w: cfg.ErrWriter, mu: errMu, stats: c.stats}
	return c
}

var stdio = sync.OnceValue(func() *Console {
	return NewConsole(ConsoleConfig{})
})

// Stdio returns the process-wide console sink on os.Stdout and os.Stderr
func Stdio() *Console {
	return stdio()
}

// For returns the stream a message at level writes to
func (c *Console) For(level core.Level) Sink {
	if level == core.ErrorLevel {
		return c.err
	}
	return c.out
}

// Stats returns a snapshot covering both streams
func (c *Console) Stats() Snapshot {
	return c.stats.GetSnapshot()
}

// stream writes fragments straight to its writer under a lock
type stream struct {
	w     io.Writer
	mu    *sync.Mutex
	stats *Stats
}

var terminator = []byte{Terminator}

func (s *stream) Write(p []byte) (int, error) {
	s.mu.Lock()
	n, err := s.w.Write(p)
	s.mu.Unlock()
	if err != nil {
		s.stats.IncrementDropped()
		return n, err
	}
	s.stats.IncrementFragment(n)
	return n, nil
}

func (s *stream) EndLine() error {
	s.mu.Lock()
	_, err := s.w.Write(terminator)
	s.mu.Unlock()
	if err != nil {
		s.stats.IncrementDropped()
		return err
	}
	s.stats.IncrementLine()
	return nil
}

func (s *stream) Stats() Snapshot {
	return s.stats.GetSnapshot()
}

// Close does not close the process streams
func (s *stream) Close() error {
	return nil
}
