package sink

import (
	"bufio"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// FileConfig holds configuration for a file sink
type FileConfig struct {
	// Folder holds the log file. Relative paths resolve against the
	// working directory at open time. Created recursively if missing.
	Folder string
	// Filename is the log file name inside Folder
	Filename string
	// BufferSize is the size of the write buffer (default: 4096)
	BufferSize int
}

// FileSink appends lines to a file. Fragments are buffered and flushed at
// every line terminator.
type FileSink struct {
	path      string
	file      *os.File
	bufWriter *bufio.Writer
	mu        sync.Mutex
	stats     *Stats
	closed    bool
}

// ResolveFolder turns folder into an absolute path, resolving relative
// paths against the current working directory.
func ResolveFolder(folder string) (string, error) {
	if filepath.IsAbs(folder) {
		return filepath.Clean(folder), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "resolve working directory")
	}
	return filepath.Join(wd, folder), nil
}

// OpenFile creates the folder if needed and opens the log file for
// append. The file is never truncated.
func OpenFile(cfg FileConfig) (*FileSink, error) {
	if cfg.Filename == "" {
		return nil, errors.New("filename is required")
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 4096
	}

	dir, err := ResolveFolder(cfg.Folder)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "create log folder %s", dir)
	}

	path := filepath.Join(dir, cfg.Filename)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", path)
	}

	return &FileSink{
		path:      path,
		file:      file,
		bufWriter: bufio.NewWriterSize(file, cfg.BufferSize),
		stats:     NewStats(),
	}, nil
}

// Path returns the absolute path of the log file
func (s *FileSink) Path() string {
	return s.path
}

// Write buffers one fragment
func (s *FileSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		s.stats.IncrementDropped()
		return 0, ErrClosed
	}
	n, err := s.bufWriter.Write(p)
	if err != nil {
		s.stats.IncrementDropped()
		return n, err
	}
	s.stats.IncrementFragment(n)
	return n, nil
}

// EndLine writes the terminator and flushes the line to the file
func (s *FileSink) EndLine() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		s.stats.IncrementDropped()
		return ErrClosed
	}
	if err := s.bufWriter.WriteByte(Terminator); err != nil {
		s.stats.IncrementDropped()
		return err
	}
	s.stats.IncrementLine()
	return s.bufWriter.Flush()
}

// Flush pushes buffered bytes to the file
func (s *FileSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	return s.bufWriter.Flush()
}

// Stats returns a snapshot of the current statistics
func (s *FileSink) Stats() Snapshot {
	return s.stats.GetSnapshot()
}

// Close flushes, syncs and closes the underlying file. Calling Close more
// than once is a no-op.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	err := s.bufWriter.Flush()
	err = multierr.Append(err, s.file.Sync())
	err = multierr.Append(err, s.file.Close())
	return errors.Wrapf(err, "close log file %s", s.path)
}
