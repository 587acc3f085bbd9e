package sink

import (
	"github.com/pkg/errors"
)

var (
	// ErrClosed is returned by writes to a sink after Close
	ErrClosed = errors.New("sink: closed")
	// ErrNotOpen is returned by a Null sink; the destination never opened
	ErrNotOpen = errors.New("sink: not open")
)

// Terminator ends every log line
const Terminator = '\n'

// Sink is a destination that accepts text fragments and line terminators.
// Implementations serialise their own writes.
type Sink interface {
	// Write writes one fragment of the current line, prefix included
	Write(p []byte) (int, error)

	// EndLine writes the line terminator and pushes buffered bytes out
	EndLine() error

	// Stats returns a snapshot of the sink's counters
	Stats() Snapshot

	// Close flushes and releases the destination
	Close() error
}
