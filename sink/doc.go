// Package sink provides the destinations a Logger writes to.
//
// A Sink accepts text fragments and line terminators. Writes are
// synchronous: each call returns once the bytes are handed to the
// destination. Every sink serialises its own writes with a mutex, because
// a Logger borrowed through the registry fallback may be used from more
// than one goroutine.
//
// Built-in sinks:
//
//   - FileSink appends to a file opened with O_APPEND. Fragments go into a
//     bufio.Writer that is flushed at every line terminator, so a reader
//     tailing the file only ever sees whole lines.
//   - Console writes to os.Stdout, or os.Stderr for ERROR lines. Stdio
//     returns the process-wide instance shared by all Loggers.
//   - Null stands in for a file that could not be opened; it drops and
//     counts everything.
//
// All sinks track fragments, lines, bytes and dropped writes via the
// Stats type.
package sink
