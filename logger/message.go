package logger

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/philipp01105/threadlog/core"
	"github.com/philipp01105/threadlog/formatter"
	"github.com/philipp01105/threadlog/internal/shared"
	"github.com/philipp01105/threadlog/sink"
)

// Message builds one log statement from streamed fragments. The prefix is
// written once per line, right before the first fragment; the last Done
// terminates every line left open.
//
// A Message is not safe for concurrent use.
type Message struct {
	ref shared.Ref[*messageState]
}

// outlet is one sink as seen by a Message
type outlet struct {
	enabled bool
	started bool
	sink    sink.Sink
	format  func(p *formatter.Prefix, buf *bytes.Buffer)
}

type messageState struct {
	prefix  formatter.Prefix
	clock   core.Clock
	file    outlet
	console outlet
}

func newMessage(m *messageState) Message {
	return Message{ref: shared.New(m, finishMessage)}
}

func finishMessage(m *messageState) {
	m.finish(&m.file)
	m.finish(&m.console)
}

func (m *messageState) finish(o *outlet) {
	if o.enabled && o.started {
		o.sink.EndLine()
		o.started = false
	}
}

// writePrefix writes the pending prefix for o into buf
func (m *messageState) writePrefix(o *outlet, buf *bytes.Buffer) {
	if o.started || m.prefix.Level == core.PlaintextLevel {
		return
	}
	m.prefix.Time = m.clock()
	o.format(&m.prefix, buf)
}

// emit writes the pending prefix and one fragment to o in a single write.
// Either frag or text carries the fragment.
func (m *messageState) emit(o *outlet, frag []byte, text string) {
	if !o.enabled {
		return
	}
	buf := formatter.GetBuffer()
	m.writePrefix(o, buf)
	buf.Write(frag)
	buf.WriteString(text)
	o.sink.Write(buf.Bytes())
	o.started = true
	formatter.PutBuffer(buf)
}

func (m *messageState) endLine(o *outlet) {
	if !o.enabled {
		return
	}
	buf := formatter.GetBuffer()
	m.writePrefix(o, buf)
	if buf.Len() > 0 {
		o.sink.Write(buf.Bytes())
	}
	formatter.PutBuffer(buf)
	o.sink.EndLine()
	o.started = false
}

// state returns nil for an invalid or finished Message
func (msg Message) state() *messageState {
	if msg.ref.Count() <= 0 {
		return nil
	}
	return msg.ref.Value()
}

func (msg Message) appendBytes(frag []byte) {
	m := msg.state()
	if m == nil {
		return
	}
	m.emit(&m.file, frag, "")
	m.emit(&m.console, frag, "")
}

// Valid reports whether the Message writes anywhere
func (msg Message) Valid() bool {
	return msg.state() != nil
}

// Level returns the message severity
func (msg Message) Level() core.Level {
	if m := msg.state(); m != nil {
		return m.prefix.Level
	}
	return core.InfoLevel
}

// FileEnabled reports whether the message reaches the file sink
func (msg Message) FileEnabled() bool {
	m := msg.state()
	return m != nil && m.file.enabled
}

// ConsoleEnabled reports whether the message reaches the console sink
func (msg Message) ConsoleEnabled() bool {
	m := msg.state()
	return m != nil && m.console.enabled
}

// Append writes s to every enabled sink, preceded by the prefix if the
// line has not started yet.
func (msg Message) Append(s string) Message {
	m := msg.state()
	if m == nil {
		return msg
	}
	m.emit(&m.file, nil, s)
	m.emit(&m.console, nil, s)
	return msg
}

// AppendInt appends v in base 10
func (msg Message) AppendInt(v int64) Message {
	var scratch [20]byte
	msg.appendBytes(strconv.AppendInt(scratch[:0], v, 10))
	return msg
}

// AppendUint appends v in base 10
func (msg Message) AppendUint(v uint64) Message {
	var scratch [20]byte
	msg.appendBytes(strconv.AppendUint(scratch[:0], v, 10))
	return msg
}

// AppendValue appends the text form of v (see core.Text)
func (msg Message) AppendValue(v interface{}) Message {
	if !msg.Valid() {
		return msg
	}
	return msg.Append(core.Text(v))
}

// Appendf appends fmt.Sprintf(format, args...)
func (msg Message) Appendf(format string, args ...interface{}) Message {
	if !msg.Valid() {
		return msg
	}
	return msg.Append(fmt.Sprintf(format, args...))
}

// Write implements io.Writer. It never fails.
func (msg Message) Write(p []byte) (int, error) {
	msg.appendBytes(p)
	return len(p), nil
}

// WriteString implements io.StringWriter. It never fails.
func (msg Message) WriteString(s string) (int, error) {
	msg.Append(s)
	return len(s), nil
}

// EndLine terminates the current line on every enabled sink. A line with
// no fragments still gets its prefix.
func (msg Message) EndLine() Message {
	m := msg.state()
	if m == nil {
		return msg
	}
	m.endLine(&m.file)
	m.endLine(&m.console)
	return msg
}

// Retain returns a handle holding its own reference to the message
func (msg Message) Retain() Message {
	return Message{ref: msg.ref.Retain()}
}

// Done drops this handle's reference. The last Done terminates any line
// that received fragments but no EndLine.
func (msg Message) Done() {
	msg.ref.Release()
}
