package adapter

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/philipp01105/threadlog/core"
	"github.com/philipp01105/threadlog/formatter"
	"github.com/philipp01105/threadlog/logger"
)

// SlogHandler implements slog.Handler on top of a Registry. Each record
// goes to the Logger of the goroutine that logs it, as one line with the
// attributes appended as " key=value".
type SlogHandler struct {
	registry *logger.Registry
	label    string
	attrs    []byte
	group    string
}

// NewSlogHandler creates a slog.Handler writing to r. label is the caller
// label of every line.
func NewSlogHandler(r *logger.Registry, label string) *SlogHandler {
	return &SlogHandler{
		registry: r,
		label:    label,
	}
}

// Enabled reports whether the current Logger writes records at level to
// at least one sink.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return enabled(s.registry.Current(), slogLevelToCore(level))
}

// Handle writes the record to the current goroutine's Logger.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	msg := s.registry.Current().NewMessage(s.label, slogLevelToCore(record.Level))
	if !msg.Valid() {
		return nil
	}
	defer msg.Done()

	msg.Append(record.Message)
	if len(s.attrs) > 0 {
		msg.Write(s.attrs)
	}
	if record.NumAttrs() > 0 {
		buf := formatter.GetBuffer()
		record.Attrs(func(a slog.Attr) bool {
			appendSlogAttr(buf, s.group, a)
			return true
		})
		msg.Write(buf.Bytes())
		formatter.PutBuffer(buf)
	}
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	buf := bytes.NewBuffer(append([]byte(nil), s.attrs...))
	for _, a := range attrs {
		appendSlogAttr(buf, s.group, a)
	}
	return &SlogHandler{
		registry: s.registry,
		label:    s.label,
		attrs:    buf.Bytes(),
		group:    s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		registry: s.registry,
		label:    s.label,
		attrs:    s.attrs,
		group:    newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.MandatoryLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level > slog.LevelDebug:
		return core.VerboseLevel
	default:
		return core.DebugLevel
	}
}

// appendSlogAttr writes " key=value", prefixing the key with the group.
// Group attributes are flattened.
func appendSlogAttr(buf *bytes.Buffer, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendSlogAttr(buf, key, ga)
		}
		return
	}

	buf.WriteByte(' ')
	buf.WriteString(key)
	buf.WriteByte('=')
	buf.WriteString(core.Text(a.Value.Any()))
}

// enabled reports whether l writes a message at level anywhere
func enabled(l logger.Logger, level core.Level) bool {
	if !l.Valid() {
		return false
	}
	consoleLevel, fileLevel := l.Thresholds()
	return level.Passes(consoleLevel) || level.Passes(fileLevel)
}
