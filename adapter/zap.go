package adapter

import (
	"slices"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/threadlog/core"
	"github.com/philipp01105/threadlog/formatter"
	"github.com/philipp01105/threadlog/logger"
)

// ZapCore is a zapcore.Core that writes every entry to the Logger of the
// goroutine that logs it. Fields are appended as " key=value", sorted by
// key. The zap logger name, if set, becomes the caller label.
type ZapCore struct {
	registry *logger.Registry
	label    string
	fields   []zapcore.Field
}

var _ zapcore.Core = (*ZapCore)(nil)

// NewZapCore creates a core writing to r with the given default caller label
func NewZapCore(r *logger.Registry, label string) *ZapCore {
	return &ZapCore{
		registry: r,
		label:    label,
	}
}

// Enabled reports whether the current Logger writes entries at lvl
func (c *ZapCore) Enabled(lvl zapcore.Level) bool {
	return enabled(c.registry.Current(), zapLevelToCore(lvl))
}

// With returns a core carrying additional fields
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	return &ZapCore{
		registry: c.registry,
		label:    c.label,
		fields:   append(slices.Clip(c.fields), fields...),
	}
}

// Check adds c to ce if the entry is enabled
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write writes one entry as one line
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	label := c.label
	if ent.LoggerName != "" {
		label = ent.LoggerName
	}
	msg := c.registry.Current().NewMessage(label, zapLevelToCore(ent.Level))
	if !msg.Valid() {
		return nil
	}
	defer msg.Done()

	msg.Append(ent.Message)
	if len(c.fields) == 0 && len(fields) == 0 {
		return nil
	}

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}
	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	buf := formatter.GetBuffer()
	for _, k := range keys {
		buf.WriteByte(' ')
		buf.WriteString(k)
		buf.WriteByte('=')
		buf.WriteString(core.Text(enc.Fields[k]))
	}
	msg.Write(buf.Bytes())
	formatter.PutBuffer(buf)
	return nil
}

// Sync flushes the current Logger's file
func (c *ZapCore) Sync() error {
	return c.registry.Current().Flush()
}

// zapLevelToCore converts a zapcore.Level to a core.Level.
func zapLevelToCore(lvl zapcore.Level) core.Level {
	switch {
	case lvl >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case lvl >= zapcore.WarnLevel:
		return core.MandatoryLevel
	case lvl >= zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
