package formatter

import (
	"bytes"

	"github.com/philipp01105/threadlog/core"
)

// TextFormatter renders prefixes of the form
//
//	file:    "<timestamp> <LEVEL>[ <caller>]: "
//	console: "[<name>: ]<timestamp> <LEVEL>[ <caller>]: "
//
// The caller label is only written when it differs from the display name.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = TimestampLayout
	}
	return &TextFormatter{Config: cfg}
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelNames = [...]string{
	core.DebugLevel:     " DEBUG",
	core.VerboseLevel:   " VERBOSE",
	core.InfoLevel:      " INFO",
	core.MandatoryLevel: " MANDATORY",
	core.ErrorLevel:     " ERROR",
	core.PlaintextLevel: " PLAINTEXT",
}

// FormatFilePrefix writes the file sink prefix
func (f *TextFormatter) FormatFilePrefix(p *Prefix, buf *bytes.Buffer) {
	if p.Level == core.PlaintextLevel {
		return
	}
	f.formatCommon(p, buf)
	buf.WriteString(": ")
}

// FormatConsolePrefix writes the console sink prefix
func (f *TextFormatter) FormatConsolePrefix(p *Prefix, buf *bytes.Buffer) {
	if p.Level == core.PlaintextLevel {
		return
	}
	if p.DisplayName != "" {
		buf.WriteString(p.DisplayName)
		buf.WriteString(": ")
	}
	f.formatCommon(p, buf)
	buf.WriteString(": ")
}

// formatCommon writes the segment shared by both sinks
func (f *TextFormatter) formatCommon(p *Prefix, buf *bytes.Buffer) {
	t := p.Time
	if !f.LocalTime {
		t = t.UTC()
	}
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(t.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	if int(p.Level) >= 0 && int(p.Level) < len(levelNames) {
		buf.WriteString(levelNames[p.Level])
	} else {
		buf.WriteString(" UNKNOWN")
	}

	if p.CallerLabel != p.DisplayName {
		buf.WriteByte(' ')
		buf.WriteString(p.CallerLabel)
	}
}
