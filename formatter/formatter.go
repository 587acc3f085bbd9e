package formatter

import (
	"bytes"
	"sync"
	"time"

	"github.com/philipp01105/threadlog/core"
)

// TimestampLayout is the default prefix timestamp, dd.MM.yyyy hh:mm:ss
const TimestampLayout = "02.01.2006 15:04:05"

// Prefix holds everything a line prefix is built from
type Prefix struct {
	Time        time.Time
	Level       core.Level
	DisplayName string
	CallerLabel string
}

// Formatter renders the per-sink line prefixes
type Formatter interface {
	// FormatFilePrefix writes the file sink prefix into buf
	FormatFilePrefix(p *Prefix, buf *bytes.Buffer)
	// FormatConsolePrefix writes the console sink prefix into buf
	FormatConsolePrefix(p *Prefix, buf *bytes.Buffer)
}

// Config holds formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (empty for TimestampLayout)
	TimestampFormat string
	// LocalTime renders timestamps in the local zone instead of UTC
	LocalTime bool
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// GetBuffer returns an empty buffer from the pool
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns buf to the pool
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
