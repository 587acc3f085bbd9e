package core

import (
	"strconv"

	"github.com/philipp01105/threadlog/internal/goid"
)

// ThreadID identifies the goroutine (or caller-defined worker) that owns a
// Logger.
type ThreadID uint64

// CurrentThread returns the identity of the calling goroutine
func CurrentThread() ThreadID {
	return ThreadID(goid.Get())
}

// String returns the decimal form of the id
func (id ThreadID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Named is implemented by objects that carry a display name for log
// prefixes.
type Named interface {
	LogName() string
}
