// Package goid extracts the id of the running goroutine.
package goid

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

var goroutinePrefix = []byte("goroutine ")

var stackBuf = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 64)
		return &buf
	},
}

// Get returns the id of the calling goroutine, parsed out of the first
// line of its stack trace ("goroutine 4707 [running]:"). It returns 0 if
// the header cannot be parsed.
func Get() uint64 {
	bp := stackBuf.Get().(*[]byte)
	defer stackBuf.Put(bp)

	b := *bp
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, goroutinePrefix)
	i := bytes.IndexByte(b, ' ')
	if i < 0 {
		return 0
	}
	id, err := strconv.ParseUint(string(b[:i]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
