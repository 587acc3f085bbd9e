package core

import (
	"runtime"
	"strings"
)

// CallerLabel returns the short name of the function skip frames above
// the caller ("Worker.run" for "github.com/acme/app/pool.(*Worker).run").
// It returns an empty string when the frame is unavailable.
func CallerLabel(skip int) string {
	pc, _, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	return shortFuncName(fn.Name())
}

// shortFuncName strips the import path and pointer-receiver decoration
func shortFuncName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.Replace(name, "(*", "", 1)
	name = strings.Replace(name, ")", "", 1)
	return name
}
