// Package adapter lets code written against log/slog or zap log through
// threadlog. Both adapters resolve the calling goroutine's Logger from a
// Registry on every record, so one handler serves all workers:
//
//	reg := logger.NewRegistry(nil)
//	slog.SetDefault(slog.New(adapter.NewSlogHandler(reg, "slog")))
//	zl := zap.New(adapter.NewZapCore(reg, "zap"))
//
// Levels map onto the threadlog scale: warnings become MANDATORY and
// slog levels between DEBUG and INFO become VERBOSE.
package adapter
