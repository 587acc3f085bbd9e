// Package core defines the shared types used across threadlog.
//
// It provides the Level type, an ordered severity scale
// (DEBUG < VERBOSE < INFO < MANDATORY < ERROR) plus PLAINTEXT, which sits
// outside the ordering and passes every threshold. Level.Passes is the
// single gating rule used by every sink.
//
// ThreadID is the identity a Logger is registered under. CurrentThread
// derives it from the running goroutine, so a worker that calls Register
// once keeps finding its own Logger afterwards.
//
// Text is the canonical text conversion used when arbitrary values are
// appended to a log line. The coarse clock caches time.Now() for callers
// that log at high rates and only need second-resolution prefixes.
package core
