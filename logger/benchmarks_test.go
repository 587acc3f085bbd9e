package logger

import (
	"io"
	"testing"

	"go.uber.org/zap"

	"github.com/philipp01105/threadlog/sink"
)

func newBenchLogger(b *testing.B, consoleLevel, fileLevel Level) Logger {
	b.Helper()
	reg := NewRegistry(NewBuilder().
		WithConsole(sink.NewConsole(sink.ConsoleConfig{Writer: io.Discard, ErrWriter: io.Discard})).
		WithDiagnostics(zap.NewNop()))
	b.Cleanup(func() { reg.Close() })

	l := reg.Register("bench")
	if err := l.Initialize(b.TempDir(), "bench.log", consoleLevel, fileLevel); err != nil {
		b.Fatal(err)
	}
	return l
}

// BenchmarkInfoConsoleOnly benchmarks a one-fragment message to a discard console.
func BenchmarkInfoConsoleOnly(b *testing.B) {
	l := newBenchLogger(b, InfoLevel, ErrorLevel)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("bench").Append("test message").Done()
	}
}

// BenchmarkInfoBothSinks benchmarks a one-fragment message to console and file.
func BenchmarkInfoBothSinks(b *testing.B) {
	l := newBenchLogger(b, InfoLevel, InfoLevel)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("bench").Append("test message").Done()
	}
}

// BenchmarkInfoFragments benchmarks a message built from mixed fragments.
func BenchmarkInfoFragments(b *testing.B) {
	l := newBenchLogger(b, InfoLevel, ErrorLevel)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("bench").Append("user=").Append("alice").Append(" id=").AppendInt(int64(i)).Done()
	}
}

// BenchmarkFilteredDebug benchmarks a message below both thresholds.
// Target: 0 allocs/op
func BenchmarkFilteredDebug(b *testing.B) {
	l := newBenchLogger(b, InfoLevel, InfoLevel)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Debug("bench").Append("filtered").Done()
	}
}

// BenchmarkCurrentLookup benchmarks resolving the calling goroutine's Logger.
func BenchmarkCurrentLookup(b *testing.B) {
	reg := NewRegistry(NewBuilder().WithDiagnostics(zap.NewNop()))
	defer reg.Close()
	reg.Register("bench")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		reg.Current()
	}
}

// BenchmarkParallelWorkers benchmarks many goroutines each logging through
// its own registered Logger.
func BenchmarkParallelWorkers(b *testing.B) {
	reg := NewRegistry(NewBuilder().
		WithConsole(sink.NewConsole(sink.ConsoleConfig{Writer: io.Discard, ErrWriter: io.Discard})).
		WithDiagnostics(zap.NewNop()))
	defer reg.Close()

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		l := reg.Register("worker")
		for pb.Next() {
			l.Info("bench").Append("parallel").Done()
		}
	})
}
