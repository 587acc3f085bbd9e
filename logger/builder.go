package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/threadlog/config"
	"github.com/philipp01105/threadlog/core"
	"github.com/philipp01105/threadlog/formatter"
	"github.com/philipp01105/threadlog/sink"
)

// defaultDiagnostics reports the logger's own failures on stderr
var defaultDiagnostics = sync.OnceValue(func() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	zc := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zap.WarnLevel)
	return zap.New(zc).Named("threadlog")
})

// Builder provides a fluent API for building Logger instances. A Registry
// builds every Logger it registers from its Builder.
type Builder struct {
	console      *sink.Console
	formatter    formatter.Formatter
	clock        core.Clock
	diagnostics  *zap.Logger
	consoleLevel core.Level
	fileLevel    core.Level
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		consoleLevel: core.InfoLevel, // Until Initialize says otherwise
		fileLevel:    core.InfoLevel,
	}
}

// NewBuilderFromConfig creates a builder carrying the formatting and
// clock settings of cfg. Thresholds are applied by
// Logger.InitializeFromConfig.
func NewBuilderFromConfig(cfg *config.Config) *Builder {
	b := NewBuilder().WithFormatter(formatter.NewTextFormatter(formatter.Config{
		TimestampFormat: cfg.TimestampFormat,
		LocalTime:       cfg.LocalTime,
	}))
	if cfg.CoarseClock {
		b.WithClock(core.CoarseClock())
	}
	return b
}

// WithConsole sets the console sink (default: sink.Stdio())
func (b *Builder) WithConsole(c *sink.Console) *Builder {
	b.console = c
	return b
}

// WithFormatter sets the prefix formatter
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// WithClock sets the clock used for prefix timestamps
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.clock = c
	return b
}

// WithCoarseClock switches prefix timestamps to the cached coarse clock
func (b *Builder) WithCoarseClock() *Builder {
	return b.WithClock(core.CoarseClock())
}

// WithDiagnostics sets the zap logger that receives the logger's own
// failures, such as a log file that cannot be opened.
func (b *Builder) WithDiagnostics(z *zap.Logger) *Builder {
	b.diagnostics = z
	return b
}

// WithLevels sets the thresholds used before Initialize is called
func (b *Builder) WithLevels(consoleLevel, fileLevel core.Level) *Builder {
	b.consoleLevel = consoleLevel
	b.fileLevel = fileLevel
	return b
}

// Build creates a valid Logger with the given display name. Its file
// sink drops everything until Initialize succeeds.
func (b *Builder) Build(displayName string) Logger {
	s := &loggerState{
		name:         displayName,
		thread:       core.CurrentThread(),
		file:         sink.NewNull(),
		console:      b.console,
		formatter:    b.formatter,
		clock:        b.clock,
		diagnostics:  b.diagnostics,
		consoleLevel: b.consoleLevel,
		fileLevel:    b.fileLevel,
	}
	if s.console == nil {
		s.console = sink.Stdio()
	}
	if s.formatter == nil {
		s.formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if s.clock == nil {
		s.clock = core.SystemClock
	}
	if s.diagnostics == nil {
		s.diagnostics = defaultDiagnostics()
	}
	return newLogger(s)
}
