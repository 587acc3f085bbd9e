package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"

	"github.com/philipp01105/threadlog/core"
)

// EnvPrefix is the prefix of the environment variables Load reads
const EnvPrefix = "THREADLOG_"

// PathEnvVar can point Load at a config file when no path is given
const PathEnvVar = EnvPrefix + "CONFIG"

// Config holds everything needed to initialize a Logger
type Config struct {
	// DisplayName names the registered Logger in console prefixes
	DisplayName string `koanf:"display_name"`
	// Folder holds the log file; relative to the working directory unless absolute
	Folder string `koanf:"folder"`
	// Filename is the log file inside Folder
	Filename string `koanf:"filename"`
	// ConsoleLevel is the console threshold: debug, verbose, info, mandatory, error
	ConsoleLevel string `koanf:"console_level"`
	// FileLevel is the file threshold
	FileLevel string `koanf:"file_level"`
	// TimestampFormat overrides the prefix timestamp layout (Go reference time)
	TimestampFormat string `koanf:"timestamp_format"`
	// LocalTime renders prefix timestamps in the local zone instead of UTC
	LocalTime bool `koanf:"local_time"`
	// CoarseClock uses the cached clock for prefix timestamps
	CoarseClock bool `koanf:"coarse_clock"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Folder:       "logs",
		Filename:     "threadlog.log",
		ConsoleLevel: "info",
		FileLevel:    "debug",
	}
}

// Load reads configuration in three layers, later layers winning:
//  1. Defaults
//  2. YAML file at path (or $THREADLOG_CONFIG); skipped when neither is set
//  3. THREADLOG_* environment variables (THREADLOG_FILE_LEVEL -> file_level)
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, errors.Wrap(err, "load defaults")
	}

	if path == "" {
		path = os.Getenv(PathEnvVar)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "load config file %s", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, errors.Wrap(err, "load environment variables")
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

// envTransformFunc maps THREADLOG_CONSOLE_LEVEL to console_level. The
// config file name variable is not a setting and is dropped.
func envTransformFunc(key string) string {
	if key == PathEnvVar {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
}

// Validate checks that the file name is set and the levels parse
func (c *Config) Validate() error {
	if c.Filename == "" {
		return errors.New("filename is required")
	}
	if _, _, err := c.Levels(); err != nil {
		return err
	}
	return nil
}

// Levels returns the parsed console and file thresholds
func (c *Config) Levels() (consoleLevel, fileLevel core.Level, err error) {
	consoleLevel, err = core.ParseLevel(c.ConsoleLevel)
	if err != nil {
		return consoleLevel, fileLevel, errors.Wrap(err, "console_level")
	}
	fileLevel, err = core.ParseLevel(c.FileLevel)
	if err != nil {
		return consoleLevel, fileLevel, errors.Wrap(err, "file_level")
	}
	return consoleLevel, fileLevel, nil
}
