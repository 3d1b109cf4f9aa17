package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	envLogLevel  = "DEVCONF_LOG_LEVEL"
	envLogFormat = "DEVCONF_LOG_FORMAT"

	defaultMaxBytes   = 5 << 20
	defaultMaxBackups = 3
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// LogDir enables the rotating file sink when non-empty.
	LogDir string
	// Component names the log file inside LogDir ("<component>.log").
	Component string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
		Component:  "devconf",
	}
}

// ParseLevel maps a level name to a zerolog level. Unknown names yield false.
func ParseLevel(name string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off":
		return zerolog.Disabled, true
	}
	return zerolog.InfoLevel, false
}

// New creates a new zerolog logger writing to stderr
func New(cfg Config) zerolog.Logger {
	return newLogger(cfg, consoleOrJSON(cfg, os.Stderr))
}

// NewWithFile creates a logger that writes to stderr and, when cfg.LogDir is
// set, to a size-rotated "<component>.log" inside it. The returned closer
// must be called on shutdown.
func NewWithFile(cfg Config) (zerolog.Logger, io.Closer, error) {
	if cfg.LogDir == "" {
		return New(cfg), nopCloser{}, nil
	}
	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log dir: %w", err)
	}

	component := cfg.Component
	if component == "" {
		component = DefaultConfig().Component
	}
	rotator, err := NewRotatingFile(filepath.Join(cfg.LogDir, component+".log"), defaultMaxBytes, defaultMaxBackups)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	// The file always receives JSON lines; stderr follows cfg.Format.
	out := zerolog.MultiLevelWriter(consoleOrJSON(cfg, os.Stderr), rotator)
	return newLogger(cfg, out), rotator, nil
}

// NewFromEnv creates a logger based on environment variables
// DEVCONF_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// DEVCONF_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return New(ApplyEnv(DefaultConfig()))
}

// ApplyEnv overrides cfg with the DEVCONF_LOG_* variables that are set.
func ApplyEnv(cfg Config) Config {
	if level, ok := ParseLevel(os.Getenv(envLogLevel)); ok {
		cfg.Level = level
	}

	if format := os.Getenv(envLogFormat); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}
	return cfg
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func consoleOrJSON(cfg Config, w io.Writer) io.Writer {
	if cfg.Format == "console" {
		return zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: cfg.TimeFormat,
		}
	}
	return w
}

func newLogger(cfg Config, w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}
