package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/SanjoDeundiak/process-metrics/pkg/lib/config"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Builder assembles a zerolog.Logger from a LogConfig. Console output always goes to the
// configured writer (stderr by default); a file, when configured, is rotated by lumberjack.
type Builder struct {
	cfg     config.LogConfig
	console io.Writer
}

func NewBuilder() *Builder {
	return &Builder{
		cfg:     config.Default().Log,
		console: os.Stderr,
	}
}

func (b *Builder) WithConfig(cfg config.LogConfig) *Builder {
	b.cfg = cfg
	return b
}

// WithConsole replaces the console destination.
func (b *Builder) WithConsole(w io.Writer) *Builder {
	b.console = w
	return b
}

func (b *Builder) Build() (zerolog.Logger, error) {
	level, err := ParseLevel(b.cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	writers := []io.Writer{formatWriter(b.cfg.Format, b.console, false)}
	if b.cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(b.cfg.File), 0o755); err != nil {
			return zerolog.Nop(), fmt.Errorf("creating log directory: %w", err)
		}
		file := &lumberjack.Logger{
			Filename:   b.cfg.File,
			MaxSize:    b.cfg.MaxSizeMB,
			MaxBackups: b.cfg.MaxBackups,
			LocalTime:  true,
		}
		writers = append(writers, formatWriter(b.cfg.Format, file, true))
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger(), nil
}

// New is a shorthand for NewBuilder().WithConfig(cfg).Build().
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	return NewBuilder().WithConfig(cfg).Build()
}

// ParseLevel maps a config level name to a zerolog level. The empty string is info.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(level) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

func formatWriter(format string, w io.Writer, noColor bool) io.Writer {
	if strings.ToLower(format) == "json" {
		return w
	}
	return zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: time.RFC3339}
}
