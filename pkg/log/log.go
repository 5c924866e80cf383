// Package log configures the process wide structured logger.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Config selects the level and encoding of log output.
type Config struct {
	Level  string
	Format string
	Output io.Writer
}

// ConfigFromEnv reads AGENDA_LOG_LEVEL and AGENDA_LOG_FORMAT.
func ConfigFromEnv() Config {
	return Config{
		Level:  os.Getenv("AGENDA_LOG_LEVEL"),
		Format: os.Getenv("AGENDA_LOG_FORMAT"),
	}
}

var (
	mu            sync.Mutex
	defaultLogger *slog.Logger
)

// Init installs a logger built from cfg as the package and slog default.
// Output defaults to stderr so it never mixes with command output.
func Init(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}
	l := slog.New(h)

	mu.Lock()
	defaultLogger = l
	mu.Unlock()
	slog.SetDefault(l)
	return l
}

// Logger returns the configured logger, initializing from the environment
// on first use.
func Logger() *slog.Logger {
	mu.Lock()
	l := defaultLogger
	mu.Unlock()
	if l == nil {
		return Init(ConfigFromEnv())
	}
	return l
}

// Module returns a logger tagged with the given module name.
func Module(name string) *slog.Logger {
	return Logger().With(slog.String("module", name))
}

// ParseLevel maps a level name to a slog level. Unknown or empty names mean
// warn, keeping the CLI quiet by default.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
