package xlogger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config controls the logger built by New.
type Config struct {
	// Level is the minimum level to log: debug, info, warn or error.
	Level string
	// Format selects the handler: text (default) or json.
	Format string
	// AddSource attaches the logging call site to every record.
	AddSource bool
	// Output is the destination, os.Stderr when nil.
	Output io.Writer
}

// New builds a slog.Logger from the config. Unknown level or format values
// fall back to info and text.
func New(conf Config) *slog.Logger {
	out := conf.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		AddSource: conf.AddSource,
		Level:     parseLevel(conf.Level),
	}

	return slog.New(newHandler(out, conf.Format, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newHandler(out io.Writer, format string, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(format) {
	case "json":
		return slog.NewJSONHandler(out, opts)
	default:
		return slog.NewTextHandler(out, opts)
	}
}
