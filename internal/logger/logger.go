package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// Options controls how New builds a logger
type Options struct {
	// Writer defaults to os.Stdout
	Writer io.Writer
	Level  string
	// Format is "json" or "text"
	Format    string
	Color     bool
	AddSource bool
}

// New creates a slog logger. JSON output uses the standard handler, text
// output uses tint when color is on.
func New(opts Options) *slog.Logger {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	level := ParseLevel(opts.Level)

	var handler slog.Handler
	switch {
	case strings.EqualFold(opts.Format, "json"):
		handler = slog.NewJSONHandler(opts.Writer, &slog.HandlerOptions{
			AddSource: opts.AddSource,
			Level:     level,
		})
	case opts.Color:
		handler = tint.NewHandler(opts.Writer, &tint.Options{
			Level:      level,
			AddSource:  opts.AddSource,
			TimeFormat: "2006-01-02 15:04:05",
		})
	default:
		handler = slog.NewTextHandler(opts.Writer, &slog.HandlerOptions{
			AddSource: opts.AddSource,
			Level:     level,
		})
	}
	return slog.New(handler)
}

// ParseLevel maps a level name to a slog level, defaulting to info
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
