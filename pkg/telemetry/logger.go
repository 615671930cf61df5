// Package telemetry builds the diagnostic logger. Diagnostics never go to
// stdout, which carries the hook response.
package telemetry

import (
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/krmcbride/git-workflow-guidance/pkg/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger returns a logger for cfg and a closer for its sink. When
// cfg.File is set, records go to a size-rotated file; otherwise to stderr.
func NewLogger(cfg config.LogConfig, stderr io.Writer) (*slog.Logger, io.Closer) {
	var (
		writer io.Writer = stderr
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
		}
		writer, closer = rotating, rotating
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	return slog.New(handler), closer
}

// ParseLevel maps a level name to a slog level. Unknown names mean warn.
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
