package logging

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/limbo/stepcount/pkg/cleanup"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Level string
	// Path of rotated log file. Empty means stdout only
	Path         string
	MaxSizeMB    int
	MaxBackups   int
	MaxAgeDays   int
	Compress     bool
	ConsoleWrite io.Writer
}

// Setup builds a JSON slog logger and installs it as default.
// The default logger is left untouched when the log file directory can't be created.
func Setup(opts Options) (*slog.Logger, error) {
	console := opts.ConsoleWrite
	if console == nil {
		console = os.Stdout
	}
	var w io.Writer = console
	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, errors.New("creating log directory error: " + err.Error())
		}
		lj := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    nz(opts.MaxSizeMB, 100),
			MaxBackups: nz(opts.MaxBackups, 3),
			MaxAge:     nz(opts.MaxAgeDays, 7),
			Compress:   opts.Compress,
		}
		cleanup.Register(&cleanup.Job{
			Name: "closing log file",
			F:    lj.Close,
		})
		w = io.MultiWriter(console, lj)
	}
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     ParseLevel(opts.Level),
		AddSource: strings.EqualFold(opts.Level, "debug"),
	}))
	slog.SetDefault(logger)
	return logger, nil
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

func nz(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
