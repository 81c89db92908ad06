// Package logging configures the process-wide slog logger
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/pomo/internal/apperr"
	"github.com/ayoisaiah/pomo/internal/osutil"
)

const (
	envDebug = "POMO_DEBUG"

	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

var errLogDir = &apperr.Error{
	Message: "unable to create log directory",
}

// Level returns the level selected by the environment: debug when
// POMO_DEBUG is set to anything but "0" or "false", info otherwise.
func Level() slog.Level {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(envDebug)))
	if v == "" || v == "0" || v == "false" {
		return slog.LevelInfo
	}

	return slog.LevelDebug
}

// Setup points the default slog logger at a rotated JSON log file. The
// returned closer flushes and closes the file.
func Setup(path string, level slog.Level) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission); err != nil {
		return nil, errLogDir.Wrap(err)
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	slog.SetDefault(New(w, level))

	return w, nil
}

// New returns a JSON logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
