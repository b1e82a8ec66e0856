// Package logging builds the program's slog logger. The terminal owns
// stdout, so records go to a debug file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	EnvDebugFile  = "TERMFOLIO_DEBUG_FILE"
	EnvDebugLevel = "TERMFOLIO_DEBUG_LEVEL"

	defaultFileName = "termfolio-debug.log"
)

// Options configures a file logger.
type Options struct {
	// Path of the log file. Empty uses TERMFOLIO_DEBUG_FILE or a file in
	// the temp dir.
	Path string
	// Level of the logger. Nil uses TERMFOLIO_DEBUG_LEVEL.
	Level *slog.Level
}

// New creates a text logger on w. Every record carries a session id.
func New(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("session", uuid.NewString())
}

// NewDiscard returns a logger that drops everything.
func NewDiscard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// NewFile opens the debug file and returns a logger on it together with a
// close function.
func NewFile(opts Options) (*slog.Logger, func() error, error) {
	path := opts.Path
	if path == "" {
		path = DebugFilePath()
	}
	level := LevelFromEnv()
	if opts.Level != nil {
		level = *opts.Level
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug file: %w", err)
	}
	return New(f, level), f.Close, nil
}

// DebugFilePath returns the debug file from the environment or the default
// in the temp dir.
func DebugFilePath() string {
	if p := os.Getenv(EnvDebugFile); p != "" {
		return p
	}
	return filepath.Join(os.TempDir(), defaultFileName)
}

// LevelFromEnv parses TERMFOLIO_DEBUG_LEVEL. Only errors are logged by
// default.
func LevelFromEnv() slog.Level {
	return ParseLevel(os.Getenv(EnvDebugLevel))
}

// ParseLevel maps a level name to a slog level, defaulting to error.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
