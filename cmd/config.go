package cmd

import (
	"log/slog"
	"strings"

	"github.com/labstack/gommon/log"
)

const (
	DefaultLogLevel = "info"
	DefaultNoteID   = "DN-2025-001"
)

type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string
	// NoteID is the reference number printed on the example delivery note.
	NoteID string
}

// SlogLevel maps LogLevel onto the application handlers' logger.
// Unknown values fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
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

// GommonLevel maps LogLevel onto the entry point logger.
func (c Config) GommonLevel() log.Lvl {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
