package cmd_test

import (
	"log/slog"
	"testing"

	"deliverynote/cmd"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Levels(t *testing.T) {
	testCases := []struct {
		level       string
		slogLevel   slog.Level
		gommonLevel log.Lvl
	}{
		{"debug", slog.LevelDebug, log.DEBUG},
		{"info", slog.LevelInfo, log.INFO},
		{"WARN", slog.LevelWarn, log.WARN},
		{"error", slog.LevelError, log.ERROR},
		{"", slog.LevelInfo, log.INFO},
		{"verbose", slog.LevelInfo, log.INFO},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			cfg := cmd.Config{LogLevel: tc.level}

			assert.Equal(t, tc.slogLevel, cfg.SlogLevel())
			assert.Equal(t, tc.gommonLevel, cfg.GommonLevel())
		})
	}
}
