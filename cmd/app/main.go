package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"deliverynote/cmd"
	"deliverynote/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	logger := log.New("delivery-note")
	logger.SetLevel(configs.GommonLevel())

	handlerLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: configs.SlogLevel(),
	}))

	app := cmd.NewCompositionRoot(
		configs,
		kernel.SystemClock{},
		os.Stdout,
		handlerLogger,
	)

	if err := cmd.RunExample(context.Background(), app); err != nil {
		logger.Fatalf("Delivery workflow failed: %v", err)
	}
	logger.Debug("Delivery workflow completed")
}

func getConfigs() cmd.Config {
	loadDotEnv(".env")

	return cmd.Config{
		LogLevel: goDotEnvVariable("DELIVERY_LOG_LEVEL", cmd.DefaultLogLevel),
		NoteID:   goDotEnvVariable("DELIVERY_NOTE_ID", cmd.DefaultNoteID),
	}
}

// loadDotEnv reads an optional .env file; the process environment wins over it.
func loadDotEnv(path string) {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading %s file: %v", path, err)
	}
}

func goDotEnvVariable(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
