package main

import (
	"log/slog"
	"os"

	"go-admin-panel/internal/app"
	"go-admin-panel/internal/logger"
)

func main() {
	// Bootstrap logger until the configured one takes over in app.New.
	slog.SetDefault(slog.New(logger.NewPrettyHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	application, err := app.New()
	if err != nil {
		slog.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		slog.Error("application run failed", "error", err)
		os.Exit(1)
	}
}
