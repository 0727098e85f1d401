// Package main implements the entry point for the PPT Summary Maker
// API server, which turns uploaded PDF and DOCX documents into
// PowerPoint summaries through an asynchronous task pipeline.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/heyvishusri/ppt-summary-maker/internal/config"
	"github.com/heyvishusri/ppt-summary-maker/internal/platform/logger"
)

// main wires configuration, logging, and the application together and
// runs the HTTP server until shutdown.
func main() {
	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"summarizer_provider", cfg.Summarizer.Provider,
		"worker_count", cfg.Task.WorkerCount)

	return cfg, appLogger, nil
}
