package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heyvishusri/ppt-summary-maker/internal/config"
	"github.com/heyvishusri/ppt-summary-maker/internal/deck"
	"github.com/heyvishusri/ppt-summary-maker/internal/extract"
	"github.com/heyvishusri/ppt-summary-maker/internal/platform/gemini"
	"github.com/heyvishusri/ppt-summary-maker/internal/platform/memstore"
	"github.com/heyvishusri/ppt-summary-maker/internal/platform/openai"
	"github.com/heyvishusri/ppt-summary-maker/internal/service"
	"github.com/heyvishusri/ppt-summary-maker/internal/storage"
	"github.com/heyvishusri/ppt-summary-maker/internal/store"
	"github.com/heyvishusri/ppt-summary-maker/internal/task"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Stores
	registry  store.TaskRegistry
	uploads   *storage.UploadStore
	artifacts *storage.ArtifactStore

	// Pipeline components
	extractor  *extract.DocumentExtractor
	summarizer task.Summarizer
	renderer   *deck.PPTXRenderer

	// Service interfaces
	summaryService service.SummaryService

	// Task handling
	taskRunner *task.Runner
}

// newApplication creates a new application instance with all
// dependencies initialized. The task runner is started before this
// function returns, so the returned application is ready to accept
// uploads.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	// Initialize stores
	app.registry = memstore.NewMemoryTaskRegistry(logger)

	var err error
	app.uploads, err = storage.NewUploadStore(cfg.Storage.UploadDir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize upload store: %w", err)
	}

	app.artifacts, err = storage.NewArtifactStore(cfg.Storage.OutputDir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize artifact store: %w", err)
	}

	// Initialize pipeline components
	app.extractor = extract.NewDocumentExtractor(logger)
	app.renderer = deck.NewPPTXRenderer(logger)

	app.summarizer, err = setupSummarizer(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize summarizer: %w", err)
	}
	logger.Info("summarizer initialized", "provider", cfg.Summarizer.Provider)

	// Initialize task runner
	app.taskRunner = task.NewRunner(task.RunnerConfig{
		WorkerCount: cfg.Task.WorkerCount,
		QueueSize:   cfg.Task.QueueSize,
	}, logger)
	app.taskRunner.Start()

	// Create the task factory used to build one pipeline task per upload
	taskFactory := task.NewSummaryTaskFactory(
		app.registry,
		app.extractor,
		app.summarizer,
		app.renderer,
		app.uploads,
		task.SummaryTaskConfig{
			TruncateChars: cfg.Summarizer.TruncateChars,
			MaxLength:     cfg.Summarizer.MaxLength,
			MinLength:     cfg.Summarizer.MinLength,
			OutputDir:     app.artifacts.Dir(),
		},
		logger,
	)

	// Initialize summary service
	app.summaryService, err = service.NewSummaryService(
		app.registry,
		app.uploads,
		taskFactory,
		app.taskRunner,
		cfg.Storage.AllowedTypes,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create summary service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// setupSummarizer builds the configured summarization backend.
func setupSummarizer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (task.Summarizer, error) {
	switch cfg.Summarizer.Provider {
	case "gemini":
		return gemini.NewSummarizer(ctx, logger.With("component", "gemini_summarizer"), cfg.Summarizer)
	case "openai":
		return openai.NewSummarizer(logger.With("component", "openai_summarizer"), cfg.Summarizer)
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", cfg.Summarizer.Provider)
	}
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.taskRunner != nil {
		app.taskRunner.Stop()
	}

	app.logger.Info("Application shutdown completed")
}
