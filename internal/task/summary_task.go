package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"unicode/utf8"

	"github.com/google/uuid"
)

// User-facing failure descriptions recorded in the registry. They must
// stay free of server paths and provider internals.
const (
	failureExtraction    = "failed to extract text from the document"
	failureEmptyDocument = "the document contains no extractable text"
	failureSummarization = "failed to generate a summary for the document"
	failureEmptySummary  = "summarization produced no content"
	failureRendering     = "failed to generate the presentation"
)

// Construction errors
var (
	ErrNilRegistry   = errors.New("task registry cannot be nil")
	ErrNilExtractor  = errors.New("extractor cannot be nil")
	ErrNilSummarizer = errors.New("summarizer cannot be nil")
	ErrNilRenderer   = errors.New("renderer cannot be nil")
	ErrNilUploads    = errors.New("upload store cannot be nil")
	ErrNilLogger     = errors.New("logger cannot be nil")
	ErrEmptyTaskID   = errors.New("task ID cannot be empty")
	ErrEmptyUpload   = errors.New("upload path cannot be empty")
)

// TaskRegistry records task lifecycle transitions.
type TaskRegistry interface {
	// MarkProcessing moves the task out of the pending state
	MarkProcessing(ctx context.Context, id uuid.UUID) error

	// Complete records the finished artifact's filename
	Complete(ctx context.Context, id uuid.UUID, outputFilename string) error

	// Fail records a human-readable failure description
	Fail(ctx context.Context, id uuid.UUID, errorDetail string) error
}

// Extractor pulls plain text out of an uploaded document.
type Extractor interface {
	ExtractText(ctx context.Context, filePath string, ext string) (string, error)
}

// Summarizer condenses document text into an abstractive summary.
type Summarizer interface {
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}

// Renderer turns a summary into a slide deck artifact in outputDir.
type Renderer interface {
	Render(ctx context.Context, summary, originalFilename, outputDir string) (string, error)
}

// UploadRemover deletes a temporary upload once it is no longer needed.
type UploadRemover interface {
	Remove(path string) error
}

// SummaryTaskConfig carries the tunables of the summarization pipeline.
type SummaryTaskConfig struct {
	// TruncateChars caps the text handed to the summarizer
	TruncateChars int

	// MaxLength and MinLength bound the summary size in words
	MaxLength int
	MinLength int

	// OutputDir is where rendered decks are written
	OutputDir string
}

// SummaryTask implements the Task interface for summarizing a single
// uploaded document into a slide deck.
type SummaryTask struct {
	id               uuid.UUID
	uploadPath       string
	originalFilename string
	registry         TaskRegistry
	extractor        Extractor
	summarizer       Summarizer
	renderer         Renderer
	uploads          UploadRemover
	config           SummaryTaskConfig
	logger           *slog.Logger
}

// NewSummaryTask creates a summarization task for a registered task ID
// and a saved upload.
func NewSummaryTask(
	taskID uuid.UUID,
	uploadPath string,
	originalFilename string,
	registry TaskRegistry,
	extractor Extractor,
	summarizer Summarizer,
	renderer Renderer,
	uploads UploadRemover,
	config SummaryTaskConfig,
	logger *slog.Logger,
) (*SummaryTask, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	if extractor == nil {
		return nil, ErrNilExtractor
	}
	if summarizer == nil {
		return nil, ErrNilSummarizer
	}
	if renderer == nil {
		return nil, ErrNilRenderer
	}
	if uploads == nil {
		return nil, ErrNilUploads
	}
	if logger == nil {
		return nil, ErrNilLogger
	}
	if taskID == uuid.Nil {
		return nil, ErrEmptyTaskID
	}
	if uploadPath == "" {
		return nil, ErrEmptyUpload
	}

	return &SummaryTask{
		id:               taskID,
		uploadPath:       uploadPath,
		originalFilename: originalFilename,
		registry:         registry,
		extractor:        extractor,
		summarizer:       summarizer,
		renderer:         renderer,
		uploads:          uploads,
		config:           config,
		logger:           logger.With("task_type", TaskTypeSummary, "task_id", taskID),
	}, nil
}

// ID returns the task's unique identifier
func (t *SummaryTask) ID() uuid.UUID {
	return t.id
}

// Type returns the task type identifier
func (t *SummaryTask) Type() string {
	return TaskTypeSummary
}

// Execute runs the full summarization pipeline: extract text from the
// upload, summarize it, render the slide deck, and record the outcome
// in the registry. The temporary upload is removed on every path,
// success or failure, and the registry receives exactly one terminal
// transition.
func (t *SummaryTask) Execute(ctx context.Context) error {
	defer func() {
		if err := t.uploads.Remove(t.uploadPath); err != nil {
			t.logger.Warn("failed to remove temporary upload", "error", err)
		}
	}()

	if err := t.registry.MarkProcessing(ctx, t.id); err != nil {
		return fmt.Errorf("failed to mark task as processing: %w", err)
	}

	t.logger.Info("starting document summarization", "original_filename", t.originalFilename)

	text, err := t.extractor.ExtractText(ctx, t.uploadPath, filepath.Ext(t.originalFilename))
	if err != nil {
		return t.fail(ctx, failureExtraction, err)
	}
	if text == "" {
		return t.fail(ctx, failureEmptyDocument, errors.New(failureEmptyDocument))
	}

	// The truncation budget counts characters, not bytes, so slicing must
	// respect rune boundaries for non-ASCII documents.
	if t.config.TruncateChars > 0 && utf8.RuneCountInString(text) > t.config.TruncateChars {
		t.logger.Warn("document text truncated before summarization",
			"original_chars", utf8.RuneCountInString(text),
			"truncated_chars", t.config.TruncateChars)
		text = string([]rune(text)[:t.config.TruncateChars])
	}

	summary, err := t.summarizer.Summarize(ctx, text, t.config.MaxLength, t.config.MinLength)
	if err != nil {
		return t.fail(ctx, failureSummarization, err)
	}
	if summary == "" {
		return t.fail(ctx, failureEmptySummary, errors.New(failureEmptySummary))
	}

	outputPath, err := t.renderer.Render(ctx, summary, t.originalFilename, t.config.OutputDir)
	if err != nil {
		return t.fail(ctx, failureRendering, err)
	}

	outputFilename := filepath.Base(outputPath)
	if err := t.registry.Complete(ctx, t.id, outputFilename); err != nil {
		return fmt.Errorf("failed to record task completion: %w", err)
	}

	t.logger.Info("document summarization completed", "output_filename", outputFilename)
	return nil
}

// fail records the terminal failure in the registry and returns the
// underlying cause for the runner's error handler. The registry gets
// the sanitized detail; the logs get the real error.
func (t *SummaryTask) fail(ctx context.Context, detail string, cause error) error {
	t.logger.Error("summarization stage failed", "detail", detail, "error", cause)

	if err := t.registry.Fail(ctx, t.id, detail); err != nil {
		t.logger.Error("failed to record task failure", "error", err)
	}

	return fmt.Errorf("%s: %w", detail, cause)
}
