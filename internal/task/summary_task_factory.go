package task

import (
	"log/slog"

	"github.com/google/uuid"
)

// SummaryTaskFactory creates SummaryTask instances with shared
// collaborators, so the service layer only supplies per-request data.
type SummaryTaskFactory struct {
	registry   TaskRegistry
	extractor  Extractor
	summarizer Summarizer
	renderer   Renderer
	uploads    UploadRemover
	config     SummaryTaskConfig
	logger     *slog.Logger
}

// NewSummaryTaskFactory creates a new factory for SummaryTasks
func NewSummaryTaskFactory(
	registry TaskRegistry,
	extractor Extractor,
	summarizer Summarizer,
	renderer Renderer,
	uploads UploadRemover,
	config SummaryTaskConfig,
	logger *slog.Logger,
) *SummaryTaskFactory {
	return &SummaryTaskFactory{
		registry:   registry,
		extractor:  extractor,
		summarizer: summarizer,
		renderer:   renderer,
		uploads:    uploads,
		config:     config,
		logger:     logger.With("component", "summary_task_factory"),
	}
}

// CreateTask creates a new SummaryTask for the given registered task
// and saved upload.
func (f *SummaryTaskFactory) CreateTask(
	taskID uuid.UUID,
	uploadPath string,
	originalFilename string,
) (Task, error) {
	return NewSummaryTask(
		taskID,
		uploadPath,
		originalFilename,
		f.registry,
		f.extractor,
		f.summarizer,
		f.renderer,
		f.uploads,
		f.config,
		f.logger,
	)
}
