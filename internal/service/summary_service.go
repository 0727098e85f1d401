package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heyvishusri/ppt-summary-maker/internal/domain"
	"github.com/heyvishusri/ppt-summary-maker/internal/store"
	"github.com/heyvishusri/ppt-summary-maker/internal/task"
)

// Common sentinel errors for SummaryService
var (
	// ErrTaskNotFound indicates that the task does not exist
	ErrTaskNotFound = errors.New("task not found")

	// ErrUnsupportedDocumentType indicates an upload whose content type
	// is not in the allowed set
	ErrUnsupportedDocumentType = errors.New("unsupported document type")
)

// SummaryServiceError wraps errors from the summary service with context.
type SummaryServiceError struct {
	// Operation is the operation that failed (e.g., "enqueue_document")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for SummaryServiceError.
func (e *SummaryServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("summary service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("summary service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *SummaryServiceError) Unwrap() error {
	return e.Err
}

// UploadStore saves incoming documents and removes them after
// processing or on enqueue failure.
type UploadStore interface {
	// Save writes the upload to disk and returns its path
	Save(r io.Reader, originalFilename string) (string, error)

	// Remove deletes a saved upload
	Remove(path string) error
}

// TaskRunner defines the interface for submitting background tasks
type TaskRunner interface {
	// Submit adds a task to the processing queue
	Submit(ctx context.Context, task task.Task) error
}

// SummaryTaskFactory creates SummaryTask instances
type SummaryTaskFactory interface {
	// CreateTask creates a new summarization task for a saved upload
	CreateTask(taskID uuid.UUID, uploadPath, originalFilename string) (task.Task, error)
}

// SummaryService provides document summarization operations
type SummaryService interface {
	// EnqueueDocument saves the upload, registers a task, and submits
	// it for background processing. The returned task is already
	// visible to status polling when this call succeeds.
	EnqueueDocument(
		ctx context.Context,
		upload io.Reader,
		originalFilename string,
		contentType string,
	) (*domain.Task, error)

	// GetTask retrieves a task by its ID
	GetTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error)
}

// summaryServiceImpl implements the SummaryService interface
type summaryServiceImpl struct {
	registry     store.TaskRegistry
	uploads      UploadStore
	taskFactory  SummaryTaskFactory
	taskRunner   TaskRunner
	allowedTypes map[string]bool
	logger       *slog.Logger
}

// NewSummaryService creates a new SummaryService.
// It returns an error if any of the required dependencies are nil.
func NewSummaryService(
	registry store.TaskRegistry,
	uploads UploadStore,
	taskFactory SummaryTaskFactory,
	taskRunner TaskRunner,
	allowedTypes []string,
	logger *slog.Logger,
) (SummaryService, error) {
	if registry == nil {
		return nil, &SummaryServiceError{
			Operation: "create_service",
			Message:   "registry cannot be nil",
		}
	}
	if uploads == nil {
		return nil, &SummaryServiceError{
			Operation: "create_service",
			Message:   "uploads cannot be nil",
		}
	}
	if taskFactory == nil {
		return nil, &SummaryServiceError{
			Operation: "create_service",
			Message:   "taskFactory cannot be nil",
		}
	}
	if taskRunner == nil {
		return nil, &SummaryServiceError{
			Operation: "create_service",
			Message:   "taskRunner cannot be nil",
		}
	}
	if len(allowedTypes) == 0 {
		return nil, &SummaryServiceError{
			Operation: "create_service",
			Message:   "allowedTypes cannot be empty",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	allowed := make(map[string]bool, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[t] = true
	}

	return &summaryServiceImpl{
		registry:     registry,
		uploads:      uploads,
		taskFactory:  taskFactory,
		taskRunner:   taskRunner,
		allowedTypes: allowed,
		logger:       logger.With("component", "summary_service"),
	}, nil
}

// EnqueueDocument validates the upload's content type, persists the
// file, registers a pending task, and hands it to the runner. The task
// is registered before this function returns so a status poll issued
// right after the response always finds it. On any failure past
// registration, the task is failed and the saved upload removed before
// returning.
func (s *summaryServiceImpl) EnqueueDocument(
	ctx context.Context,
	upload io.Reader,
	originalFilename string,
	contentType string,
) (*domain.Task, error) {
	if !s.allowedTypes[contentType] {
		s.logger.Warn("rejected upload with unsupported content type",
			"content_type", contentType,
			"original_filename", originalFilename)
		return nil, fmt.Errorf("%w: %q (only PDF and DOCX are accepted)",
			ErrUnsupportedDocumentType, contentType)
	}

	uploadPath, err := s.uploads.Save(upload, originalFilename)
	if err != nil {
		s.logger.Error("failed to save upload",
			"error", err,
			"original_filename", originalFilename)
		return nil, &SummaryServiceError{
			Operation: "enqueue_document",
			Message:   "failed to save uploaded document",
			Err:       err,
		}
	}

	domainTask, err := domain.NewTask(originalFilename)
	if err != nil {
		s.removeUpload(uploadPath)
		return nil, &SummaryServiceError{
			Operation: "enqueue_document",
			Message:   "failed to create task",
			Err:       err,
		}
	}

	if err := s.registry.Create(ctx, domainTask); err != nil {
		s.logger.Error("failed to register task",
			"error", err,
			"task_id", domainTask.ID)
		s.removeUpload(uploadPath)
		return nil, &SummaryServiceError{
			Operation: "enqueue_document",
			Message:   "failed to register task",
			Err:       err,
		}
	}

	bgTask, err := s.taskFactory.CreateTask(domainTask.ID, uploadPath, originalFilename)
	if err != nil {
		s.failEnqueued(ctx, domainTask.ID, uploadPath)
		return nil, &SummaryServiceError{
			Operation: "enqueue_document",
			Message:   "failed to build summarization task",
			Err:       err,
		}
	}

	if err := s.taskRunner.Submit(ctx, bgTask); err != nil {
		s.logger.Error("failed to submit task",
			"error", err,
			"task_id", domainTask.ID)
		s.failEnqueued(ctx, domainTask.ID, uploadPath)
		return nil, &SummaryServiceError{
			Operation: "enqueue_document",
			Message:   "failed to submit task for processing",
			Err:       err,
		}
	}

	s.logger.Info("document enqueued for summarization",
		"task_id", domainTask.ID,
		"original_filename", originalFilename)

	return domainTask, nil
}

// GetTask retrieves a task by its ID
func (s *summaryServiceImpl) GetTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	t, err := s.registry.Get(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, &SummaryServiceError{
			Operation: "get_task",
			Message:   "failed to retrieve task",
			Err:       err,
		}
	}
	return t, nil
}

// failEnqueued marks a freshly registered task as failed and removes
// its upload. It never ran, so the failure detail stays generic.
func (s *summaryServiceImpl) failEnqueued(ctx context.Context, taskID uuid.UUID, uploadPath string) {
	if err := s.registry.Fail(ctx, taskID, "the task could not be scheduled for processing"); err != nil {
		s.logger.Error("failed to mark unscheduled task as failed",
			"error", err,
			"task_id", taskID)
	}
	s.removeUpload(uploadPath)
}

func (s *summaryServiceImpl) removeUpload(uploadPath string) {
	if err := s.uploads.Remove(uploadPath); err != nil {
		s.logger.Warn("failed to remove upload after enqueue failure",
			"error", err,
			"upload_path", uploadPath)
	}
}
