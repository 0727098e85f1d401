package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the processing state of a summarization task.
type TaskStatus string

// Possible task status values. The uppercase forms are part of the HTTP
// contract and are returned verbatim by the status endpoint.
const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusFailed     TaskStatus = "FAILED"
)

// Common validation errors for Task
var (
	ErrEmptyTaskID        = errors.New("task ID cannot be empty")
	ErrEmptyFilename      = errors.New("original filename cannot be empty")
	ErrInvalidTaskStatus  = errors.New("invalid task status")
	ErrMissingOutputName  = errors.New("completed task must reference an output filename")
	ErrMissingErrorDetail = errors.New("failed task must carry an error detail")
)

// Task represents one document-summarization job tracked across its
// lifetime. It is created PENDING when the upload is accepted and moves to
// exactly one terminal state (COMPLETED or FAILED) when the pipeline
// finishes.
type Task struct {
	ID               uuid.UUID  `json:"id"`
	OriginalFilename string     `json:"original_filename"`
	Status           TaskStatus `json:"status"`

	// OutputFilename names the generated artifact. Set only on COMPLETED.
	OutputFilename string `json:"output_filename,omitempty"`

	// ErrorDetail is a human-readable failure cause. Set only on FAILED.
	ErrorDetail string `json:"error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTask creates a new Task for the given original document filename.
// It generates a new UUID for the task ID, sets the status to PENDING,
// and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewTask(originalFilename string) (*Task, error) {
	task := &Task{
		ID:               uuid.New(),
		OriginalFilename: originalFilename,
		Status:           TaskStatusPending,
		CreatedAt:        time.Now().UTC(),
		UpdatedAt:        time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.OriginalFilename == "" {
		return ErrEmptyFilename
	}

	if !isValidTaskStatus(t.Status) {
		return ErrInvalidTaskStatus
	}

	if t.Status == TaskStatusCompleted && t.OutputFilename == "" {
		return ErrMissingOutputName
	}

	if t.Status == TaskStatusFailed && t.ErrorDetail == "" {
		return ErrMissingErrorDetail
	}

	return nil
}

// IsTerminal reports whether the task has reached a final state.
// Terminal tasks are never mutated again.
func (t *Task) IsTerminal() bool {
	return t.Status == TaskStatusCompleted || t.Status == TaskStatusFailed
}

// isValidTaskStatus checks if the given status is a valid TaskStatus.
func isValidTaskStatus(status TaskStatus) bool {
	switch status {
	case TaskStatusPending, TaskStatusProcessing, TaskStatusCompleted, TaskStatusFailed:
		return true
	default:
		return false
	}
}
