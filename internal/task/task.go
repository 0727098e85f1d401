package task

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Task type constants
const (
	// TaskTypeSummary identifies document summarization tasks.
	TaskTypeSummary = "document_summary"
)

// Submission errors returned by Runner.Submit.
var (
	// ErrQueueFull is returned when the task queue has no free slots.
	ErrQueueFull = errors.New("task queue is full")

	// ErrQueueClosed is returned when the runner has been stopped.
	ErrQueueClosed = errors.New("task queue is closed")
)

// Task represents a unit of background work to be processed.
type Task interface {
	// ID returns the task's unique identifier
	ID() uuid.UUID

	// Type returns the task type identifier
	Type() string

	// Execute runs the task logic
	Execute(ctx context.Context) error
}
