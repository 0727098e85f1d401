package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/heyvishusri/ppt-summary-maker/internal/domain"
)

// TaskRegistry defines the interface for tracking task state across the
// task lifecycle. Within one task, transitions are totally ordered
// (PENDING → PROCESSING → terminal); across tasks no ordering is guaranteed.
//
// Concurrent Get calls must observe a consistent snapshot of a record,
// never a partially-written one.
type TaskRegistry interface {
	// Create registers a new task. The task must be in PENDING state.
	// Returns ErrDuplicateTask if the ID is already registered.
	Create(ctx context.Context, task *domain.Task) error

	// Get retrieves a snapshot of the task with the given ID.
	// Returns ErrTaskNotFound if no such task exists. The returned record
	// is a copy; mutating it does not affect the registry.
	Get(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// MarkProcessing transitions a task to PROCESSING.
	// Returns ErrTaskNotFound for unknown IDs and ErrTaskFinalized if the
	// task already reached a terminal state.
	MarkProcessing(ctx context.Context, id uuid.UUID) error

	// Complete transitions a task to COMPLETED and records the artifact
	// filename clients use for download.
	// Returns ErrTaskNotFound for unknown IDs and ErrTaskFinalized if the
	// task already reached a terminal state.
	Complete(ctx context.Context, id uuid.UUID, outputFilename string) error

	// Fail transitions a task to FAILED and records a human-readable cause.
	// Returns ErrTaskNotFound for unknown IDs and ErrTaskFinalized if the
	// task already reached a terminal state.
	Fail(ctx context.Context, id uuid.UUID, errorDetail string) error
}
