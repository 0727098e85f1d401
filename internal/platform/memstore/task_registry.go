// Package memstore provides an in-memory implementation of the store
// interfaces. Task state lives for the duration of the serving process;
// a restart loses in-flight and finished tasks by contract.
package memstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heyvishusri/ppt-summary-maker/internal/domain"
	"github.com/heyvishusri/ppt-summary-maker/internal/store"
)

// MemoryTaskRegistry implements store.TaskRegistry with a mutex-guarded map.
// Each task has at most one pipeline writer; status readers may be many and
// concurrent, so reads copy the record under the read lock.
type MemoryTaskRegistry struct {
	mu     sync.RWMutex
	tasks  map[uuid.UUID]*domain.Task
	logger *slog.Logger
}

// Statically verify interface compliance.
var _ store.TaskRegistry = (*MemoryTaskRegistry)(nil)

// NewMemoryTaskRegistry creates an empty in-memory task registry.
func NewMemoryTaskRegistry(logger *slog.Logger) *MemoryTaskRegistry {
	return &MemoryTaskRegistry{
		tasks:  make(map[uuid.UUID]*domain.Task),
		logger: logger.With("component", "task_registry"),
	}
}

// Create registers a new task record.
func (r *MemoryTaskRegistry) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[task.ID]; exists {
		return store.ErrDuplicateTask
	}

	record := *task
	r.tasks[task.ID] = &record

	r.logger.Debug("task registered",
		"task_id", task.ID,
		"original_filename", task.OriginalFilename)
	return nil
}

// Get returns a copy of the task record so callers never observe a
// partially-applied transition.
func (r *MemoryTaskRegistry) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.tasks[id]
	if !exists {
		return nil, store.ErrTaskNotFound
	}

	snapshot := *record
	return &snapshot, nil
}

// MarkProcessing transitions a task to PROCESSING.
func (r *MemoryTaskRegistry) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	return r.transition(id, func(record *domain.Task) {
		record.Status = domain.TaskStatusProcessing
	})
}

// Complete transitions a task to COMPLETED with its artifact filename.
func (r *MemoryTaskRegistry) Complete(ctx context.Context, id uuid.UUID, outputFilename string) error {
	err := r.transition(id, func(record *domain.Task) {
		record.Status = domain.TaskStatusCompleted
		record.OutputFilename = outputFilename
	})
	if err == nil {
		r.logger.Info("task completed", "task_id", id, "output_filename", outputFilename)
	}
	return err
}

// Fail transitions a task to FAILED with a descriptive cause.
func (r *MemoryTaskRegistry) Fail(ctx context.Context, id uuid.UUID, errorDetail string) error {
	err := r.transition(id, func(record *domain.Task) {
		record.Status = domain.TaskStatusFailed
		record.ErrorDetail = errorDetail
	})
	if err == nil {
		r.logger.Info("task failed", "task_id", id, "error_detail", errorDetail)
	}
	return err
}

// transition applies a state mutation under the write lock, enforcing that
// terminal tasks are never overwritten.
func (r *MemoryTaskRegistry) transition(id uuid.UUID, apply func(*domain.Task)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.tasks[id]
	if !exists {
		return store.ErrTaskNotFound
	}

	if record.IsTerminal() {
		return store.ErrTaskFinalized
	}

	apply(record)
	record.UpdatedAt = time.Now().UTC()
	return nil
}
