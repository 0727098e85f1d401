package store

import (
	"errors"
	"fmt"
)

// Common registry errors used across all implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrTaskNotFound indicates that the requested task does not exist in the registry.
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)

	// ErrDuplicateTask indicates an attempt to register a task ID that is
	// already present. Task IDs are generated and never reused, so hitting
	// this is a programming error.
	ErrDuplicateTask = fmt.Errorf("%w: task", ErrDuplicate)

	// ErrTaskFinalized is returned when a transition is attempted on a task
	// that already reached a terminal state. Each task is driven by exactly
	// one pipeline run, so a second terminal write is a bug in the caller.
	ErrTaskFinalized = errors.New("task already reached a terminal state")
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
