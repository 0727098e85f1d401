package api

import (
	"errors"
	"net/http"

	"github.com/heyvishusri/ppt-summary-maker/internal/service"
	"github.com/heyvishusri/ppt-summary-maker/internal/storage"
	"github.com/heyvishusri/ppt-summary-maker/internal/store"
	"github.com/heyvishusri/ppt-summary-maker/internal/task"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrTaskNotFound),
		errors.Is(err, storage.ErrArtifactNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, service.ErrUnsupportedDocumentType),
		errors.Is(err, storage.ErrInvalidFilename):
		return http.StatusBadRequest

	// Overload errors
	case errors.Is(err, task.ErrQueueFull),
		errors.Is(err, task.ErrQueueClosed):
		return http.StatusServiceUnavailable

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, storage.ErrArtifactNotFound):
		return "File not found"

	case errors.Is(err, service.ErrUnsupportedDocumentType):
		return "Only PDF and DOCX documents are supported"

	case errors.Is(err, storage.ErrInvalidFilename):
		return "Invalid filename"

	case errors.Is(err, task.ErrQueueFull),
		errors.Is(err, task.ErrQueueClosed):
		return "The server is busy, please try again later"

	default:
		return "An unexpected error occurred"
	}
}
