package storage

import "errors"

// Common errors returned by the storage package
var (
	// ErrUploadFailed is returned when the uploaded bytes cannot be
	// persisted. This surfaces as a server error at submit time, before a
	// task exists.
	ErrUploadFailed = errors.New("failed to persist uploaded file")

	// ErrInvalidFilename is returned when a requested artifact name
	// contains path separators or traversal sequences.
	ErrInvalidFilename = errors.New("invalid artifact filename")

	// ErrArtifactNotFound is returned when the named artifact does not
	// exist in the artifact store.
	ErrArtifactNotFound = errors.New("artifact not found")
)
