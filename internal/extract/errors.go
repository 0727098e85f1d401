package extract

import "errors"

// Common errors returned by the extract package
var (
	// ErrUnsupportedType is returned when the file extension is not one of
	// the supported document formats.
	ErrUnsupportedType = errors.New("unsupported document type")

	// ErrParseFailure is returned when the document bytes cannot be parsed
	// as the declared format.
	ErrParseFailure = errors.New("failed to parse document")

	// ErrFileNotFound is returned when the document path does not exist.
	ErrFileNotFound = errors.New("document file not found")
)
