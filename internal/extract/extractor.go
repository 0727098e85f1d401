package extract

import "context"

// TextExtractor defines the interface for extracting raw text from a saved
// document. This interface serves as a boundary between the pipeline core
// and the format-specific parsing machinery.
type TextExtractor interface {
	// ExtractText reads the document at filePath and returns its text
	// content. The ext argument is the declared file extension (with or
	// without a leading dot); it selects the parsing strategy.
	//
	// The returned text is trimmed of leading/trailing whitespace and may
	// legitimately be empty; deciding whether an empty document is an
	// error is the caller's concern.
	ExtractText(ctx context.Context, filePath string, ext string) (string, error)
}
