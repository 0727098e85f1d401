package summarize

import "context"

// Summarizer defines the interface for producing an abstractive summary of
// extracted document text.
type Summarizer interface {
	// Summarize generates a summary of text bounded by maxLength and
	// minLength words.
	//
	// Empty input yields an empty summary without invoking the model.
	// A non-empty input producing an empty summary is reported by the
	// caller as a pipeline failure, distinct from an error returned here.
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}
