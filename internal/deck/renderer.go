package deck

import (
	"context"
	"errors"
)

// MIMETypePPTX is the media type generated artifacts are served with.
const MIMETypePPTX = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// ErrRenderFailed is returned when the slide deck cannot be produced.
var ErrRenderFailed = errors.New("failed to render slide deck")

// Renderer defines the interface for turning a summary into a slide-deck
// artifact on disk.
type Renderer interface {
	// Render writes a slide deck for summary into outputDir and returns
	// the path of the generated file. The original document filename
	// seeds both the deck title and the artifact's unique name.
	Render(ctx context.Context, summary string, originalFilename string, outputDir string) (string, error)
}
