// Package deck defines the slide-deck rendering boundary of the pipeline
// and provides a PPTX renderer. The renderer is an opaque, swappable
// collaborator: the pipeline depends only on the Renderer interface.
package deck
