// Package extract defines the text-extraction boundary of the pipeline and
// provides a document extractor for the supported upload formats. The
// extractor is an opaque, swappable collaborator: the pipeline depends only
// on the TextExtractor interface.
package extract
