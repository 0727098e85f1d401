// Package summarize defines the summarization boundary of the pipeline.
// This interface separates the application core from external language-model
// services; the concrete clients live under internal/platform.
package summarize
