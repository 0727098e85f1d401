// Package task provides background task processing for document
// summarization. A Runner owns a buffered queue and a pool of workers;
// SummaryTask carries a single document through extraction,
// summarization, and slide rendering, recording the outcome in the
// task registry.
package task
