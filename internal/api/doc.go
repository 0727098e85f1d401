// Package api contains the HTTP handlers for the document
// summarization service: uploading documents, polling task status, and
// downloading finished slide decks. Handlers translate between HTTP
// and the service layer and map internal errors to sanitized
// responses.
package api
