package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/heyvishusri/ppt-summary-maker/internal/api/shared"
	"github.com/heyvishusri/ppt-summary-maker/internal/service"
)

// maxUploadBytes caps the size of an uploaded document.
const maxUploadBytes = 50 << 20 // 50 MiB

// SummarizeResponse represents the response for an accepted document
type SummarizeResponse struct {
	Message string `json:"message"`
	TaskID  string `json:"task_id"`
}

// SummarizeHandler handles document upload requests
type SummarizeHandler struct {
	summaryService service.SummaryService
}

// NewSummarizeHandler creates a new SummarizeHandler
func NewSummarizeHandler(summaryService service.SummaryService) *SummarizeHandler {
	return &SummarizeHandler{
		summaryService: summaryService,
	}
}

// Summarize handles POST /summarize requests. The document is accepted
// and queued for background processing; the response carries the task
// ID for status polling.
func (h *SummarizeHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			shared.RespondWithError(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("The uploaded file exceeds the %d MiB limit", maxUploadBytes>>20))
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer func() { _ = file.Close() }()

	contentType := header.Header.Get("Content-Type")

	created, err := h.summaryService.EnqueueDocument(r.Context(), file, header.Filename, contentType)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusAccepted, SummarizeResponse{
		Message: "Document accepted for processing. Poll the status endpoint for the result.",
		TaskID:  created.ID.String(),
	})
}
