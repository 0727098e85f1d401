package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heyvishusri/ppt-summary-maker/internal/api/shared"
	"github.com/heyvishusri/ppt-summary-maker/internal/domain"
	"github.com/heyvishusri/ppt-summary-maker/internal/service"
)

// StatusResponse represents the response data for a task status poll
type StatusResponse struct {
	Status         string `json:"status"`
	OutputFilename string `json:"output_filename,omitempty"`
	Error          string `json:"error,omitempty"`
}

// StatusHandler handles task status polling requests
type StatusHandler struct {
	summaryService service.SummaryService
}

// NewStatusHandler creates a new StatusHandler
func NewStatusHandler(summaryService service.SummaryService) *StatusHandler {
	return &StatusHandler{
		summaryService: summaryService,
	}
}

// Status handles GET /status/{task_id} requests. A malformed task ID
// is indistinguishable from an unknown one to the client, both yield
// a 404.
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	taskID, err := uuid.Parse(chi.URLParam(r, "task_id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	task, err := h.summaryService.GetTask(r.Context(), taskID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToStatusResponse(task))
}

// taskToStatusResponse converts a domain.Task to a StatusResponse
func taskToStatusResponse(task *domain.Task) StatusResponse {
	return StatusResponse{
		Status:         string(task.Status),
		OutputFilename: task.OutputFilename,
		Error:          task.ErrorDetail,
	}
}
