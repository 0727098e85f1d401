package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heyvishusri/ppt-summary-maker/internal/api/shared"
	"github.com/heyvishusri/ppt-summary-maker/internal/deck"
	"github.com/heyvishusri/ppt-summary-maker/internal/storage"
)

// DownloadHandler serves generated slide decks
type DownloadHandler struct {
	artifacts *storage.ArtifactStore
}

// NewDownloadHandler creates a new DownloadHandler
func NewDownloadHandler(artifacts *storage.ArtifactStore) *DownloadHandler {
	return &DownloadHandler{
		artifacts: artifacts,
	}
}

// Download handles GET /download/{filename} requests. The filename is
// validated against traversal before any filesystem access.
func (h *DownloadHandler) Download(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	file, err := h.artifacts.Open(filename)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to read file", err)
		return
	}

	w.Header().Set("Content-Type", deck.MIMETypePPTX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	http.ServeContent(w, r, filename, info.ModTime(), file)
}
