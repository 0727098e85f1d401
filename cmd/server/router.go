package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/heyvishusri/ppt-summary-maker/internal/api"
	apiMiddleware "github.com/heyvishusri/ppt-summary-maker/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.CORSMiddleware(app.config.Server.AllowedOrigins))

	// Create API handlers using the application's services
	healthHandler := api.NewHealthHandler()
	summarizeHandler := api.NewSummarizeHandler(app.summaryService)
	statusHandler := api.NewStatusHandler(app.summaryService)
	downloadHandler := api.NewDownloadHandler(app.artifacts)

	// Register routes
	r.Get("/", healthHandler.Root)
	r.Post("/summarize", summarizeHandler.Summarize)
	r.Get("/status/{task_id}", statusHandler.Status)
	r.Get("/download/{filename}", downloadHandler.Download)

	return r
}
