package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heyvishusri/ppt-summary-maker/internal/config"
)

// testConfig builds a minimal valid configuration backed by temp
// directories. The OpenAI provider is used because its client does not
// reach the network at construction time.
func testConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Server: config.ServerConfig{
			Port:           8000,
			LogLevel:       "error",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Storage: config.StorageConfig{
			UploadDir: t.TempDir(),
			OutputDir: t.TempDir(),
			AllowedTypes: []string{
				config.MIMETypePDF,
				config.MIMETypeDOCX,
			},
		},
		Summarizer: config.SummarizerConfig{
			Provider:      "openai",
			OpenAIAPIKey:  "test-key",
			ModelName:     "gpt-4o-mini",
			MaxLength:     150,
			MinLength:     50,
			TruncateChars: 10000,
		},
		Task: config.TaskConfig{
			WorkerCount: 1,
			QueueSize:   10,
		},
	}
}

func newTestApplication(t *testing.T) *application {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app, err := newApplication(context.Background(), testConfig(t), logger)
	require.NoError(t, err)
	t.Cleanup(app.cleanup)

	return app
}

func TestNewApplication_WiresAllDependencies(t *testing.T) {
	app := newTestApplication(t)

	assert.NotNil(t, app.registry)
	assert.NotNil(t, app.uploads)
	assert.NotNil(t, app.artifacts)
	assert.NotNil(t, app.extractor)
	assert.NotNil(t, app.summarizer)
	assert.NotNil(t, app.renderer)
	assert.NotNil(t, app.summaryService)
	assert.NotNil(t, app.taskRunner)
}

func TestNewApplication_RejectsUnknownProvider(t *testing.T) {
	cfg := testConfig(t)
	cfg.Summarizer.Provider = "huggingface"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app, err := newApplication(context.Background(), cfg, logger)
	assert.Nil(t, app)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "huggingface")
}

func TestRouter_RootEndpoint(t *testing.T) {
	app := newTestApplication(t)
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
}

func TestRouter_StatusUnknownTask(t *testing.T) {
	app := newTestApplication(t)
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/status/"+uuid.NewString(), nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_SummarizeWithoutFile(t *testing.T) {
	app := newTestApplication(t)
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/summarize", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRouter_DownloadMissingArtifact(t *testing.T) {
	app := newTestApplication(t)
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/download/nonexistent.pptx", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	app := newTestApplication(t)
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodOptions, "/summarize", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}
