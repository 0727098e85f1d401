package openai

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heyvishusri/ppt-summary-maker/internal/config"
	"github.com/heyvishusri/ppt-summary-maker/internal/summarize"
)

func testConfig() config.SummarizerConfig {
	return config.SummarizerConfig{
		Provider:     "openai",
		OpenAIAPIKey: "test-api-key",
		ModelName:    "gpt-4.1-mini",
		MaxLength:    150,
		MinLength:    50,
	}
}

func TestNewSummarizer_Validation(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("nil logger", func(t *testing.T) {
		t.Parallel()

		_, err := NewSummarizer(nil, testConfig())
		assert.Error(t, err)
	})

	t.Run("missing API key", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig()
		cfg.OpenAIAPIKey = ""

		_, err := NewSummarizer(logger, cfg)
		assert.ErrorIs(t, err, summarize.ErrInvalidConfig)
	})

	t.Run("missing model name", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig()
		cfg.ModelName = ""

		_, err := NewSummarizer(logger, cfg)
		assert.ErrorIs(t, err, summarize.ErrInvalidConfig)
	})
}

func TestSummarizer_EmptyInput(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := NewSummarizer(logger, testConfig())
	require.NoError(t, err)

	summary, err := s.Summarize(context.Background(), "  \n ", 150, 50)
	assert.NoError(t, err)
	assert.Empty(t, summary)
}
