// Package gemini implements the summarize.Summarizer interface using
// Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/heyvishusri/ppt-summary-maker/internal/config"
	"github.com/heyvishusri/ppt-summary-maker/internal/summarize"
)

const summaryPromptFormat = `Summarize the following document text into a concise abstract
of roughly %d to %d words. Cover the main points only, stay neutral and
objective, and do not add information that is not in the text. Output plain
prose without headings or bullet markers.

Document text:
%s`

// Summarizer implements summarize.Summarizer using the Gemini API.
type Summarizer struct {
	logger *slog.Logger
	config config.SummarizerConfig
	client *genai.Client
	model  string
}

var _ summarize.Summarizer = (*Summarizer)(nil)

// NewSummarizer creates a new Gemini-backed summarizer with the provided
// dependencies. It validates the configuration and initializes the API
// client.
func NewSummarizer(ctx context.Context, logger *slog.Logger, cfg config.SummarizerConfig) (*Summarizer, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", summarize.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", summarize.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			summarize.ErrInvalidConfig, err)
	}

	return &Summarizer{
		logger: logger,
		config: cfg,
		client: client,
		model:  cfg.ModelName,
	}, nil
}

// Summarize generates a summary of text within the given word bounds.
// Empty input returns an empty summary without calling the model.
func (s *Summarizer) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	prompt := fmt.Sprintf(summaryPromptFormat, minLength, maxLength, text)
	return s.callWithRetry(ctx, prompt, maxLength)
}

// callWithRetry makes a call to the Gemini API with exponential backoff
// retry logic. Transient errors are retried up to config.MaxRetries times;
// permanent errors (blocked content, malformed responses) are returned
// immediately.
func (s *Summarizer) callWithRetry(ctx context.Context, prompt string, maxTokens int) (string, error) {
	maxRetries := s.config.MaxRetries
	baseDelaySeconds := s.config.RetryDelaySeconds
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if maxRetries < 0 {
		s.logger.WarnContext(ctx, "invalid max retries value, using default", "max_retries", 3)
		maxRetries = 3
	}

	if baseDelaySeconds < 1 {
		baseDelaySeconds = 2
	}

	for attempt := 0; ; attempt++ {
		attemptNum := attempt + 1
		s.logger.InfoContext(ctx, "making Gemini API call",
			"attempt", attemptNum,
			"max_attempts", maxRetries+1)

		summary, transient, err := s.callOnce(ctx, prompt, maxTokens)
		if err == nil {
			s.logger.InfoContext(ctx, "Gemini API call successful",
				"attempt", attemptNum,
				"summary_length", len(summary))
			return summary, nil
		}

		s.logger.ErrorContext(ctx, "Gemini API call failed",
			"attempt", attemptNum,
			"error", err)

		if !transient {
			return "", err
		}

		if attempt >= maxRetries {
			return "", fmt.Errorf("%w: exceeded maximum retry attempts (%d)",
				summarize.ErrTransientFailure, maxRetries)
		}

		// exponential backoff with jitter:
		// delay = baseDelay * (2^attempt) * (0.5 + rand(0, 0.5))
		backoffSeconds := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		jitterFactor := 0.5 + rng.Float64()*0.5
		delay := time.Duration(backoffSeconds * jitterFactor * float64(time.Second))

		s.logger.InfoContext(ctx, "retrying after delay",
			"attempt", attemptNum,
			"delay", delay)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", summarize.ErrTransientFailure, ctx.Err())
		}
	}
}

// callOnce performs a single API call. transient reports whether the
// returned error is worth retrying.
func (s *Summarizer) callOnce(ctx context.Context, prompt string, maxTokens int) (summary string, transient bool, err error) {
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](0.2),
			MaxOutputTokens: int32(maxTokens * 4), // generous cap; prompt asks for the word bound
		})
	if err != nil {
		// API transport errors are assumed transient
		return "", true, fmt.Errorf("%w: %v", summarize.ErrSummarizationFailed, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", false, fmt.Errorf("%w: no content generated", summarize.ErrInvalidResponse)
	}

	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", false, fmt.Errorf("%w: finish reason safety", summarize.ErrContentBlocked)
	}

	return strings.TrimSpace(resp.Text()), false, nil
}
