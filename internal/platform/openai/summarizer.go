// Package openai implements the summarize.Summarizer interface using
// OpenAI's Chat Completions API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/heyvishusri/ppt-summary-maker/internal/config"
	"github.com/heyvishusri/ppt-summary-maker/internal/summarize"
)

const (
	temperature = 0.2

	systemPrompt = `Summarize the document text the user provides into a
	concise abstract. Cover only the main points, keep critical context
	(dates, numbers, names), stay neutral and objective, and do not add
	information that is not in the text. Output plain prose without
	headings or bullet markers. Respect the word bounds given by the user.`
)

// Summarizer calls OpenAI's Chat Completions API to produce summaries.
type Summarizer struct {
	logger *slog.Logger
	client openai.Client
	model  string
}

var _ summarize.Summarizer = (*Summarizer)(nil)

// NewSummarizer builds a new OpenAI-backed summarizer instance.
func NewSummarizer(logger *slog.Logger, cfg config.SummarizerConfig) (*Summarizer, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", summarize.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", summarize.ErrInvalidConfig)
	}

	return &Summarizer{
		logger: logger,
		client: openai.NewClient(
			option.WithAPIKey(cfg.OpenAIAPIKey),
		),
		model: cfg.ModelName,
	}, nil
}

// Summarize generates a summary of text within the given word bounds.
// Empty input returns an empty summary without calling the model.
func (s *Summarizer) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", nil
	}

	promptBuilder := strings.Builder{}
	fmt.Fprintf(&promptBuilder, "Summarize in roughly %d to %d words.\n", minLength, maxLength)
	promptBuilder.WriteString("Document text:\n")
	promptBuilder.WriteString(trimmed)

	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
		openai.UserMessage(promptBuilder.String()),
	}

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(s.model),
		Messages:            messages,
		Temperature:         openai.Float(temperature),
		MaxCompletionTokens: openai.Int(int64(maxLength * 4)),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", summarize.ErrSummarizationFailed, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: chat completion choices are missing", summarize.ErrInvalidResponse)
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)

	s.logger.Debug("openai summarization complete",
		"input_length", len(trimmed),
		"summary_length", len(summary))

	return summary, nil
}
