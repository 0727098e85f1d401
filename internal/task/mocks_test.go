package task

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// mockTask implements Task with a controllable Execute function.
type mockTask struct {
	id        uuid.UUID
	taskType  string
	ExecuteFn func(ctx context.Context) error
}

func newMockTask(executeFn func(ctx context.Context) error) *mockTask {
	return &mockTask{
		id:        uuid.New(),
		taskType:  "mock_task",
		ExecuteFn: executeFn,
	}
}

func (t *mockTask) ID() uuid.UUID { return t.id }
func (t *mockTask) Type() string  { return t.taskType }

func (t *mockTask) Execute(ctx context.Context) error {
	if t.ExecuteFn != nil {
		return t.ExecuteFn(ctx)
	}
	return nil
}

// mockRegistry records lifecycle transitions for assertions.
type mockRegistry struct {
	mu sync.Mutex

	MarkProcessingFn func(ctx context.Context, id uuid.UUID) error
	CompleteFn       func(ctx context.Context, id uuid.UUID, outputFilename string) error
	FailFn           func(ctx context.Context, id uuid.UUID, errorDetail string) error

	processingCalls int
	completeCalls   int
	failCalls       int
	outputFilename  string
	errorDetail     string
}

func (m *mockRegistry) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.processingCalls++
	m.mu.Unlock()
	if m.MarkProcessingFn != nil {
		return m.MarkProcessingFn(ctx, id)
	}
	return nil
}

func (m *mockRegistry) Complete(ctx context.Context, id uuid.UUID, outputFilename string) error {
	m.mu.Lock()
	m.completeCalls++
	m.outputFilename = outputFilename
	m.mu.Unlock()
	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, id, outputFilename)
	}
	return nil
}

func (m *mockRegistry) Fail(ctx context.Context, id uuid.UUID, errorDetail string) error {
	m.mu.Lock()
	m.failCalls++
	m.errorDetail = errorDetail
	m.mu.Unlock()
	if m.FailFn != nil {
		return m.FailFn(ctx, id, errorDetail)
	}
	return nil
}

type mockExtractor struct {
	ExtractTextFn func(ctx context.Context, filePath, ext string) (string, error)
}

func (m *mockExtractor) ExtractText(ctx context.Context, filePath, ext string) (string, error) {
	if m.ExtractTextFn != nil {
		return m.ExtractTextFn(ctx, filePath, ext)
	}
	return "extracted text", nil
}

type mockSummarizer struct {
	SummarizeFn func(ctx context.Context, text string, maxLength, minLength int) (string, error)
}

func (m *mockSummarizer) Summarize(
	ctx context.Context,
	text string,
	maxLength, minLength int,
) (string, error) {
	if m.SummarizeFn != nil {
		return m.SummarizeFn(ctx, text, maxLength, minLength)
	}
	return "a summary", nil
}

type mockRenderer struct {
	RenderFn func(ctx context.Context, summary, originalFilename, outputDir string) (string, error)
}

func (m *mockRenderer) Render(
	ctx context.Context,
	summary, originalFilename, outputDir string,
) (string, error) {
	if m.RenderFn != nil {
		return m.RenderFn(ctx, summary, originalFilename, outputDir)
	}
	return outputDir + "/deck.pptx", nil
}

type mockUploads struct {
	mu          sync.Mutex
	RemoveFn    func(path string) error
	removeCalls int
	removedPath string
}

func (m *mockUploads) Remove(path string) error {
	m.mu.Lock()
	m.removeCalls++
	m.removedPath = path
	m.mu.Unlock()
	if m.RemoveFn != nil {
		return m.RemoveFn(path)
	}
	return nil
}
