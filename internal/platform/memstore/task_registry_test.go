package memstore

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heyvishusri/ppt-summary-maker/internal/domain"
	"github.com/heyvishusri/ppt-summary-maker/internal/store"
)

func newTestRegistry() *MemoryTaskRegistry {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewMemoryTaskRegistry(logger)
}

func mustCreateTask(t *testing.T, registry *MemoryTaskRegistry) *domain.Task {
	t.Helper()

	task, err := domain.NewTask("input.pdf")
	require.NoError(t, err)
	require.NoError(t, registry.Create(context.Background(), task))
	return task
}

func TestMemoryTaskRegistry_CreateAndGet(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry()
	ctx := context.Background()

	task := mustCreateTask(t, registry)

	got, err := registry.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, domain.TaskStatusPending, got.Status)

	// the returned record is a snapshot; mutating it must not leak back
	got.Status = domain.TaskStatusFailed
	again, err := registry.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusPending, again.Status)
}

func TestMemoryTaskRegistry_GetUnknown(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry()

	_, err := registry.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestMemoryTaskRegistry_DuplicateCreate(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry()
	ctx := context.Background()

	task := mustCreateTask(t, registry)

	err := registry.Create(ctx, task)
	assert.ErrorIs(t, err, store.ErrDuplicateTask)
}

func TestMemoryTaskRegistry_Transitions(t *testing.T) {
	t.Parallel()

	t.Run("complete records output filename", func(t *testing.T) {
		t.Parallel()

		registry := newTestRegistry()
		ctx := context.Background()
		task := mustCreateTask(t, registry)

		require.NoError(t, registry.MarkProcessing(ctx, task.ID))
		require.NoError(t, registry.Complete(ctx, task.ID, "input_summary_abc.pptx"))

		got, err := registry.Get(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatusCompleted, got.Status)
		assert.Equal(t, "input_summary_abc.pptx", got.OutputFilename)
		assert.Empty(t, got.ErrorDetail)
	})

	t.Run("fail records error detail", func(t *testing.T) {
		t.Parallel()

		registry := newTestRegistry()
		ctx := context.Background()
		task := mustCreateTask(t, registry)

		require.NoError(t, registry.Fail(ctx, task.ID, "document contains no extractable text"))

		got, err := registry.Get(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatusFailed, got.Status)
		assert.Equal(t, "document contains no extractable text", got.ErrorDetail)
		assert.Empty(t, got.OutputFilename)
	})

	t.Run("terminal state is never overwritten", func(t *testing.T) {
		t.Parallel()

		registry := newTestRegistry()
		ctx := context.Background()
		task := mustCreateTask(t, registry)

		require.NoError(t, registry.Complete(ctx, task.ID, "out.pptx"))

		assert.ErrorIs(t, registry.Fail(ctx, task.ID, "late failure"), store.ErrTaskFinalized)
		assert.ErrorIs(t, registry.Complete(ctx, task.ID, "other.pptx"), store.ErrTaskFinalized)
		assert.ErrorIs(t, registry.MarkProcessing(ctx, task.ID), store.ErrTaskFinalized)

		got, err := registry.Get(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatusCompleted, got.Status)
		assert.Equal(t, "out.pptx", got.OutputFilename)
	})

	t.Run("transition on unknown task", func(t *testing.T) {
		t.Parallel()

		registry := newTestRegistry()
		ctx := context.Background()

		assert.ErrorIs(t, registry.MarkProcessing(ctx, uuid.New()), store.ErrTaskNotFound)
		assert.ErrorIs(t, registry.Complete(ctx, uuid.New(), "x.pptx"), store.ErrTaskNotFound)
		assert.ErrorIs(t, registry.Fail(ctx, uuid.New(), "boom"), store.ErrTaskNotFound)
	})
}

func TestMemoryTaskRegistry_ConcurrentReadersSingleWriter(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry()
	ctx := context.Background()
	task := mustCreateTask(t, registry)

	var wg sync.WaitGroup

	// one pipeline writer per task, many concurrent status readers
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = registry.MarkProcessing(ctx, task.ID)
		_ = registry.Complete(ctx, task.ID, "out.pptx")
	}()

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, err := registry.Get(ctx, task.ID)
				if !assert.NoError(t, err) {
					return
				}

				// a reader must never see a half-applied transition
				switch got.Status {
				case domain.TaskStatusPending, domain.TaskStatusProcessing:
					assert.Empty(t, got.OutputFilename)
				case domain.TaskStatusCompleted:
					assert.Equal(t, "out.pptx", got.OutputFilename)
				default:
					t.Errorf("unexpected status %q", got.Status)
				}
			}
		}()
	}

	wg.Wait()
}
