package task

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunner_ExecutesSubmittedTasks(t *testing.T) {
	t.Parallel()

	runner := NewRunner(RunnerConfig{WorkerCount: 2, QueueSize: 10}, newTestLogger())
	runner.Start()
	defer runner.Stop()

	done := make(chan struct{})
	task := newMockTask(func(ctx context.Context) error {
		close(done)
		return nil
	})

	require.NoError(t, runner.Submit(context.Background(), task))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task was not executed")
	}
}

func TestRunner_SubmitDoesNotBlockWhenQueueIsFull(t *testing.T) {
	t.Parallel()

	// no workers started, so queued tasks are never drained
	runner := NewRunner(RunnerConfig{WorkerCount: 1, QueueSize: 1}, newTestLogger())

	require.NoError(t, runner.Submit(context.Background(), newMockTask(nil)))

	err := runner.Submit(context.Background(), newMockTask(nil))
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestRunner_SubmitAfterStopFails(t *testing.T) {
	t.Parallel()

	runner := NewRunner(RunnerConfig{WorkerCount: 1, QueueSize: 1}, newTestLogger())
	runner.Start()
	runner.Stop()

	err := runner.Submit(context.Background(), newMockTask(nil))
	assert.ErrorIs(t, err, ErrQueueClosed)
}

func TestRunner_ErrorHandlerReceivesFailures(t *testing.T) {
	t.Parallel()

	runner := NewRunner(RunnerConfig{WorkerCount: 1, QueueSize: 10}, newTestLogger())

	execErr := errors.New("stage blew up")
	handled := make(chan error, 1)
	runner.SetErrorHandler(func(task Task, err error) {
		handled <- err
	})

	runner.Start()
	defer runner.Stop()

	require.NoError(t, runner.Submit(context.Background(), newMockTask(func(ctx context.Context) error {
		return execErr
	})))

	select {
	case err := <-handled:
		assert.ErrorIs(t, err, execErr)
	case <-time.After(2 * time.Second):
		t.Fatal("error handler was not invoked")
	}
}

func TestRunner_ConcurrentSubmissions(t *testing.T) {
	t.Parallel()

	runner := NewRunner(RunnerConfig{WorkerCount: 4, QueueSize: 100}, newTestLogger())
	runner.Start()

	const taskCount = 50

	var executed sync.WaitGroup
	executed.Add(taskCount)

	var submitters sync.WaitGroup
	for i := 0; i < taskCount; i++ {
		submitters.Add(1)
		go func() {
			defer submitters.Done()
			err := runner.Submit(context.Background(), newMockTask(func(ctx context.Context) error {
				executed.Done()
				return nil
			}))
			assert.NoError(t, err)
		}()
	}
	submitters.Wait()

	done := make(chan struct{})
	go func() {
		executed.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("not all tasks were executed")
	}

	runner.Stop()
}

func TestRunner_AppliesDefaultsForInvalidConfig(t *testing.T) {
	t.Parallel()

	runner := NewRunner(RunnerConfig{WorkerCount: 0, QueueSize: -1}, newTestLogger())
	assert.Equal(t, DefaultRunnerConfig().WorkerCount, runner.config.WorkerCount)
	assert.Equal(t, DefaultRunnerConfig().QueueSize, cap(runner.taskChan))
}
