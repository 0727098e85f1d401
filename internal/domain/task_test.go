package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	t.Run("valid filename", func(t *testing.T) {
		t.Parallel()

		task, err := NewTask("report.pdf")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, task.ID)
		assert.Equal(t, "report.pdf", task.OriginalFilename)
		assert.Equal(t, TaskStatusPending, task.Status)
		assert.Empty(t, task.OutputFilename)
		assert.Empty(t, task.ErrorDetail)
		assert.False(t, task.CreatedAt.IsZero())
	})

	t.Run("empty filename", func(t *testing.T) {
		t.Parallel()

		task, err := NewTask("")
		assert.Nil(t, task)
		assert.ErrorIs(t, err, ErrEmptyFilename)
	})

	t.Run("two tasks get distinct IDs", func(t *testing.T) {
		t.Parallel()

		first, err := NewTask("same.docx")
		require.NoError(t, err)
		second, err := NewTask("same.docx")
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestTask_Validate(t *testing.T) {
	t.Parallel()

	base := func() *Task {
		task, err := NewTask("doc.pdf")
		require.NoError(t, err)
		return task
	}

	tests := []struct {
		name    string
		mutate  func(*Task)
		wantErr error
	}{
		{
			name:    "valid pending task",
			mutate:  func(t *Task) {},
			wantErr: nil,
		},
		{
			name:    "nil ID",
			mutate:  func(t *Task) { t.ID = uuid.Nil },
			wantErr: ErrEmptyTaskID,
		},
		{
			name:    "unknown status",
			mutate:  func(t *Task) { t.Status = TaskStatus("RUNNING") },
			wantErr: ErrInvalidTaskStatus,
		},
		{
			name:    "completed without output",
			mutate:  func(t *Task) { t.Status = TaskStatusCompleted },
			wantErr: ErrMissingOutputName,
		},
		{
			name: "completed with output",
			mutate: func(t *Task) {
				t.Status = TaskStatusCompleted
				t.OutputFilename = "doc_summary_abc123.pptx"
			},
			wantErr: nil,
		},
		{
			name:    "failed without detail",
			mutate:  func(t *Task) { t.Status = TaskStatusFailed },
			wantErr: ErrMissingErrorDetail,
		},
		{
			name: "failed with detail",
			mutate: func(t *Task) {
				t.Status = TaskStatusFailed
				t.ErrorDetail = "document contains no extractable text"
			},
			wantErr: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			task := base()
			tc.mutate(task)

			err := task.Validate()
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTask_IsTerminal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status   TaskStatus
		terminal bool
	}{
		{TaskStatusPending, false},
		{TaskStatusProcessing, false},
		{TaskStatusCompleted, true},
		{TaskStatusFailed, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			t.Parallel()

			task := &Task{Status: tc.status}
			assert.Equal(t, tc.terminal, task.IsTerminal())
		})
	}
}
