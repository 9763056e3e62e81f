package service

import (
	"testing"
	"time"

	"task-board-api/internal/domain"
	"task-board-api/internal/response"
)

func TestDeriveColumnRole(t *testing.T) {
	tests := []struct {
		name   string
		column domain.BoardColumn
		want   domain.ColumnRole
	}{
		{
			name:   "explicit role wins over name",
			column: domain.BoardColumn{Name: "In Progress", SemanticRole: domain.ColumnRoleDone},
			want:   domain.ColumnRoleDone,
		},
		{
			name:   "done flag without role",
			column: domain.BoardColumn{Name: "Shipped", IsDoneColumn: true},
			want:   domain.ColumnRoleDone,
		},
		{
			name:   "name contains progress",
			column: domain.BoardColumn{Name: "Work in Progress"},
			want:   domain.ColumnRoleInProgress,
		},
		{
			name:   "name contains review",
			column: domain.BoardColumn{Name: "Code Review"},
			want:   domain.ColumnRoleInReview,
		},
		{
			name:   "name matching is case insensitive",
			column: domain.BoardColumn{Name: "IN PROGRESS"},
			want:   domain.ColumnRoleInProgress,
		},
		{
			name:   "plain column has no role",
			column: domain.BoardColumn{Name: "Backlog"},
			want:   domain.ColumnRoleNone,
		},
		{
			name:   "role NONE falls through to name",
			column: domain.BoardColumn{Name: "In Review", SemanticRole: domain.ColumnRoleNone},
			want:   domain.ColumnRoleInReview,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveColumnRole(&tt.column); got != tt.want {
				t.Errorf("DeriveColumnRole() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateMove_WipLimitRejection(t *testing.T) {
	column := &domain.BoardColumn{Name: "In Progress", WipLimit: 3}
	task := &domain.Task{Status: domain.TaskStatusOpen}

	_, err := EvaluateMove(task, column, 3, time.Now())

	if err == nil {
		t.Fatal("Expected WIP limit error, got nil")
	}
	appErr, ok := err.(*response.AppError)
	if !ok {
		t.Fatalf("Expected AppError, got %T", err)
	}
	if appErr.Code != response.ErrCodeWipLimitExceeded {
		t.Errorf("Expected error code %s, got %s", response.ErrCodeWipLimitExceeded, appErr.Code)
	}
	want := "WIP limit exceeded for column 'In Progress'. Maximum: 3, Current: 3"
	if appErr.Message != want {
		t.Errorf("Expected message %q, got %q", want, appErr.Message)
	}
}

func TestEvaluateMove_WipLimitBoundary(t *testing.T) {
	column := &domain.BoardColumn{Name: "In Progress", WipLimit: 3}
	task := &domain.Task{Status: domain.TaskStatusOpen}

	// count below the limit passes
	change, err := EvaluateMove(task, column, 2, time.Now())
	if err != nil {
		t.Fatalf("Expected move to pass at count 2, got %v", err)
	}
	if change.NewStatus != domain.TaskStatusInProgress {
		t.Errorf("Expected status IN_PROGRESS, got %s", change.NewStatus)
	}
}

func TestEvaluateMove_ZeroWipLimitIsUnlimited(t *testing.T) {
	column := &domain.BoardColumn{Name: "Backlog", WipLimit: 0}
	task := &domain.Task{Status: domain.TaskStatusOpen}

	if _, err := EvaluateMove(task, column, 10000, time.Now()); err != nil {
		t.Errorf("Expected unlimited column to accept any count, got %v", err)
	}
}

func TestEvaluateMove_DoneColumnStampsCompletedAt(t *testing.T) {
	column := &domain.BoardColumn{Name: "Done", IsDoneColumn: true}
	task := &domain.Task{Status: domain.TaskStatusInProgress}
	now := time.Now().UTC()

	change, err := EvaluateMove(task, column, 0, now)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if change.NewStatus != domain.TaskStatusDone {
		t.Errorf("Expected status DONE, got %s", change.NewStatus)
	}
	if !change.Changed {
		t.Error("Expected status change to be flagged")
	}
	if change.CompletedAt == nil || !change.CompletedAt.Equal(now) {
		t.Errorf("Expected CompletedAt %v, got %v", now, change.CompletedAt)
	}
}

func TestEvaluateMove_CompletedAtIsMonotonic(t *testing.T) {
	column := &domain.BoardColumn{Name: "Done", IsDoneColumn: true}
	already := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	task := &domain.Task{Status: domain.TaskStatusOpen, CompletedAt: &already}

	change, err := EvaluateMove(task, column, 0, time.Now())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if change.CompletedAt != nil {
		t.Error("Expected CompletedAt to stay untouched on a re-entry into done")
	}
}

func TestEvaluateMove_StartedAtIsMonotonic(t *testing.T) {
	column := &domain.BoardColumn{Name: "In Progress"}
	already := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	task := &domain.Task{Status: domain.TaskStatusDone, StartedAt: &already}

	change, err := EvaluateMove(task, column, 0, time.Now())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if change.StartedAt != nil {
		t.Error("Expected StartedAt to stay untouched when returning to in-progress")
	}
	if change.NewStatus != domain.TaskStatusInProgress {
		t.Errorf("Expected status IN_PROGRESS, got %s", change.NewStatus)
	}
}

func TestEvaluateMove_PlainColumnKeepsStatus(t *testing.T) {
	column := &domain.BoardColumn{Name: "Backlog"}
	task := &domain.Task{Status: domain.TaskStatusInProgress}

	change, err := EvaluateMove(task, column, 0, time.Now())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if change.Changed {
		t.Error("Expected no status change for a column without a role")
	}
	if change.NewStatus != domain.TaskStatusInProgress {
		t.Errorf("Expected status to stay IN_PROGRESS, got %s", change.NewStatus)
	}
}

func TestStatusChange_Apply(t *testing.T) {
	now := time.Now().UTC()
	task := &domain.Task{Status: domain.TaskStatusOpen}
	change := &StatusChange{
		NewStatus: domain.TaskStatusInProgress,
		Changed:   true,
		StartedAt: &now,
	}

	change.Apply(task)

	if task.Status != domain.TaskStatusInProgress {
		t.Errorf("Expected status IN_PROGRESS, got %s", task.Status)
	}
	if task.StartedAt == nil || !task.StartedAt.Equal(now) {
		t.Errorf("Expected StartedAt %v, got %v", now, task.StartedAt)
	}
	if task.CompletedAt != nil {
		t.Error("Expected CompletedAt to stay nil")
	}
}
