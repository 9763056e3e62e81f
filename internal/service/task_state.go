package service

import (
	"fmt"
	"strings"
	"time"

	"task-board-api/internal/domain"
	"task-board-api/internal/response"
)

// StatusChange is the outcome of evaluating a move against the target column.
// Timestamps are returned rather than applied so the orchestrator can commit
// them together with the position updates in one transaction.
type StatusChange struct {
	NewStatus   domain.TaskStatus
	Changed     bool
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// DeriveColumnRole resolves the status semantics of a column. The explicit
// SemanticRole field wins; columns that predate it (RoleNone) fall back to
// the isDoneColumn flag and then to name-substring matching, which is the
// legacy behavior: renaming such a column changes task semantics.
func DeriveColumnRole(column *domain.BoardColumn) domain.ColumnRole {
	if column.SemanticRole != "" && column.SemanticRole != domain.ColumnRoleNone {
		return column.SemanticRole
	}
	if column.IsDoneColumn {
		return domain.ColumnRoleDone
	}
	name := strings.ToLower(column.Name)
	if strings.Contains(name, "progress") {
		return domain.ColumnRoleInProgress
	}
	if strings.Contains(name, "review") {
		return domain.ColumnRoleInReview
	}
	return domain.ColumnRoleNone
}

// EvaluateMove runs the WIP check and derives the task's status for a move
// into targetColumn. currentCount is the number of tasks already in the
// target column, excluding the task being moved. The check runs before any
// position mutation; a rejected move leaves all state untouched.
//
// Timestamps are monotonic: startedAt and completedAt are stamped once and
// never reset by later moves.
func EvaluateMove(task *domain.Task, targetColumn *domain.BoardColumn, currentCount int64, now time.Time) (*StatusChange, error) {
	if targetColumn.WipLimit > 0 && currentCount >= int64(targetColumn.WipLimit) {
		return nil, response.NewAppError(
			response.ErrCodeWipLimitExceeded,
			fmt.Sprintf("WIP limit exceeded for column '%s'. Maximum: %d, Current: %d",
				targetColumn.Name, targetColumn.WipLimit, currentCount),
			"",
		)
	}

	change := &StatusChange{NewStatus: task.Status}

	switch DeriveColumnRole(targetColumn) {
	case domain.ColumnRoleDone:
		change.NewStatus = domain.TaskStatusDone
		change.Changed = task.Status != domain.TaskStatusDone
		if task.CompletedAt == nil {
			completed := now
			change.CompletedAt = &completed
		}
	case domain.ColumnRoleInProgress:
		change.NewStatus = domain.TaskStatusInProgress
		change.Changed = task.Status != domain.TaskStatusInProgress
		if task.StartedAt == nil {
			started := now
			change.StartedAt = &started
		}
	case domain.ColumnRoleInReview:
		change.NewStatus = domain.TaskStatusInReview
		change.Changed = task.Status != domain.TaskStatusInReview
	}

	return change, nil
}

// Apply writes the status change and timestamps onto the task
func (c *StatusChange) Apply(task *domain.Task) {
	task.Status = c.NewStatus
	if c.StartedAt != nil {
		task.StartedAt = c.StartedAt
	}
	if c.CompletedAt != nil {
		task.CompletedAt = c.CompletedAt
	}
}
