package dto

import (
	"time"

	"github.com/google/uuid"

	"task-board-api/internal/domain"
)

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	ProjectID   uuid.UUID           `json:"projectId" binding:"required"`
	ColumnID    *uuid.UUID          `json:"columnId"`
	ParentTask  *uuid.UUID          `json:"parentTaskId"`
	SprintID    *uuid.UUID          `json:"sprintId"`
	Title       string              `json:"title" binding:"required,min=1,max=500"`
	Description string              `json:"description"`
	Priority    domain.TaskPriority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	DueDate     *time.Time          `json:"dueDate"`
	AssigneeIDs []uuid.UUID         `json:"assigneeIds"`
	LabelIDs    []uuid.UUID         `json:"labelIds"`
}

// UpdateTaskRequest represents the request to update a task's attributes
type UpdateTaskRequest struct {
	Title       *string              `json:"title" binding:"omitempty,min=1,max=500"`
	Description *string              `json:"description"`
	Priority    *domain.TaskPriority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Status      *domain.TaskStatus   `json:"status" binding:"omitempty,oneof=OPEN IN_PROGRESS IN_REVIEW DONE CANCELLED"`
	DueDate     *time.Time           `json:"dueDate"`
}

// MoveTaskRequest represents the request to move a task into a column slot
type MoveTaskRequest struct {
	ColumnID uuid.UUID `json:"columnId" binding:"required"`
	Position int       `json:"position" binding:"min=0"`
}

// AssignUserRequest represents the request to assign a user to a task
type AssignUserRequest struct {
	UserID uuid.UUID `json:"userId" binding:"required"`
}

// TaskResponse represents a task
type TaskResponse struct {
	ID          uuid.UUID           `json:"taskId"`
	ProjectID   uuid.UUID           `json:"projectId"`
	ColumnID    *uuid.UUID          `json:"columnId"`
	ParentTask  *uuid.UUID          `json:"parentTaskId,omitempty"`
	SprintID    *uuid.UUID          `json:"sprintId,omitempty"`
	TaskKey     string              `json:"taskKey"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      domain.TaskStatus   `json:"status"`
	Priority    domain.TaskPriority `json:"priority"`
	Position    int                 `json:"position"`
	AssigneeIDs []uuid.UUID         `json:"assigneeIds"`
	Labels      []LabelResponse     `json:"labels"`
	DueDate     *time.Time          `json:"dueDate,omitempty"`
	StartedAt   *time.Time          `json:"startedAt,omitempty"`
	CompletedAt *time.Time          `json:"completedAt,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// ToTaskResponse converts a domain task to its response representation
func ToTaskResponse(task *domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:          task.ID,
		ProjectID:   task.ProjectID,
		ColumnID:    task.ColumnID,
		ParentTask:  task.ParentTaskID,
		SprintID:    task.SprintID,
		TaskKey:     task.TaskKey,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		Position:    task.Position,
		AssigneeIDs: make([]uuid.UUID, 0, len(task.Assignees)),
		Labels:      make([]LabelResponse, 0, len(task.Labels)),
		DueDate:     task.DueDate,
		StartedAt:   task.StartedAt,
		CompletedAt: task.CompletedAt,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
	for _, a := range task.Assignees {
		resp.AssigneeIDs = append(resp.AssigneeIDs, a.UserID)
	}
	for i := range task.Labels {
		resp.Labels = append(resp.Labels, ToLabelResponse(&task.Labels[i]))
	}
	return resp
}
