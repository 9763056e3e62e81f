package dto

import (
	"time"

	"github.com/google/uuid"

	"task-board-api/internal/domain"
)

// CreateSprintRequest represents the request to create a sprint
type CreateSprintRequest struct {
	Name      string     `json:"name" binding:"required,min=1,max=255"`
	Goal      string     `json:"goal" binding:"omitempty,max=2000"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// SprintResponse represents a sprint
type SprintResponse struct {
	ID        uuid.UUID           `json:"sprintId"`
	ProjectID uuid.UUID           `json:"projectId"`
	Name      string              `json:"name"`
	Goal      string              `json:"goal,omitempty"`
	Status    domain.SprintStatus `json:"status"`
	StartDate *time.Time          `json:"startDate,omitempty"`
	EndDate   *time.Time          `json:"endDate,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
}

// ToSprintResponse converts a domain sprint to its response representation
func ToSprintResponse(sprint *domain.Sprint) SprintResponse {
	return SprintResponse{
		ID:        sprint.ID,
		ProjectID: sprint.ProjectID,
		Name:      sprint.Name,
		Goal:      sprint.Goal,
		Status:    sprint.Status,
		StartDate: sprint.StartDate,
		EndDate:   sprint.EndDate,
		CreatedAt: sprint.CreatedAt,
	}
}
