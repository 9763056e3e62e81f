package dto

import (
	"github.com/google/uuid"

	"task-board-api/internal/domain"
)

// CreateLabelRequest represents the request to create a project label
type CreateLabelRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Color string `json:"color" binding:"omitempty,len=7"`
}

// LabelResponse represents a label
type LabelResponse struct {
	ID        uuid.UUID `json:"labelId"`
	ProjectID uuid.UUID `json:"projectId"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
}

// ToLabelResponse converts a domain label to its response representation
func ToLabelResponse(label *domain.Label) LabelResponse {
	return LabelResponse{
		ID:        label.ID,
		ProjectID: label.ProjectID,
		Name:      label.Name,
		Color:     label.Color,
	}
}
