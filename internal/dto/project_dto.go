package dto

import (
	"time"

	"github.com/google/uuid"

	"task-board-api/internal/domain"
)

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Prefix      string `json:"prefix" binding:"required,min=1,max=10,alphanum"`
	Description string `json:"description"`
}

// AddMemberRequest represents the request to add a project member
type AddMemberRequest struct {
	UserID uuid.UUID          `json:"userId" binding:"required"`
	Role   domain.ProjectRole `json:"role" binding:"omitempty,oneof=OWNER ADMIN MEMBER"`
}

// ProjectResponse represents a project
type ProjectResponse struct {
	ID          uuid.UUID `json:"projectId"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Name        string    `json:"name"`
	Prefix      string    `json:"prefix"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MemberResponse represents a project member
type MemberResponse struct {
	UserID   uuid.UUID          `json:"userId"`
	Role     domain.ProjectRole `json:"role"`
	JoinedAt time.Time          `json:"joinedAt"`
}

// ActivityResponse represents an activity log entry
type ActivityResponse struct {
	ID          uuid.UUID   `json:"activityId"`
	ProjectID   uuid.UUID   `json:"projectId"`
	UserID      uuid.UUID   `json:"userId"`
	Action      string      `json:"action"`
	EntityType  string      `json:"entityType"`
	EntityID    uuid.UUID   `json:"entityId"`
	Description string      `json:"description"`
	Metadata    interface{} `json:"metadata,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// ToProjectResponse converts a domain project to its response representation
func ToProjectResponse(project *domain.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          project.ID,
		OwnerID:     project.OwnerID,
		Name:        project.Name,
		Prefix:      project.Prefix,
		Description: project.Description,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

// ToMemberResponse converts a domain project member to its response representation
func ToMemberResponse(member *domain.ProjectMember) *MemberResponse {
	return &MemberResponse{
		UserID:   member.UserID,
		Role:     member.RoleName,
		JoinedAt: member.JoinedAt,
	}
}

// ToActivityResponse converts an activity log entry to its response representation
func ToActivityResponse(entry *domain.ActivityLog) *ActivityResponse {
	resp := &ActivityResponse{
		ID:          entry.ID,
		ProjectID:   entry.ProjectID,
		UserID:      entry.UserID,
		Action:      entry.Action,
		EntityType:  entry.EntityType,
		EntityID:    entry.EntityID,
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt,
	}
	if len(entry.Metadata) > 0 {
		resp.Metadata = entry.Metadata
	}
	return resp
}
