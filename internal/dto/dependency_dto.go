package dto

import (
	"time"

	"github.com/google/uuid"

	"task-board-api/internal/domain"
)

// AddDependencyRequest represents the request to link two tasks
type AddDependencyRequest struct {
	TargetTaskID   uuid.UUID             `json:"targetTaskId" binding:"required"`
	DependencyType domain.DependencyType `json:"dependencyType" binding:"required,oneof=BLOCKS IS_BLOCKED_BY RELATES_TO DUPLICATES IS_DUPLICATED_BY"`
}

// DependencyResponse represents a dependency edge
type DependencyResponse struct {
	ID             uuid.UUID             `json:"dependencyId"`
	SourceTaskID   uuid.UUID             `json:"sourceTaskId"`
	TargetTaskID   uuid.UUID             `json:"targetTaskId"`
	DependencyType domain.DependencyType `json:"dependencyType"`
	SourceTaskKey  string                `json:"sourceTaskKey,omitempty"`
	TargetTaskKey  string                `json:"targetTaskKey,omitempty"`
	CreatedBy      uuid.UUID             `json:"createdBy"`
	CreatedAt      time.Time             `json:"createdAt"`
}

// BlockersResponse answers the "is this task blocked" query
type BlockersResponse struct {
	TaskID                uuid.UUID `json:"taskId"`
	HasUnresolvedBlockers bool      `json:"hasUnresolvedBlockers"`
}

// ToDependencyResponse converts a domain dependency edge to its response representation
func ToDependencyResponse(dep *domain.TaskDependency) *DependencyResponse {
	resp := &DependencyResponse{
		ID:             dep.ID,
		SourceTaskID:   dep.SourceTaskID,
		TargetTaskID:   dep.TargetTaskID,
		DependencyType: dep.DependencyType,
		CreatedBy:      dep.CreatedBy,
		CreatedAt:      dep.CreatedAt,
	}
	if dep.SourceTask != nil {
		resp.SourceTaskKey = dep.SourceTask.TaskKey
	}
	if dep.TargetTask != nil {
		resp.TargetTaskKey = dep.TargetTask.TaskKey
	}
	return resp
}

// ToDependencyResponseList converts a slice of dependency edges
func ToDependencyResponseList(deps []*domain.TaskDependency) []*DependencyResponse {
	out := make([]*DependencyResponse, 0, len(deps))
	for _, d := range deps {
		out = append(out, ToDependencyResponse(d))
	}
	return out
}
