package service

import (
	"context"

	"github.com/google/uuid"

	"task-board-api/internal/repository"
	"task-board-api/internal/response"
)

// requireProjectMember gates every mutating operation on project membership
func requireProjectMember(ctx context.Context, projectRepo repository.ProjectRepository, projectID, userID uuid.UUID) error {
	ok, err := projectRepo.IsProjectMember(ctx, projectID, userID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to verify project membership", err.Error())
	}
	if !ok {
		return response.NewAppError(response.ErrCodeForbidden, "You are not a member of this project", "")
	}
	return nil
}
