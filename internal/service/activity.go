package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"task-board-api/internal/domain"
	"task-board-api/internal/repository"
)

// recordActivity writes an activity log entry. Logging is best-effort: a
// failed write is reported but never fails the operation that produced it.
func recordActivity(
	ctx context.Context,
	repo repository.ActivityRepository,
	logger *zap.Logger,
	projectID, userID uuid.UUID,
	action, entityType string,
	entityID uuid.UUID,
	description string,
	metadata map[string]interface{},
) {
	entry := &domain.ActivityLog{
		ProjectID:   projectID,
		UserID:      userID,
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		Description: description,
	}
	if len(metadata) > 0 {
		if data, err := json.Marshal(metadata); err == nil {
			entry.Metadata = data
		}
	}
	if err := repo.Create(ctx, entry); err != nil {
		logger.Warn("Failed to record activity",
			zap.String("action", action),
			zap.String("entity_id", entityID.String()),
			zap.Error(err),
		)
	}
}
