package service

import (
	"context"

	"github.com/google/uuid"

	"task-board-api/internal/domain"
)

// Notifier is the outbound port to the notification service.
// Failures are logged by callers and never propagate to the
// request that raised the event.
type Notifier interface {
	SendTaskUpdated(ctx context.Context, task *domain.Task, recipientID uuid.UUID, description string) error
	SendTaskAssigned(ctx context.Context, task *domain.Task, recipientID, actorID uuid.UUID) error
}
