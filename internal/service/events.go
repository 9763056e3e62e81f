package service

import (
	"github.com/google/uuid"

	"task-board-api/internal/domain"
)

// EventQueue accepts workflow events for asynchronous execution. Enqueue must
// not block: it reports false when the event was dropped because the queue
// was full or stopped.
type EventQueue interface {
	Enqueue(taskID uuid.UUID, trigger domain.WorkflowTrigger, value string) bool
}

// BoardEvent is pushed to connected board clients after a structural change
type BoardEvent struct {
	Type      string      `json:"type"`
	ProjectID uuid.UUID   `json:"projectId"`
	Payload   interface{} `json:"payload,omitempty"`
}

// Board event types
const (
	EventTaskCreated = "TASK_CREATED"
	EventTaskUpdated = "TASK_UPDATED"
	EventTaskMoved   = "TASK_MOVED"
	EventTaskDeleted = "TASK_DELETED"
)

// BoardEventPublisher pushes board events to subscribed clients.
// Publishing is fire-and-forget.
type BoardEventPublisher interface {
	Publish(event BoardEvent)
}

// NopPublisher is a BoardEventPublisher that discards events
type NopPublisher struct{}

// Publish discards the event
func (NopPublisher) Publish(BoardEvent) {}
