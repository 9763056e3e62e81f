package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"task-board-api/internal/domain"
	"task-board-api/internal/metrics"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	NotificationTaskAssigned NotificationType = "TASK_ASSIGNED"
	NotificationTaskUpdated  NotificationType = "TASK_UPDATED"
)

// NotificationEvent represents a notification to be sent
type NotificationEvent struct {
	Type         NotificationType       `json:"type"`
	ActorID      uuid.UUID              `json:"actorId"`
	TargetUserID uuid.UUID              `json:"targetUserId"`
	ProjectID    uuid.UUID              `json:"projectId"`
	ResourceType string                 `json:"resourceType"`
	ResourceID   uuid.UUID              `json:"resourceId"`
	ResourceName string                 `json:"resourceName,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	OccurredAt   string                 `json:"occurredAt,omitempty"`
}

// NotificationClient sends task events to the notification service.
// It implements service.Notifier.
type NotificationClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewNotificationClient creates a new notification service client
func NewNotificationClient(baseURL string, apiKey string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) *NotificationClient {
	return &NotificationClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

// SendTaskAssigned notifies a user that they were assigned to a task
func (c *NotificationClient) SendTaskAssigned(ctx context.Context, task *domain.Task, recipientID, actorID uuid.UUID) error {
	return c.send(ctx, NotificationEvent{
		Type:         NotificationTaskAssigned,
		ActorID:      actorID,
		TargetUserID: recipientID,
		ProjectID:    task.ProjectID,
		ResourceType: "TASK",
		ResourceID:   task.ID,
		ResourceName: task.TaskKey,
		Metadata: map[string]interface{}{
			"title": task.Title,
		},
	})
}

// SendTaskUpdated notifies a user about a change to one of their tasks
func (c *NotificationClient) SendTaskUpdated(ctx context.Context, task *domain.Task, recipientID uuid.UUID, description string) error {
	return c.send(ctx, NotificationEvent{
		Type:         NotificationTaskUpdated,
		TargetUserID: recipientID,
		ProjectID:    task.ProjectID,
		ResourceType: "TASK",
		ResourceID:   task.ID,
		ResourceName: task.TaskKey,
		Metadata: map[string]interface{}{
			"title":       task.Title,
			"description": description,
		},
	})
}

// send posts the event to the notification service
func (c *NotificationClient) send(ctx context.Context, event NotificationEvent) error {
	url := fmt.Sprintf("%s/api/internal/notifications", c.baseURL)

	if event.OccurredAt == "" {
		event.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	}

	jsonBody, err := json.Marshal(event)
	if err != nil {
		c.logger.Error("Failed to marshal notification event",
			zap.Error(err),
			zap.String("type", string(event.Type)),
		)
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	startTime := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		c.logger.Error("Failed to create notification request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall(url, "POST", statusCode, duration, err)
	}

	if err != nil {
		c.logger.Error("Failed to send notification",
			zap.Error(err),
			zap.String("type", string(event.Type)),
			zap.Duration("duration", duration),
		)
		// Graceful degradation: log error but don't fail the main operation
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.logger.Info("Notification sent successfully",
			zap.String("type", string(event.Type)),
			zap.String("target_user_id", event.TargetUserID.String()),
			zap.Duration("duration", duration),
		)
		return nil
	}

	c.logger.Warn("Notification service returned non-success status",
		zap.Int("status_code", resp.StatusCode),
		zap.String("type", string(event.Type)),
		zap.Duration("duration", duration),
	)

	// Graceful degradation
	return nil
}

// NoOpNotificationClient is a no-op implementation for when notifications are disabled
type NoOpNotificationClient struct{}

// NewNoOpNotificationClient creates a notifier that discards every event
func NewNoOpNotificationClient() *NoOpNotificationClient {
	return &NoOpNotificationClient{}
}

// SendTaskAssigned discards the event
func (c *NoOpNotificationClient) SendTaskAssigned(ctx context.Context, task *domain.Task, recipientID, actorID uuid.UUID) error {
	return nil
}

// SendTaskUpdated discards the event
func (c *NoOpNotificationClient) SendTaskUpdated(ctx context.Context, task *domain.Task, recipientID uuid.UUID, description string) error {
	return nil
}
