package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"task-board-api/internal/domain"
)

const ruleCacheTTL = 5 * time.Minute

var allTriggers = []domain.WorkflowTrigger{
	domain.TriggerTaskCreated,
	domain.TriggerTaskStatusChanged,
	domain.TriggerTaskAssigned,
	domain.TriggerTaskPriorityChanged,
	domain.TriggerTaskMovedToColumn,
	domain.TriggerDueDateSet,
	domain.TriggerCommentAdded,
}

// RuleCache caches active workflow rules per (project, trigger) in redis.
// A nil redis client disables the cache entirely; the engine then reads
// rules from the database on every event.
type RuleCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRuleCache creates a new RuleCache
func NewRuleCache(client *redis.Client, logger *zap.Logger) *RuleCache {
	return &RuleCache{client: client, logger: logger}
}

func ruleCacheKey(projectID uuid.UUID, trigger domain.WorkflowTrigger) string {
	return fmt.Sprintf("workflow:rules:%s:%s", projectID, trigger)
}

// Get returns the cached rules for (project, trigger), or nil on miss
func (c *RuleCache) Get(ctx context.Context, projectID uuid.UUID, trigger domain.WorkflowTrigger) []*domain.WorkflowRule {
	if c.client == nil {
		return nil
	}
	data, err := c.client.Get(ctx, ruleCacheKey(projectID, trigger)).Bytes()
	if err != nil {
		return nil
	}
	var rules []*domain.WorkflowRule
	if err := json.Unmarshal(data, &rules); err != nil {
		c.logger.Warn("Failed to decode cached workflow rules", zap.Error(err))
		return nil
	}
	return rules
}

// Set stores the rules for (project, trigger)
func (c *RuleCache) Set(ctx context.Context, projectID uuid.UUID, trigger domain.WorkflowTrigger, rules []*domain.WorkflowRule) {
	if c.client == nil {
		return
	}
	data, err := json.Marshal(rules)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, ruleCacheKey(projectID, trigger), data, ruleCacheTTL).Err(); err != nil {
		c.logger.Warn("Failed to cache workflow rules", zap.Error(err))
	}
}

// Invalidate drops every cached trigger entry for the project.
// Called after any rule create, update, toggle, or delete.
func (c *RuleCache) Invalidate(ctx context.Context, projectID uuid.UUID) {
	if c.client == nil {
		return
	}
	keys := make([]string, 0, len(allTriggers))
	for _, trigger := range allTriggers {
		keys = append(keys, ruleCacheKey(projectID, trigger))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("Failed to invalidate workflow rule cache",
			zap.String("project_id", projectID.String()),
			zap.Error(err),
		)
	}
}
