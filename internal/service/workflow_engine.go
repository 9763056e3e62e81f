package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"task-board-api/internal/domain"
	"task-board-api/internal/metrics"
	"task-board-api/internal/repository"
)

// WorkflowEngine evaluates project automation rules against task events.
// Execution is best-effort: it runs out of band relative to the request that
// raised the trigger, a single rule's failure never stops the remaining
// rules, and nothing here can fail the originating request.
type WorkflowEngine interface {
	Execute(ctx context.Context, taskID uuid.UUID, trigger domain.WorkflowTrigger, triggerValue string)
}

type actionFunc func(ctx context.Context, task *domain.Task, rule *domain.WorkflowRule) (mutated bool, err error)

// workflowEngineImpl is the implementation of WorkflowEngine
type workflowEngineImpl struct {
	ruleRepo   repository.WorkflowRepository
	taskRepo   repository.TaskRepository
	labelRepo  repository.LabelRepository
	columnRepo repository.ColumnRepository
	notifier   Notifier
	ruleCache  *RuleCache
	metrics    *metrics.Metrics
	logger     *zap.Logger
	actions    map[domain.WorkflowAction]actionFunc
}

// NewWorkflowEngine creates a new instance of WorkflowEngine
func NewWorkflowEngine(
	ruleRepo repository.WorkflowRepository,
	taskRepo repository.TaskRepository,
	labelRepo repository.LabelRepository,
	columnRepo repository.ColumnRepository,
	notifier Notifier,
	ruleCache *RuleCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) WorkflowEngine {
	e := &workflowEngineImpl{
		ruleRepo:   ruleRepo,
		taskRepo:   taskRepo,
		labelRepo:  labelRepo,
		columnRepo: columnRepo,
		notifier:   notifier,
		ruleCache:  ruleCache,
		metrics:    m,
		logger:     logger,
	}
	e.actions = map[domain.WorkflowAction]actionFunc{
		domain.ActionAssignUser:       e.assignUser,
		domain.ActionUnassignUser:     e.unassignUser,
		domain.ActionChangeStatus:     e.changeStatus,
		domain.ActionChangePriority:   e.changePriority,
		domain.ActionAddLabel:         e.addLabel,
		domain.ActionRemoveLabel:      e.removeLabel,
		domain.ActionSendNotification: e.sendNotification,
		domain.ActionMoveToColumn:     e.moveToColumn,
	}
	return e
}

// Execute runs every active rule of the task's project registered for the
// trigger. The task is re-read so rules see the state the triggering request
// persisted. Cumulative mutations are saved once after all rules have run.
func (e *workflowEngineImpl) Execute(ctx context.Context, taskID uuid.UUID, trigger domain.WorkflowTrigger, triggerValue string) {
	task, err := e.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		e.logger.Warn("Workflow execution skipped, task not found",
			zap.String("task_id", taskID.String()),
			zap.String("trigger", string(trigger)),
			zap.Error(err),
		)
		return
	}

	rules := e.loadRules(ctx, task.ProjectID, trigger)
	mutated := false

	for _, rule := range rules {
		if !matchesTriggerValue(rule, triggerValue) {
			continue
		}
		changed, err := e.executeAction(ctx, task, rule)
		if err != nil {
			e.metrics.IncrementWorkflowRuleFailed()
			e.logger.Error("Workflow rule failed",
				zap.String("rule", rule.Name),
				zap.String("task", task.TaskKey),
				zap.Error(err),
			)
			continue
		}
		mutated = mutated || changed
		e.metrics.IncrementWorkflowRuleExecuted()
		e.logger.Info("Workflow rule executed",
			zap.String("rule", rule.Name),
			zap.String("task", task.TaskKey),
		)
	}

	if mutated {
		if err := e.taskRepo.Update(ctx, task); err != nil {
			e.logger.Error("Failed to persist workflow mutations",
				zap.String("task", task.TaskKey),
				zap.Error(err),
			)
		}
	}
}

func (e *workflowEngineImpl) loadRules(ctx context.Context, projectID uuid.UUID, trigger domain.WorkflowTrigger) []*domain.WorkflowRule {
	if cached := e.ruleCache.Get(ctx, projectID, trigger); cached != nil {
		return cached
	}
	rules, err := e.ruleRepo.FindActiveByProjectAndTrigger(ctx, projectID, trigger)
	if err != nil {
		e.logger.Error("Failed to load workflow rules",
			zap.String("project_id", projectID.String()),
			zap.String("trigger", string(trigger)),
			zap.Error(err),
		)
		return nil
	}
	e.ruleCache.Set(ctx, projectID, trigger, rules)
	return rules
}

// matchesTriggerValue applies the optional trigger filter: an empty filter
// matches every event, a non-empty one must equal the event value
// case-insensitively
func matchesTriggerValue(rule *domain.WorkflowRule, triggerValue string) bool {
	if strings.TrimSpace(rule.TriggerValue) == "" {
		return true
	}
	return strings.EqualFold(rule.TriggerValue, triggerValue)
}

// executeAction dispatches one rule through the action table. A panic inside
// an action is contained to that rule.
func (e *workflowEngineImpl) executeAction(ctx context.Context, task *domain.Task, rule *domain.WorkflowRule) (mutated bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			mutated = false
			err = fmt.Errorf("workflow action panicked: %v", r)
		}
	}()

	action, ok := e.actions[rule.Action]
	if !ok {
		return false, fmt.Errorf("unknown workflow action %q", rule.Action)
	}
	return action(ctx, task, rule)
}

func (e *workflowEngineImpl) assignUser(ctx context.Context, task *domain.Task, rule *domain.WorkflowRule) (bool, error) {
	userID, err := uuid.Parse(rule.ActionValue)
	if err != nil {
		return false, fmt.Errorf("invalid user id %q: %w", rule.ActionValue, err)
	}
	if task.HasAssignee(userID) {
		return false, nil
	}
	assignment := &domain.TaskAssignment{TaskID: task.ID, UserID: userID}
	if err := e.taskRepo.AddAssignee(ctx, assignment); err != nil {
		return false, err
	}
	task.Assignees = append(task.Assignees, *assignment)
	return false, nil
}

func (e *workflowEngineImpl) unassignUser(ctx context.Context, task *domain.Task, rule *domain.WorkflowRule) (bool, error) {
	userID, err := uuid.Parse(rule.ActionValue)
	if err != nil {
		return false, fmt.Errorf("invalid user id %q: %w", rule.ActionValue, err)
	}
	if !task.HasAssignee(userID) {
		return false, nil
	}
	if err := e.taskRepo.RemoveAssignee(ctx, task.ID, userID); err != nil {
		return false, err
	}
	remaining := task.Assignees[:0]
	for _, a := range task.Assignees {
		if a.UserID != userID {
			remaining = append(remaining, a)
		}
	}
	task.Assignees = remaining
	return false, nil
}

func (e *workflowEngineImpl) changeStatus(ctx context.Context, task *domain.Task, rule *domain.WorkflowRule) (bool, error) {
	status := domain.TaskStatus(rule.ActionValue)
	if !status.Valid() {
		return false, fmt.Errorf("invalid task status %q", rule.ActionValue)
	}
	if task.Status == status {
		return false, nil
	}
	task.Status = status
	return true, nil
}

func (e *workflowEngineImpl) changePriority(ctx context.Context, task *domain.Task, rule *domain.WorkflowRule) (bool, error) {
	priority := domain.TaskPriority(rule.ActionValue)
	if !priority.Valid() {
		return false, fmt.Errorf("invalid task priority %q", rule.ActionValue)
	}
	if task.Priority == priority {
		return false, nil
	}
	task.Priority = priority
	return true, nil
}

func (e *workflowEngineImpl) addLabel(ctx context.Context, task *domain.Task, rule *domain.WorkflowRule) (bool, error) {
	label, err := e.findProjectLabel(ctx, task, rule.ActionValue)
	if err != nil || label == nil {
		return false, err
	}
	if err := e.taskRepo.AddLabel(ctx, task, label); err != nil {
		return false, err
	}
	return false, nil
}

func (e *workflowEngineImpl) removeLabel(ctx context.Context, task *domain.Task, rule *domain.WorkflowRule) (bool, error) {
	label, err := e.findProjectLabel(ctx, task, rule.ActionValue)
	if err != nil || label == nil {
		return false, err
	}
	if err := e.taskRepo.RemoveLabel(ctx, task, label); err != nil {
		return false, err
	}
	return false, nil
}

// findProjectLabel resolves a label id within the task's project.
// A missing or foreign-project label is a no-op, not an error.
func (e *workflowEngineImpl) findProjectLabel(ctx context.Context, task *domain.Task, value string) (*domain.Label, error) {
	labelID, err := uuid.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("invalid label id %q: %w", value, err)
	}
	label, err := e.labelRepo.FindByID(ctx, labelID)
	if err != nil {
		return nil, nil
	}
	if label.ProjectID != task.ProjectID {
		return nil, nil
	}
	return label, nil
}

func (e *workflowEngineImpl) sendNotification(ctx context.Context, task *domain.Task, rule *domain.WorkflowRule) (bool, error) {
	for _, assignee := range task.Assignees {
		if err := e.notifier.SendTaskUpdated(ctx, task, assignee.UserID, "Workflow: "+rule.Name); err != nil {
			e.logger.Warn("Failed to send workflow notification",
				zap.String("task", task.TaskKey),
				zap.String("recipient", assignee.UserID.String()),
				zap.Error(err),
			)
		}
	}
	return false, nil
}

// moveToColumn reassigns the task's column directly. Automation moves bypass
// the WIP limit check that gates user-initiated moves.
func (e *workflowEngineImpl) moveToColumn(ctx context.Context, task *domain.Task, rule *domain.WorkflowRule) (bool, error) {
	columnID, err := uuid.Parse(rule.ActionValue)
	if err != nil {
		return false, fmt.Errorf("invalid column id %q: %w", rule.ActionValue, err)
	}
	column, err := e.columnRepo.FindByID(ctx, columnID)
	if err != nil {
		return false, nil
	}
	if task.ColumnID != nil && *task.ColumnID == column.ID {
		return false, nil
	}
	task.ColumnID = &column.ID
	return true, nil
}
