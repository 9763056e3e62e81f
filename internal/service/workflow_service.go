package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
	"task-board-api/internal/dto"
	"task-board-api/internal/repository"
	"task-board-api/internal/response"
)

// WorkflowRuleService defines the interface for workflow rule management
type WorkflowRuleService interface {
	CreateRule(ctx context.Context, userID, projectID uuid.UUID, req *dto.WorkflowRuleRequest) (*dto.WorkflowRuleResponse, error)
	GetProjectRules(ctx context.Context, userID, projectID uuid.UUID) ([]*dto.WorkflowRuleResponse, error)
	UpdateRule(ctx context.Context, userID, ruleID uuid.UUID, req *dto.WorkflowRuleRequest) (*dto.WorkflowRuleResponse, error)
	ToggleRule(ctx context.Context, userID, ruleID uuid.UUID) (*dto.WorkflowRuleResponse, error)
	DeleteRule(ctx context.Context, userID, ruleID uuid.UUID) error
}

// workflowRuleServiceImpl is the implementation of WorkflowRuleService
type workflowRuleServiceImpl struct {
	ruleRepo    repository.WorkflowRepository
	projectRepo repository.ProjectRepository
	ruleCache   *RuleCache
	logger      *zap.Logger
}

// NewWorkflowRuleService creates a new instance of WorkflowRuleService
func NewWorkflowRuleService(
	ruleRepo repository.WorkflowRepository,
	projectRepo repository.ProjectRepository,
	ruleCache *RuleCache,
	logger *zap.Logger,
) WorkflowRuleService {
	return &workflowRuleServiceImpl{
		ruleRepo:    ruleRepo,
		projectRepo: projectRepo,
		ruleCache:   ruleCache,
		logger:      logger,
	}
}

// CreateRule creates a project automation rule. The action value is validated
// against the action type up front so rules saved through the API cannot fail
// to parse at execution time.
func (s *workflowRuleServiceImpl) CreateRule(ctx context.Context, userID, projectID uuid.UUID, req *dto.WorkflowRuleRequest) (*dto.WorkflowRuleResponse, error) {
	if err := requireProjectMember(ctx, s.projectRepo, projectID, userID); err != nil {
		return nil, err
	}
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify project", err.Error())
	}
	if err := validateRuleRequest(req); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	rule := &domain.WorkflowRule{
		ProjectID:    projectID,
		Name:         req.Name,
		Description:  req.Description,
		Trigger:      req.Trigger,
		TriggerValue: req.TriggerValue,
		Action:       req.Action,
		ActionValue:  req.ActionValue,
		IsActive:     isActive,
		CreatedBy:    userID,
	}
	if err := s.ruleRepo.Create(ctx, rule); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create workflow rule", err.Error())
	}

	s.ruleCache.Invalidate(ctx, projectID)
	s.logger.Info("Workflow rule created",
		zap.String("rule", rule.Name),
		zap.String("project_id", projectID.String()),
	)
	return dto.ToWorkflowRuleResponse(rule), nil
}

// GetProjectRules returns all rules of a project, newest first
func (s *workflowRuleServiceImpl) GetProjectRules(ctx context.Context, userID, projectID uuid.UUID) ([]*dto.WorkflowRuleResponse, error) {
	if err := requireProjectMember(ctx, s.projectRepo, projectID, userID); err != nil {
		return nil, err
	}
	rules, err := s.ruleRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list workflow rules", err.Error())
	}
	return dto.ToWorkflowRuleResponseList(rules), nil
}

// UpdateRule replaces a rule's definition
func (s *workflowRuleServiceImpl) UpdateRule(ctx context.Context, userID, ruleID uuid.UUID, req *dto.WorkflowRuleRequest) (*dto.WorkflowRuleResponse, error) {
	rule, err := s.findRule(ctx, ruleID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projectRepo, rule.ProjectID, userID); err != nil {
		return nil, err
	}
	if err := validateRuleRequest(req); err != nil {
		return nil, err
	}

	rule.Name = req.Name
	rule.Description = req.Description
	rule.Trigger = req.Trigger
	rule.TriggerValue = req.TriggerValue
	rule.Action = req.Action
	rule.ActionValue = req.ActionValue
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err := s.ruleRepo.Update(ctx, rule); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update workflow rule", err.Error())
	}

	s.ruleCache.Invalidate(ctx, rule.ProjectID)
	s.logger.Info("Workflow rule updated", zap.String("rule_id", ruleID.String()))
	return dto.ToWorkflowRuleResponse(rule), nil
}

// ToggleRule flips a rule's active flag
func (s *workflowRuleServiceImpl) ToggleRule(ctx context.Context, userID, ruleID uuid.UUID) (*dto.WorkflowRuleResponse, error) {
	rule, err := s.findRule(ctx, ruleID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projectRepo, rule.ProjectID, userID); err != nil {
		return nil, err
	}

	rule.IsActive = !rule.IsActive
	if err := s.ruleRepo.Update(ctx, rule); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to toggle workflow rule", err.Error())
	}

	s.ruleCache.Invalidate(ctx, rule.ProjectID)
	s.logger.Info("Workflow rule toggled",
		zap.String("rule_id", ruleID.String()),
		zap.Bool("is_active", rule.IsActive),
	)
	return dto.ToWorkflowRuleResponse(rule), nil
}

// DeleteRule removes a rule
func (s *workflowRuleServiceImpl) DeleteRule(ctx context.Context, userID, ruleID uuid.UUID) error {
	rule, err := s.findRule(ctx, ruleID)
	if err != nil {
		return err
	}
	if err := requireProjectMember(ctx, s.projectRepo, rule.ProjectID, userID); err != nil {
		return err
	}
	if err := s.ruleRepo.Delete(ctx, ruleID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete workflow rule", err.Error())
	}
	s.ruleCache.Invalidate(ctx, rule.ProjectID)
	s.logger.Info("Workflow rule deleted", zap.String("rule_id", ruleID.String()))
	return nil
}

func (s *workflowRuleServiceImpl) findRule(ctx context.Context, ruleID uuid.UUID) (*domain.WorkflowRule, error) {
	rule, err := s.ruleRepo.FindByID(ctx, ruleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Workflow rule not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load workflow rule", err.Error())
	}
	return rule, nil
}

// validateRuleRequest checks the trigger/action enums and the action value's
// shape for the chosen action
func validateRuleRequest(req *dto.WorkflowRuleRequest) error {
	if !req.Trigger.Valid() {
		return response.NewAppError(response.ErrCodeValidation, "Unknown workflow trigger", string(req.Trigger))
	}
	if !req.Action.Valid() {
		return response.NewAppError(response.ErrCodeValidation, "Unknown workflow action", string(req.Action))
	}

	switch req.Action {
	case domain.ActionAssignUser, domain.ActionUnassignUser,
		domain.ActionAddLabel, domain.ActionRemoveLabel, domain.ActionMoveToColumn:
		if _, err := uuid.Parse(req.ActionValue); err != nil {
			return response.NewAppError(response.ErrCodeValidation,
				"Action value must be a valid id for action "+string(req.Action), req.ActionValue)
		}
	case domain.ActionChangeStatus:
		if !domain.TaskStatus(req.ActionValue).Valid() {
			return response.NewAppError(response.ErrCodeValidation,
				"Action value must be a valid task status", req.ActionValue)
		}
	case domain.ActionChangePriority:
		if !domain.TaskPriority(req.ActionValue).Valid() {
			return response.NewAppError(response.ErrCodeValidation,
				"Action value must be a valid task priority", req.ActionValue)
		}
	}
	return nil
}
