package dto

import (
	"time"

	"github.com/google/uuid"

	"task-board-api/internal/domain"
)

// WorkflowRuleRequest represents the request to create or update a workflow rule
type WorkflowRuleRequest struct {
	Name         string                 `json:"name" binding:"required,min=1,max=255"`
	Description  string                 `json:"description"`
	Trigger      domain.WorkflowTrigger `json:"trigger" binding:"required"`
	TriggerValue string                 `json:"triggerValue"`
	Action       domain.WorkflowAction  `json:"action" binding:"required"`
	ActionValue  string                 `json:"actionValue"`
	IsActive     *bool                  `json:"isActive"`
}

// WorkflowRuleResponse represents a workflow rule
type WorkflowRuleResponse struct {
	ID           uuid.UUID              `json:"ruleId"`
	ProjectID    uuid.UUID              `json:"projectId"`
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	Trigger      domain.WorkflowTrigger `json:"trigger"`
	TriggerValue string                 `json:"triggerValue"`
	Action       domain.WorkflowAction  `json:"action"`
	ActionValue  string                 `json:"actionValue"`
	IsActive     bool                   `json:"isActive"`
	CreatedBy    uuid.UUID              `json:"createdBy"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

// ToWorkflowRuleResponse converts a domain rule to its response representation
func ToWorkflowRuleResponse(rule *domain.WorkflowRule) *WorkflowRuleResponse {
	return &WorkflowRuleResponse{
		ID:           rule.ID,
		ProjectID:    rule.ProjectID,
		Name:         rule.Name,
		Description:  rule.Description,
		Trigger:      rule.Trigger,
		TriggerValue: rule.TriggerValue,
		Action:       rule.Action,
		ActionValue:  rule.ActionValue,
		IsActive:     rule.IsActive,
		CreatedBy:    rule.CreatedBy,
		CreatedAt:    rule.CreatedAt,
		UpdatedAt:    rule.UpdatedAt,
	}
}

// ToWorkflowRuleResponseList converts a slice of rules
func ToWorkflowRuleResponseList(rules []*domain.WorkflowRule) []*WorkflowRuleResponse {
	out := make([]*WorkflowRuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, ToWorkflowRuleResponse(r))
	}
	return out
}
