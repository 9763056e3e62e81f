package domain

import (
	"github.com/google/uuid"
)

// WorkflowTrigger represents a task lifecycle event that can activate rules
type WorkflowTrigger string

const (
	TriggerTaskCreated         WorkflowTrigger = "TASK_CREATED"
	TriggerTaskStatusChanged   WorkflowTrigger = "TASK_STATUS_CHANGED"
	TriggerTaskAssigned        WorkflowTrigger = "TASK_ASSIGNED"
	TriggerTaskPriorityChanged WorkflowTrigger = "TASK_PRIORITY_CHANGED"
	TriggerTaskMovedToColumn   WorkflowTrigger = "TASK_MOVED_TO_COLUMN"
	TriggerDueDateSet          WorkflowTrigger = "DUE_DATE_SET"
	TriggerCommentAdded        WorkflowTrigger = "COMMENT_ADDED"
)

// Valid reports whether t is a known workflow trigger
func (t WorkflowTrigger) Valid() bool {
	switch t {
	case TriggerTaskCreated, TriggerTaskStatusChanged, TriggerTaskAssigned,
		TriggerTaskPriorityChanged, TriggerTaskMovedToColumn, TriggerDueDateSet,
		TriggerCommentAdded:
		return true
	}
	return false
}

// WorkflowAction represents the mutation a rule applies when its trigger fires
type WorkflowAction string

const (
	ActionAssignUser       WorkflowAction = "ASSIGN_USER"
	ActionUnassignUser     WorkflowAction = "UNASSIGN_USER"
	ActionChangeStatus     WorkflowAction = "CHANGE_STATUS"
	ActionChangePriority   WorkflowAction = "CHANGE_PRIORITY"
	ActionAddLabel         WorkflowAction = "ADD_LABEL"
	ActionRemoveLabel      WorkflowAction = "REMOVE_LABEL"
	ActionSendNotification WorkflowAction = "SEND_NOTIFICATION"
	ActionMoveToColumn     WorkflowAction = "MOVE_TO_COLUMN"
)

// Valid reports whether a is a known workflow action
func (a WorkflowAction) Valid() bool {
	switch a {
	case ActionAssignUser, ActionUnassignUser, ActionChangeStatus, ActionChangePriority,
		ActionAddLabel, ActionRemoveLabel, ActionSendNotification, ActionMoveToColumn:
		return true
	}
	return false
}

// WorkflowRule is a project-scoped trigger/action automation rule.
// Rules are stateless: each one is a pure (trigger, optional filter) -> action mapping.
type WorkflowRule struct {
	BaseModel
	ProjectID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_workflow_rules_project_id;index:idx_workflow_rules_project_trigger,priority:1" json:"project_id"`
	Name         string          `gorm:"type:varchar(255);not null" json:"name"`
	Description  string          `gorm:"type:text" json:"description"`
	Trigger      WorkflowTrigger `gorm:"type:varchar(50);not null;index:idx_workflow_rules_project_trigger,priority:2" json:"trigger"`
	TriggerValue string          `gorm:"type:varchar(255)" json:"trigger_value"`
	Action       WorkflowAction  `gorm:"type:varchar(50);not null" json:"action"`
	ActionValue  string          `gorm:"type:varchar(255)" json:"action_value"`
	IsActive     bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedBy    uuid.UUID       `gorm:"type:uuid;not null" json:"created_by"`
}

// TableName specifies the table name for WorkflowRule
func (WorkflowRule) TableName() string {
	return "workflow_rules"
}
