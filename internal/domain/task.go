package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskStatus represents the semantic lifecycle state of a task
type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "OPEN"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusInReview   TaskStatus = "IN_REVIEW"
	TaskStatusDone       TaskStatus = "DONE"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

// Valid reports whether s is a known task status
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusInReview, TaskStatusDone, TaskStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether a task in this status no longer blocks its dependents
func (s TaskStatus) Terminal() bool {
	return s == TaskStatusDone || s == TaskStatusCancelled
}

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	TaskPriorityLow      TaskPriority = "LOW"
	TaskPriorityMedium   TaskPriority = "MEDIUM"
	TaskPriorityHigh     TaskPriority = "HIGH"
	TaskPriorityCritical TaskPriority = "CRITICAL"
)

// Valid reports whether p is a known task priority
func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityCritical:
		return true
	}
	return false
}

// Task represents a unit of work placed on a board column
type Task struct {
	BaseModel
	ProjectID    uuid.UUID        `gorm:"type:uuid;not null;index:idx_tasks_project_id" json:"project_id"`
	ColumnID     *uuid.UUID       `gorm:"type:uuid;index:idx_tasks_column_id" json:"column_id"`
	ParentTaskID *uuid.UUID       `gorm:"type:uuid;index:idx_tasks_parent_task_id" json:"parent_task_id"`
	SprintID     *uuid.UUID       `gorm:"type:uuid;index:idx_tasks_sprint_id" json:"sprint_id"`
	ReporterID   uuid.UUID        `gorm:"type:uuid;not null" json:"reporter_id"`
	TaskKey      string           `gorm:"type:varchar(20);not null;uniqueIndex:uq_tasks_task_key" json:"task_key"`
	Title        string           `gorm:"type:varchar(500);not null" json:"title"`
	Description  string           `gorm:"type:text" json:"description"`
	Status       TaskStatus       `gorm:"type:varchar(20);not null;default:'OPEN';index:idx_tasks_status" json:"status"`
	Priority     TaskPriority     `gorm:"type:varchar(20);not null;default:'MEDIUM'" json:"priority"`
	Position     int              `gorm:"not null;default:0" json:"position"`
	DueDate      *time.Time       `gorm:"type:timestamp" json:"due_date"`
	StartedAt    *time.Time       `gorm:"type:timestamp" json:"started_at"`
	CompletedAt  *time.Time       `gorm:"type:timestamp" json:"completed_at"`
	Assignees    []TaskAssignment `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"assignees,omitempty"`
	Labels       []Label          `gorm:"many2many:task_labels;constraint:OnDelete:CASCADE" json:"labels,omitempty"`
}

// TaskAssignment links a task to an assigned user
type TaskAssignment struct {
	TaskID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"task_id"`
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	AssignedAt time.Time `gorm:"type:timestamp;not null" json:"assigned_at"`
}

// BeforeCreate stamps the assignment time when none is set
func (a *TaskAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.AssignedAt.IsZero() {
		a.AssignedAt = time.Now()
	}
	return nil
}

// HasAssignee reports whether userID is currently assigned to the task
func (t *Task) HasAssignee(userID uuid.UUID) bool {
	for _, a := range t.Assignees {
		if a.UserID == userID {
			return true
		}
	}
	return false
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// TableName specifies the table name for TaskAssignment
func (TaskAssignment) TableName() string {
	return "task_assignments"
}
