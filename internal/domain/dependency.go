package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DependencyType represents the kind of directed relationship between two tasks
type DependencyType string

const (
	DependencyBlocks         DependencyType = "BLOCKS"
	DependencyIsBlockedBy    DependencyType = "IS_BLOCKED_BY"
	DependencyRelatesTo      DependencyType = "RELATES_TO"
	DependencyDuplicates     DependencyType = "DUPLICATES"
	DependencyIsDuplicatedBy DependencyType = "IS_DUPLICATED_BY"
)

// Valid reports whether t is a known dependency type
func (t DependencyType) Valid() bool {
	switch t {
	case DependencyBlocks, DependencyIsBlockedBy, DependencyRelatesTo, DependencyDuplicates, DependencyIsDuplicatedBy:
		return true
	}
	return false
}

// TaskDependency is a directed edge between two tasks of the same project.
// Uniqueness holds on (source, target, type). Edges survive independently of
// either endpoint; deleting a task cascades its edges at the database level.
type TaskDependency struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SourceTaskID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_task_dependencies_source;uniqueIndex:uq_task_dependencies_edge" json:"source_task_id"`
	TargetTaskID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_task_dependencies_target;uniqueIndex:uq_task_dependencies_edge" json:"target_task_id"`
	DependencyType DependencyType `gorm:"type:varchar(20);not null;uniqueIndex:uq_task_dependencies_edge" json:"dependency_type"`
	CreatedBy      uuid.UUID      `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt      time.Time      `gorm:"type:timestamp;not null" json:"created_at"`
	SourceTask     *Task          `gorm:"foreignKey:SourceTaskID;constraint:OnDelete:CASCADE" json:"source_task,omitempty"`
	TargetTask     *Task          `gorm:"foreignKey:TargetTaskID;constraint:OnDelete:CASCADE" json:"target_task,omitempty"`
}

// BeforeCreate assigns a UUID primary key when none is set
func (d *TaskDependency) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name for TaskDependency
func (TaskDependency) TableName() string {
	return "task_dependencies"
}
