package domain

import (
	"github.com/google/uuid"
)

// Label represents a project-scoped tag attachable to tasks
type Label struct {
	BaseModel
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index:idx_labels_project_id" json:"project_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Color     string    `gorm:"type:varchar(7);default:'#64748b'" json:"color"`
}

// TableName specifies the table name for Label
func (Label) TableName() string {
	return "labels"
}
