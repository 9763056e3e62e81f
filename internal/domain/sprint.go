package domain

import (
	"time"

	"github.com/google/uuid"
)

// SprintStatus represents the lifecycle state of a sprint
type SprintStatus string

const (
	SprintStatusPlanned   SprintStatus = "PLANNED"
	SprintStatusActive    SprintStatus = "ACTIVE"
	SprintStatusCompleted SprintStatus = "COMPLETED"
)

// Sprint represents a time-boxed iteration tasks can be scoped to
type Sprint struct {
	BaseModel
	ProjectID uuid.UUID    `gorm:"type:uuid;not null;index:idx_sprints_project_id" json:"project_id"`
	Name      string       `gorm:"type:varchar(255);not null" json:"name"`
	Goal      string       `gorm:"type:text" json:"goal"`
	Status    SprintStatus `gorm:"type:varchar(20);not null;default:'PLANNED'" json:"status"`
	StartDate *time.Time   `gorm:"type:timestamp" json:"start_date"`
	EndDate   *time.Time   `gorm:"type:timestamp" json:"end_date"`
}

// TableName specifies the table name for Sprint
func (Sprint) TableName() string {
	return "sprints"
}
