package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog records a structural change made by a user.
// Metadata holds the old/new values of the changed attribute as JSON.
type ActivityLog struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_activity_logs_project_id" json:"project_id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index:idx_activity_logs_user_id" json:"user_id"`
	Action      string         `gorm:"type:varchar(50);not null" json:"action"`
	EntityType  string         `gorm:"type:varchar(50);not null" json:"entity_type"`
	EntityID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_activity_logs_entity_id" json:"entity_id"`
	Description string         `gorm:"type:text" json:"description"`
	Metadata    datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt   time.Time      `gorm:"type:timestamp;not null;index:idx_activity_logs_created_at" json:"created_at"`
}

// BeforeCreate assigns a UUID primary key when none is set
func (a *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name for ActivityLog
func (ActivityLog) TableName() string {
	return "activity_logs"
}
