package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents a project that owns boards, tasks, labels, and workflow rules
type Project struct {
	BaseModel
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_projects_owner_id" json:"owner_id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Prefix      string          `gorm:"type:varchar(10);not null" json:"prefix"`
	Description string          `gorm:"type:text" json:"description"`
	Boards      []Board         `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"boards,omitempty"`
	Members     []ProjectMember `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"members,omitempty"`
}

// ProjectRole represents the role of a project member
type ProjectRole string

const (
	ProjectRoleOwner  ProjectRole = "OWNER"
	ProjectRoleAdmin  ProjectRole = "ADMIN"
	ProjectRoleMember ProjectRole = "MEMBER"
)

// ProjectMember represents a member of a project
type ProjectMember struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID   `gorm:"type:uuid;not null;index:idx_project_members_project_id;uniqueIndex:uq_project_members_project_user" json:"project_id"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;index:idx_project_members_user_id;uniqueIndex:uq_project_members_project_user" json:"user_id"`
	RoleName  ProjectRole `gorm:"type:varchar(50);not null" json:"role_name"`
	JoinedAt  time.Time   `gorm:"type:timestamp;not null" json:"joined_at"`
}

// BeforeCreate assigns a UUID primary key when none is set
func (m *ProjectMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}

// TableName specifies the table name for ProjectMember
func (ProjectMember) TableName() string {
	return "project_members"
}
