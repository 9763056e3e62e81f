package domain

import (
	"github.com/google/uuid"
)

// Board represents a kanban board within a project
type Board struct {
	BaseModel
	ProjectID   uuid.UUID     `gorm:"type:uuid;not null;index:idx_boards_project_id" json:"project_id"`
	Name        string        `gorm:"type:varchar(255);not null" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	Position    int           `gorm:"not null;default:0" json:"position"`
	IsDefault   bool          `gorm:"default:false;index:idx_boards_is_default" json:"is_default"`
	Columns     []BoardColumn `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"columns,omitempty"`
}

// ColumnRole declares the status semantics of a column explicitly.
// Columns created before the field existed carry RoleNone and fall back
// to name matching (see service.DeriveColumnRole).
type ColumnRole string

const (
	ColumnRoleNone       ColumnRole = "NONE"
	ColumnRoleInProgress ColumnRole = "IN_PROGRESS"
	ColumnRoleInReview   ColumnRole = "IN_REVIEW"
	ColumnRoleDone       ColumnRole = "DONE"
)

// BoardColumn represents an ordered column on a board.
// Task positions within a column are dense integers starting at 0;
// column positions within a board may carry gaps after a delete.
type BoardColumn struct {
	BaseModel
	BoardID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_board_columns_board_id" json:"board_id"`
	Name         string     `gorm:"type:varchar(100);not null" json:"name"`
	Color        string     `gorm:"type:varchar(7);default:'#94a3b8'" json:"color"`
	Position     int        `gorm:"not null;default:0" json:"position"`
	WipLimit     int        `gorm:"not null;default:0" json:"wip_limit"`
	IsDoneColumn bool       `gorm:"default:false" json:"is_done_column"`
	SemanticRole ColumnRole `gorm:"type:varchar(20);not null;default:'NONE'" json:"semantic_role"`
	Tasks        []Task     `gorm:"foreignKey:ColumnID" json:"tasks,omitempty"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}

// TableName specifies the table name for BoardColumn
func (BoardColumn) TableName() string {
	return "board_columns"
}
