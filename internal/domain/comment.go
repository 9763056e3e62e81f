package domain

import (
	"github.com/google/uuid"
)

// Comment represents a discussion entry on a task. Top-level comments have a
// nil ParentCommentID, replies point at the comment they answer.
type Comment struct {
	BaseModel
	TaskID          uuid.UUID  `gorm:"type:uuid;not null;index:idx_comments_task_id" json:"task_id"`
	AuthorID        uuid.UUID  `gorm:"type:uuid;not null" json:"author_id"`
	ParentCommentID *uuid.UUID `gorm:"type:uuid;index:idx_comments_parent_comment_id" json:"parent_comment_id"`
	Content         string     `gorm:"type:text;not null" json:"content"`
	IsEdited        bool       `gorm:"not null;default:false" json:"is_edited"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
