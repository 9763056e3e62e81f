package dto

import (
	"time"

	"github.com/google/uuid"

	"task-board-api/internal/domain"
)

// CreateCommentRequest represents the request to comment on a task
type CreateCommentRequest struct {
	Content         string     `json:"content" binding:"required,min=1,max=2000"`
	ParentCommentID *uuid.UUID `json:"parentCommentId"`
}

// UpdateCommentRequest represents the request to edit a comment
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// CommentResponse represents a task comment
type CommentResponse struct {
	ID              uuid.UUID  `json:"commentId"`
	TaskID          uuid.UUID  `json:"taskId"`
	AuthorID        uuid.UUID  `json:"authorId"`
	ParentCommentID *uuid.UUID `json:"parentCommentId,omitempty"`
	Content         string     `json:"content"`
	IsEdited        bool       `json:"isEdited"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// ToCommentResponse converts a domain comment to its response representation
func ToCommentResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:              comment.ID,
		TaskID:          comment.TaskID,
		AuthorID:        comment.AuthorID,
		ParentCommentID: comment.ParentCommentID,
		Content:         comment.Content,
		IsEdited:        comment.IsEdited,
		CreatedAt:       comment.CreatedAt,
		UpdatedAt:       comment.UpdatedAt,
	}
}
