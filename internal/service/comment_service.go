package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
	"task-board-api/internal/dto"
	"task-board-api/internal/repository"
	"task-board-api/internal/response"
)

// CommentService defines the interface for task comment management
type CommentService interface {
	AddComment(ctx context.Context, userID, taskID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	GetTaskComments(ctx context.Context, userID, taskID uuid.UUID) ([]*dto.CommentResponse, error)
	UpdateComment(ctx context.Context, userID, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error
}

// commentServiceImpl is the implementation of CommentService
type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	notifier    Notifier
	events      EventQueue
	logger      *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	notifier Notifier,
	events EventQueue,
	logger *zap.Logger,
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		notifier:    notifier,
		events:      events,
		logger:      logger,
	}
}

// AddComment adds a comment to a task and fires the COMMENT_ADDED trigger
func (s *commentServiceImpl) AddComment(ctx context.Context, userID, taskID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	task, err := s.loadTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projectRepo, task.ProjectID, userID); err != nil {
		return nil, err
	}

	if req.ParentCommentID != nil {
		parent, err := s.commentRepo.FindByID(ctx, *req.ParentCommentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewAppError(response.ErrCodeNotFound, "Parent comment not found", "")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load parent comment", err.Error())
		}
		if parent.TaskID != task.ID {
			return nil, response.NewAppError(response.ErrCodeValidation, "Parent comment belongs to another task", "")
		}
	}

	comment := &domain.Comment{
		TaskID:          task.ID,
		AuthorID:        userID,
		ParentCommentID: req.ParentCommentID,
		Content:         req.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	for _, a := range task.Assignees {
		if a.UserID == userID {
			continue
		}
		if err := s.notifier.SendTaskUpdated(ctx, task, a.UserID, "New comment on task"); err != nil {
			s.logger.Warn("Failed to send comment notification",
				zap.String("task", task.TaskKey),
				zap.Error(err),
			)
		}
	}
	if s.events != nil {
		s.events.Enqueue(task.ID, domain.TriggerCommentAdded, "")
	}

	resp := dto.ToCommentResponse(comment)
	return &resp, nil
}

// GetTaskComments lists a task's top-level comments, newest first
func (s *commentServiceImpl) GetTaskComments(ctx context.Context, userID, taskID uuid.UUID) ([]*dto.CommentResponse, error) {
	task, err := s.loadTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projectRepo, task.ProjectID, userID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FindTopLevelByTaskID(ctx, taskID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list comments", err.Error())
	}
	out := make([]*dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		resp := dto.ToCommentResponse(c)
		out = append(out, &resp)
	}
	return out, nil
}

// UpdateComment edits a comment's content. Only the author may edit.
func (s *commentServiceImpl) UpdateComment(ctx context.Context, userID, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	comment, err := s.loadComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != userID {
		return nil, response.NewAppError(response.ErrCodeForbidden, "You can only edit your own comments", "")
	}

	comment.Content = req.Content
	comment.IsEdited = true
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update comment", err.Error())
	}

	resp := dto.ToCommentResponse(comment)
	return &resp, nil
}

// DeleteComment removes a comment. Only the author may delete.
func (s *commentServiceImpl) DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error {
	comment, err := s.loadComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != userID {
		return response.NewAppError(response.ErrCodeForbidden, "You can only delete your own comments", "")
	}
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete comment", err.Error())
	}
	return nil
}

func (s *commentServiceImpl) loadTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Task not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load task", err.Error())
	}
	return task, nil
}

func (s *commentServiceImpl) loadComment(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Comment not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load comment", err.Error())
	}
	return comment, nil
}
