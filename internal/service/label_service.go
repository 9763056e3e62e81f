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

// LabelService defines the interface for project label management
type LabelService interface {
	CreateLabel(ctx context.Context, userID, projectID uuid.UUID, req *dto.CreateLabelRequest) (*dto.LabelResponse, error)
	GetProjectLabels(ctx context.Context, userID, projectID uuid.UUID) ([]*dto.LabelResponse, error)
	DeleteLabel(ctx context.Context, userID, labelID uuid.UUID) error
}

// labelServiceImpl is the implementation of LabelService
type labelServiceImpl struct {
	labelRepo   repository.LabelRepository
	projectRepo repository.ProjectRepository
	logger      *zap.Logger
}

// NewLabelService creates a new instance of LabelService
func NewLabelService(
	labelRepo repository.LabelRepository,
	projectRepo repository.ProjectRepository,
	logger *zap.Logger,
) LabelService {
	return &labelServiceImpl{
		labelRepo:   labelRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// CreateLabel creates a project label
func (s *labelServiceImpl) CreateLabel(ctx context.Context, userID, projectID uuid.UUID, req *dto.CreateLabelRequest) (*dto.LabelResponse, error) {
	if err := requireProjectMember(ctx, s.projectRepo, projectID, userID); err != nil {
		return nil, err
	}

	color := req.Color
	if color == "" {
		color = "#64748b"
	}
	label := &domain.Label{
		ProjectID: projectID,
		Name:      req.Name,
		Color:     color,
	}
	if err := s.labelRepo.Create(ctx, label); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create label", err.Error())
	}

	resp := dto.ToLabelResponse(label)
	return &resp, nil
}

// GetProjectLabels lists the labels of a project
func (s *labelServiceImpl) GetProjectLabels(ctx context.Context, userID, projectID uuid.UUID) ([]*dto.LabelResponse, error) {
	if err := requireProjectMember(ctx, s.projectRepo, projectID, userID); err != nil {
		return nil, err
	}
	labels, err := s.labelRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list labels", err.Error())
	}
	out := make([]*dto.LabelResponse, 0, len(labels))
	for _, l := range labels {
		resp := dto.ToLabelResponse(l)
		out = append(out, &resp)
	}
	return out, nil
}

// DeleteLabel removes a label from its project
func (s *labelServiceImpl) DeleteLabel(ctx context.Context, userID, labelID uuid.UUID) error {
	label, err := s.labelRepo.FindByID(ctx, labelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Label not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load label", err.Error())
	}
	if err := requireProjectMember(ctx, s.projectRepo, label.ProjectID, userID); err != nil {
		return err
	}
	if err := s.labelRepo.Delete(ctx, labelID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete label", err.Error())
	}
	return nil
}
