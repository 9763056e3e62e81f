package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
	"task-board-api/internal/dto"
	"task-board-api/internal/repository"
	"task-board-api/internal/response"
)

// SprintService defines the interface for sprint lifecycle management
type SprintService interface {
	CreateSprint(ctx context.Context, userID, projectID uuid.UUID, req *dto.CreateSprintRequest) (*dto.SprintResponse, error)
	GetProjectSprints(ctx context.Context, userID, projectID uuid.UUID) ([]*dto.SprintResponse, error)
	StartSprint(ctx context.Context, userID, sprintID uuid.UUID) (*dto.SprintResponse, error)
	CompleteSprint(ctx context.Context, userID, sprintID uuid.UUID) (*dto.SprintResponse, error)
}

// sprintServiceImpl is the implementation of SprintService
type sprintServiceImpl struct {
	sprintRepo  repository.SprintRepository
	projectRepo repository.ProjectRepository
	logger      *zap.Logger
}

// NewSprintService creates a new instance of SprintService
func NewSprintService(
	sprintRepo repository.SprintRepository,
	projectRepo repository.ProjectRepository,
	logger *zap.Logger,
) SprintService {
	return &sprintServiceImpl{
		sprintRepo:  sprintRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// CreateSprint creates a planned sprint in a project
func (s *sprintServiceImpl) CreateSprint(ctx context.Context, userID, projectID uuid.UUID, req *dto.CreateSprintRequest) (*dto.SprintResponse, error) {
	if err := requireProjectMember(ctx, s.projectRepo, projectID, userID); err != nil {
		return nil, err
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, response.NewAppError(response.ErrCodeValidation, "Sprint end date must not precede its start date", "")
	}

	sprint := &domain.Sprint{
		ProjectID: projectID,
		Name:      req.Name,
		Goal:      req.Goal,
		Status:    domain.SprintStatusPlanned,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if err := s.sprintRepo.Create(ctx, sprint); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create sprint", err.Error())
	}

	s.logger.Info("Sprint created",
		zap.String("sprint_id", sprint.ID.String()),
		zap.String("project_id", projectID.String()))

	resp := dto.ToSprintResponse(sprint)
	return &resp, nil
}

// GetProjectSprints lists the sprints of a project
func (s *sprintServiceImpl) GetProjectSprints(ctx context.Context, userID, projectID uuid.UUID) ([]*dto.SprintResponse, error) {
	if err := requireProjectMember(ctx, s.projectRepo, projectID, userID); err != nil {
		return nil, err
	}
	sprints, err := s.sprintRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list sprints", err.Error())
	}
	out := make([]*dto.SprintResponse, 0, len(sprints))
	for _, sp := range sprints {
		resp := dto.ToSprintResponse(sp)
		out = append(out, &resp)
	}
	return out, nil
}

// StartSprint activates a planned sprint. A project can have at most one active sprint.
func (s *sprintServiceImpl) StartSprint(ctx context.Context, userID, sprintID uuid.UUID) (*dto.SprintResponse, error) {
	sprint, err := s.findSprint(ctx, sprintID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projectRepo, sprint.ProjectID, userID); err != nil {
		return nil, err
	}
	if sprint.Status != domain.SprintStatusPlanned {
		return nil, response.NewAppError(response.ErrCodeInvalidState, "Only planned sprints can be started", "")
	}

	active, err := s.sprintRepo.FindActiveByProjectID(ctx, sprint.ProjectID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check active sprint", err.Error())
	}
	if active != nil {
		return nil, response.NewAppError(response.ErrCodeInvalidState, "Project already has an active sprint", "")
	}

	sprint.Status = domain.SprintStatusActive
	if sprint.StartDate == nil {
		now := time.Now().UTC()
		sprint.StartDate = &now
	}
	if err := s.sprintRepo.Update(ctx, sprint); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to start sprint", err.Error())
	}

	resp := dto.ToSprintResponse(sprint)
	return &resp, nil
}

// CompleteSprint completes an active sprint
func (s *sprintServiceImpl) CompleteSprint(ctx context.Context, userID, sprintID uuid.UUID) (*dto.SprintResponse, error) {
	sprint, err := s.findSprint(ctx, sprintID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projectRepo, sprint.ProjectID, userID); err != nil {
		return nil, err
	}
	if sprint.Status != domain.SprintStatusActive {
		return nil, response.NewAppError(response.ErrCodeInvalidState, "Only active sprints can be completed", "")
	}

	sprint.Status = domain.SprintStatusCompleted
	now := time.Now().UTC()
	if sprint.EndDate == nil || sprint.EndDate.After(now) {
		sprint.EndDate = &now
	}
	if err := s.sprintRepo.Update(ctx, sprint); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to complete sprint", err.Error())
	}

	resp := dto.ToSprintResponse(sprint)
	return &resp, nil
}

func (s *sprintServiceImpl) findSprint(ctx context.Context, sprintID uuid.UUID) (*domain.Sprint, error) {
	sprint, err := s.sprintRepo.FindByID(ctx, sprintID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Sprint not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load sprint", err.Error())
	}
	return sprint, nil
}
