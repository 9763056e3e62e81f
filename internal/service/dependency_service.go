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

// DependencyService defines the interface for the directed task dependency graph
type DependencyService interface {
	AddDependency(ctx context.Context, userID, sourceTaskID uuid.UUID, req *dto.AddDependencyRequest) (*dto.DependencyResponse, error)
	RemoveDependency(ctx context.Context, userID, dependencyID uuid.UUID) error
	GetTaskDependencies(ctx context.Context, taskID uuid.UUID) ([]*dto.DependencyResponse, error)
	GetBlockingDependencies(ctx context.Context, taskID uuid.UUID) ([]*dto.DependencyResponse, error)
	GetBlockedByDependencies(ctx context.Context, taskID uuid.UUID) ([]*dto.DependencyResponse, error)
	HasUnresolvedBlockers(ctx context.Context, taskID uuid.UUID) (bool, error)
}

// dependencyServiceImpl is the implementation of DependencyService
type dependencyServiceImpl struct {
	dependencyRepo repository.DependencyRepository
	taskRepo       repository.TaskRepository
	projectRepo    repository.ProjectRepository
	logger         *zap.Logger
}

// NewDependencyService creates a new instance of DependencyService
func NewDependencyService(
	dependencyRepo repository.DependencyRepository,
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	logger *zap.Logger,
) DependencyService {
	return &dependencyServiceImpl{
		dependencyRepo: dependencyRepo,
		taskRepo:       taskRepo,
		projectRepo:    projectRepo,
		logger:         logger,
	}
}

// AddDependency validates and creates a directed edge between two tasks.
//
// The circularity check is local: only the exact reverse BLOCKS edge is
// rejected. Longer cycles (A blocks B, B blocks C, C blocks A) pass
// undetected; a full reachability check is a known open item.
func (s *dependencyServiceImpl) AddDependency(ctx context.Context, userID, sourceTaskID uuid.UUID, req *dto.AddDependencyRequest) (*dto.DependencyResponse, error) {
	sourceTask, err := s.findTask(ctx, sourceTaskID)
	if err != nil {
		return nil, err
	}
	targetTask, err := s.findTask(ctx, req.TargetTaskID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projectRepo, sourceTask.ProjectID, userID); err != nil {
		return nil, err
	}

	if err := s.validateDependency(ctx, sourceTask, targetTask, req.DependencyType); err != nil {
		return nil, err
	}

	dependency := &domain.TaskDependency{
		SourceTaskID:   sourceTask.ID,
		TargetTaskID:   targetTask.ID,
		DependencyType: req.DependencyType,
		CreatedBy:      userID,
		CreatedAt:      time.Now().UTC(),
		SourceTask:     sourceTask,
		TargetTask:     targetTask,
	}
	if err := s.dependencyRepo.Create(ctx, dependency); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create dependency", err.Error())
	}

	s.logger.Info("Dependency created",
		zap.String("source_task", sourceTask.TaskKey),
		zap.String("type", string(req.DependencyType)),
		zap.String("target_task", targetTask.TaskKey),
	)
	return dto.ToDependencyResponse(dependency), nil
}

// RemoveDependency deletes an edge unconditionally
func (s *dependencyServiceImpl) RemoveDependency(ctx context.Context, userID, dependencyID uuid.UUID) error {
	dependency, err := s.dependencyRepo.FindByID(ctx, dependencyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Dependency not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load dependency", err.Error())
	}

	sourceTask, err := s.findTask(ctx, dependency.SourceTaskID)
	if err != nil {
		return err
	}
	if err := requireProjectMember(ctx, s.projectRepo, sourceTask.ProjectID, userID); err != nil {
		return err
	}

	if err := s.dependencyRepo.Delete(ctx, dependencyID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete dependency", err.Error())
	}
	s.logger.Info("Dependency removed", zap.String("dependency_id", dependencyID.String()))
	return nil
}

// GetTaskDependencies returns every edge touching the task in either direction
func (s *dependencyServiceImpl) GetTaskDependencies(ctx context.Context, taskID uuid.UUID) ([]*dto.DependencyResponse, error) {
	deps, err := s.dependencyRepo.FindAllByTaskID(ctx, taskID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list dependencies", err.Error())
	}
	return dto.ToDependencyResponseList(deps), nil
}

// GetBlockingDependencies returns the BLOCKS edges originating from the task
func (s *dependencyServiceImpl) GetBlockingDependencies(ctx context.Context, taskID uuid.UUID) ([]*dto.DependencyResponse, error) {
	deps, err := s.dependencyRepo.FindBySourceTaskID(ctx, taskID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list dependencies", err.Error())
	}
	return dto.ToDependencyResponseList(filterBlocks(deps)), nil
}

// GetBlockedByDependencies returns the BLOCKS edges pointing at the task
func (s *dependencyServiceImpl) GetBlockedByDependencies(ctx context.Context, taskID uuid.UUID) ([]*dto.DependencyResponse, error) {
	deps, err := s.dependencyRepo.FindByTargetTaskID(ctx, taskID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list dependencies", err.Error())
	}
	return dto.ToDependencyResponseList(filterBlocks(deps)), nil
}

// HasUnresolvedBlockers reports whether any incoming BLOCKS edge has a source
// task that has not reached a terminal status. Read-only: callers decide
// whether to act on it; the engine does not enforce it on moves.
func (s *dependencyServiceImpl) HasUnresolvedBlockers(ctx context.Context, taskID uuid.UUID) (bool, error) {
	incoming, err := s.dependencyRepo.FindByTargetTaskID(ctx, taskID)
	if err != nil {
		return false, response.NewAppError(response.ErrCodeInternal, "Failed to list dependencies", err.Error())
	}
	for _, dep := range incoming {
		if dep.DependencyType != domain.DependencyBlocks || dep.SourceTask == nil {
			continue
		}
		if !dep.SourceTask.Status.Terminal() {
			return true, nil
		}
	}
	return false, nil
}

func (s *dependencyServiceImpl) validateDependency(ctx context.Context, sourceTask, targetTask *domain.Task, depType domain.DependencyType) error {
	if sourceTask.ID == targetTask.ID {
		return response.NewAppError(response.ErrCodeInvalidDependency, "A task cannot depend on itself", "")
	}
	if sourceTask.ProjectID != targetTask.ProjectID {
		return response.NewAppError(response.ErrCodeInvalidDependency,
			"Dependencies can only be created between tasks in the same project", "")
	}

	exists, err := s.dependencyRepo.ExistsEdge(ctx, sourceTask.ID, targetTask.ID, depType)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to check existing dependencies", err.Error())
	}
	if exists {
		return response.NewAppError(response.ErrCodeInvalidDependency, "This dependency already exists", "")
	}

	if depType == domain.DependencyBlocks {
		reverseExists, err := s.dependencyRepo.ExistsEdge(ctx, targetTask.ID, sourceTask.ID, domain.DependencyBlocks)
		if err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to check reverse dependency", err.Error())
		}
		if reverseExists {
			return response.NewAppError(response.ErrCodeInvalidDependency, "Circular dependency detected", "")
		}
	}
	return nil
}

func (s *dependencyServiceImpl) findTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Task not found", taskID.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load task", err.Error())
	}
	return task, nil
}

func filterBlocks(deps []*domain.TaskDependency) []*domain.TaskDependency {
	out := make([]*domain.TaskDependency, 0, len(deps))
	for _, d := range deps {
		if d.DependencyType == domain.DependencyBlocks {
			out = append(out, d)
		}
	}
	return out
}
