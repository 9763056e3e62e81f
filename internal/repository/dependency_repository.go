package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
)

// DependencyRepository defines the interface for task dependency data access
type DependencyRepository interface {
	Create(ctx context.Context, dependency *domain.TaskDependency) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.TaskDependency, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsEdge(ctx context.Context, sourceTaskID, targetTaskID uuid.UUID, depType domain.DependencyType) (bool, error)
	FindBySourceTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskDependency, error)
	FindByTargetTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskDependency, error)
	FindAllByTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskDependency, error)
}

// dependencyRepositoryImpl is the GORM implementation of DependencyRepository
type dependencyRepositoryImpl struct {
	db *gorm.DB
}

// NewDependencyRepository creates a new instance of DependencyRepository
func NewDependencyRepository(db *gorm.DB) DependencyRepository {
	return &dependencyRepositoryImpl{db: db}
}

// Create creates a new dependency edge
func (r *dependencyRepositoryImpl) Create(ctx context.Context, dependency *domain.TaskDependency) error {
	return r.db.WithContext(ctx).Create(dependency).Error
}

// FindByID finds a dependency edge by ID
func (r *dependencyRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.TaskDependency, error) {
	var dependency domain.TaskDependency
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dependency).Error; err != nil {
		return nil, err
	}
	return &dependency, nil
}

// Delete removes a dependency edge. Unconditional, no cascade checks.
func (r *dependencyRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.TaskDependency{}, "id = ?", id).Error
}

// ExistsEdge reports whether an identical (source, target, type) edge exists
func (r *dependencyRepositoryImpl) ExistsEdge(ctx context.Context, sourceTaskID, targetTaskID uuid.UUID, depType domain.DependencyType) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.TaskDependency{}).
		Where("source_task_id = ? AND target_task_id = ? AND dependency_type = ?",
			sourceTaskID, targetTaskID, depType).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindBySourceTaskID finds all edges originating from a task
func (r *dependencyRepositoryImpl) FindBySourceTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskDependency, error) {
	var dependencies []*domain.TaskDependency
	if err := r.db.WithContext(ctx).
		Preload("TargetTask").
		Where("source_task_id = ?", taskID).
		Find(&dependencies).Error; err != nil {
		return nil, err
	}
	return dependencies, nil
}

// FindByTargetTaskID finds all edges pointing at a task
func (r *dependencyRepositoryImpl) FindByTargetTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskDependency, error) {
	var dependencies []*domain.TaskDependency
	if err := r.db.WithContext(ctx).
		Preload("SourceTask").
		Where("target_task_id = ?", taskID).
		Find(&dependencies).Error; err != nil {
		return nil, err
	}
	return dependencies, nil
}

// FindAllByTaskID finds every edge touching a task in either direction
func (r *dependencyRepositoryImpl) FindAllByTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskDependency, error) {
	var dependencies []*domain.TaskDependency
	if err := r.db.WithContext(ctx).
		Preload("SourceTask").
		Preload("TargetTask").
		Where("source_task_id = ? OR target_task_id = ?", taskID, taskID).
		Find(&dependencies).Error; err != nil {
		return nil, err
	}
	return dependencies, nil
}
