package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
)

// SprintRepository defines the interface for sprint data access
type SprintRepository interface {
	Create(ctx context.Context, sprint *domain.Sprint) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Sprint, error)
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Sprint, error)
	FindActiveByProjectID(ctx context.Context, projectID uuid.UUID) (*domain.Sprint, error)
	Update(ctx context.Context, sprint *domain.Sprint) error
}

// sprintRepositoryImpl is the GORM implementation of SprintRepository
type sprintRepositoryImpl struct {
	db *gorm.DB
}

// NewSprintRepository creates a new instance of SprintRepository
func NewSprintRepository(db *gorm.DB) SprintRepository {
	return &sprintRepositoryImpl{db: db}
}

// Create creates a new sprint
func (r *sprintRepositoryImpl) Create(ctx context.Context, sprint *domain.Sprint) error {
	return r.db.WithContext(ctx).Create(sprint).Error
}

// FindByID finds a sprint by ID
func (r *sprintRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Sprint, error) {
	var sprint domain.Sprint
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sprint).Error; err != nil {
		return nil, err
	}
	return &sprint, nil
}

// FindByProjectID finds all sprints of a project, newest first
func (r *sprintRepositoryImpl) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Sprint, error) {
	var sprints []*domain.Sprint
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&sprints).Error; err != nil {
		return nil, err
	}
	return sprints, nil
}

// FindActiveByProjectID finds the active sprint of a project, if any
func (r *sprintRepositoryImpl) FindActiveByProjectID(ctx context.Context, projectID uuid.UUID) (*domain.Sprint, error) {
	var sprint domain.Sprint
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND status = ?", projectID, domain.SprintStatusActive).
		First(&sprint).Error; err != nil {
		return nil, err
	}
	return &sprint, nil
}

// Update saves the sprint
func (r *sprintRepositoryImpl) Update(ctx context.Context, sprint *domain.Sprint) error {
	return r.db.WithContext(ctx).Save(sprint).Error
}
