package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
)

// WorkflowRepository defines the interface for workflow rule data access
type WorkflowRepository interface {
	Create(ctx context.Context, rule *domain.WorkflowRule) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.WorkflowRule, error)
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.WorkflowRule, error)
	FindActiveByProjectAndTrigger(ctx context.Context, projectID uuid.UUID, trigger domain.WorkflowTrigger) ([]*domain.WorkflowRule, error)
	Update(ctx context.Context, rule *domain.WorkflowRule) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// workflowRepositoryImpl is the GORM implementation of WorkflowRepository
type workflowRepositoryImpl struct {
	db *gorm.DB
}

// NewWorkflowRepository creates a new instance of WorkflowRepository
func NewWorkflowRepository(db *gorm.DB) WorkflowRepository {
	return &workflowRepositoryImpl{db: db}
}

// Create creates a new workflow rule
func (r *workflowRepositoryImpl) Create(ctx context.Context, rule *domain.WorkflowRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

// FindByID finds a workflow rule by ID
func (r *workflowRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.WorkflowRule, error) {
	var rule domain.WorkflowRule
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&rule).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

// FindByProjectID finds all rules of a project, newest first
func (r *workflowRepositoryImpl) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.WorkflowRule, error) {
	var rules []*domain.WorkflowRule
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

// FindActiveByProjectAndTrigger finds the active rules for one trigger of a project
func (r *workflowRepositoryImpl) FindActiveByProjectAndTrigger(ctx context.Context, projectID uuid.UUID, trigger domain.WorkflowTrigger) ([]*domain.WorkflowRule, error) {
	var rules []*domain.WorkflowRule
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND trigger = ? AND is_active = ?", projectID, trigger, true).
		Order("created_at ASC").
		Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

// Update updates a workflow rule
func (r *workflowRepositoryImpl) Update(ctx context.Context, rule *domain.WorkflowRule) error {
	return r.db.WithContext(ctx).Save(rule).Error
}

// Delete soft deletes a workflow rule
func (r *workflowRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.WorkflowRule{}, "id = ?", id).Error
}
