package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
)

// LabelRepository defines the interface for label data access
type LabelRepository interface {
	Create(ctx context.Context, label *domain.Label) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Label, error)
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Label, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// labelRepositoryImpl is the GORM implementation of LabelRepository
type labelRepositoryImpl struct {
	db *gorm.DB
}

// NewLabelRepository creates a new instance of LabelRepository
func NewLabelRepository(db *gorm.DB) LabelRepository {
	return &labelRepositoryImpl{db: db}
}

// Create creates a new label
func (r *labelRepositoryImpl) Create(ctx context.Context, label *domain.Label) error {
	return r.db.WithContext(ctx).Create(label).Error
}

// FindByID finds a label by ID
func (r *labelRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Label, error) {
	var label domain.Label
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&label).Error; err != nil {
		return nil, err
	}
	return &label, nil
}

// FindByProjectID finds all labels of a project
func (r *labelRepositoryImpl) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Label, error) {
	var labels []*domain.Label
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("name ASC").
		Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

// Delete soft deletes a label
func (r *labelRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Label{}, "id = ?", id).Error
}
