package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
)

// ActivityRepository defines the interface for activity log data access
type ActivityRepository interface {
	Create(ctx context.Context, entry *domain.ActivityLog) error
	FindByProjectID(ctx context.Context, projectID uuid.UUID, limit int) ([]*domain.ActivityLog, error)
}

// activityRepositoryImpl is the GORM implementation of ActivityRepository
type activityRepositoryImpl struct {
	db *gorm.DB
}

// NewActivityRepository creates a new instance of ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepositoryImpl{db: db}
}

// Create creates a new activity log entry
func (r *activityRepositoryImpl) Create(ctx context.Context, entry *domain.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindByProjectID finds recent activity for a project, newest first
func (r *activityRepositoryImpl) FindByProjectID(ctx context.Context, projectID uuid.UUID, limit int) ([]*domain.ActivityLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []*domain.ActivityLog
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
