package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
)

// ColumnRepository defines the interface for board column data access
type ColumnRepository interface {
	Create(ctx context.Context, column *domain.BoardColumn) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.BoardColumn, error)
	FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardColumn, error)
	Update(ctx context.Context, column *domain.BoardColumn) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountTasks(ctx context.Context, columnID uuid.UUID) (int64, error)
	CountTasksExcluding(ctx context.Context, columnID, taskID uuid.UUID) (int64, error)
}

// columnRepositoryImpl is the GORM implementation of ColumnRepository
type columnRepositoryImpl struct {
	db *gorm.DB
}

// NewColumnRepository creates a new instance of ColumnRepository
func NewColumnRepository(db *gorm.DB) ColumnRepository {
	return &columnRepositoryImpl{db: db}
}

// Create creates a new column
func (r *columnRepositoryImpl) Create(ctx context.Context, column *domain.BoardColumn) error {
	return r.db.WithContext(ctx).Create(column).Error
}

// FindByID finds a column by ID
func (r *columnRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.BoardColumn, error) {
	var column domain.BoardColumn
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&column).Error; err != nil {
		return nil, err
	}
	return &column, nil
}

// FindByBoardID finds all columns of a board ordered by position
func (r *columnRepositoryImpl) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardColumn, error) {
	var columns []*domain.BoardColumn
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("position ASC").
		Find(&columns).Error; err != nil {
		return nil, err
	}
	return columns, nil
}

// Update updates a column
func (r *columnRepositoryImpl) Update(ctx context.Context, column *domain.BoardColumn) error {
	return r.db.WithContext(ctx).Save(column).Error
}

// Delete soft deletes a column
func (r *columnRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.BoardColumn{}, "id = ?", id).Error
}

// CountTasks returns the number of tasks currently placed in the column
func (r *columnRepositoryImpl) CountTasks(ctx context.Context, columnID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Where("column_id = ?", columnID).
		Count(&count).Error
	return count, err
}

// CountTasksExcluding counts tasks in the column, excluding the given task.
// Used by the WIP check so a task repositioned within its own column
// never counts against the limit.
func (r *columnRepositoryImpl) CountTasksExcluding(ctx context.Context, columnID, taskID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Where("column_id = ? AND id <> ?", columnID, taskID).
		Count(&count).Error
	return count, err
}
