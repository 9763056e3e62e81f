package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindByColumnID(ctx context.Context, columnID uuid.UUID) ([]*domain.Task, error)
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	MaxTaskNumber(ctx context.Context, projectID uuid.UUID) (int, error)
	SaveMove(ctx context.Context, task *domain.Task, reordered []*domain.Task) error
	AddAssignee(ctx context.Context, assignment *domain.TaskAssignment) error
	RemoveAssignee(ctx context.Context, taskID, userID uuid.UUID) error
	AddLabel(ctx context.Context, task *domain.Task, label *domain.Label) error
	RemoveLabel(ctx context.Context, task *domain.Task, label *domain.Label) error
}

// taskRepositoryImpl is the GORM implementation of TaskRepository
type taskRepositoryImpl struct {
	db *gorm.DB
}

// NewTaskRepository creates a new instance of TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepositoryImpl{db: db}
}

// Create creates a new task
func (r *taskRepositoryImpl) Create(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindByID finds a task by ID with its assignees and labels
func (r *taskRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.WithContext(ctx).
		Preload("Assignees").
		Preload("Labels").
		Where("id = ?", id).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByColumnID finds all tasks in a column ordered by position
func (r *taskRepositoryImpl) FindByColumnID(ctx context.Context, columnID uuid.UUID) ([]*domain.Task, error) {
	var tasks []*domain.Task
	if err := r.db.WithContext(ctx).
		Where("column_id = ?", columnID).
		Order("position ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByProjectID finds all tasks of a project ordered by creation time
func (r *taskRepositoryImpl) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error) {
	var tasks []*domain.Task
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update updates a task
func (r *taskRepositoryImpl) Update(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

// Delete soft deletes a task
func (r *taskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Task{}, "id = ?", id).Error
}

// MaxTaskNumber counts the tasks ever created in the project, soft-deleted
// rows included, so task keys are never reissued after a delete
func (r *taskRepositoryImpl) MaxTaskNumber(ctx context.Context, projectID uuid.UUID) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Unscoped().
		Model(&domain.Task{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// SaveMove persists a moved task together with the renumbered positions of its
// target column siblings inside a single transaction. Either the whole
// structural change lands or none of it does.
func (r *taskRepositoryImpl) SaveMove(ctx context.Context, task *domain.Task, reordered []*domain.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(task).Error; err != nil {
			return err
		}
		for _, sibling := range reordered {
			if err := tx.Model(&domain.Task{}).
				Where("id = ?", sibling.ID).
				Update("position", sibling.Position).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// AddAssignee creates a task assignment, ignoring duplicates
func (r *taskRepositoryImpl) AddAssignee(ctx context.Context, assignment *domain.TaskAssignment) error {
	return r.db.WithContext(ctx).
		Where("task_id = ? AND user_id = ?", assignment.TaskID, assignment.UserID).
		FirstOrCreate(assignment).Error
}

// RemoveAssignee removes a task assignment
func (r *taskRepositoryImpl) RemoveAssignee(ctx context.Context, taskID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("task_id = ? AND user_id = ?", taskID, userID).
		Delete(&domain.TaskAssignment{}).Error
}

// AddLabel attaches a label to a task
func (r *taskRepositoryImpl) AddLabel(ctx context.Context, task *domain.Task, label *domain.Label) error {
	return r.db.WithContext(ctx).Model(task).Association("Labels").Append(label)
}

// RemoveLabel detaches a label from a task
func (r *taskRepositoryImpl) RemoveLabel(ctx context.Context, task *domain.Task, label *domain.Label) error {
	return r.db.WithContext(ctx).Model(task).Association("Labels").Delete(label)
}
