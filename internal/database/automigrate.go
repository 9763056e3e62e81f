package database

import (
	"fmt"

	"gorm.io/gorm"

	"task-board-api/internal/domain"
)

// AutoMigrate runs GORM auto-migration for all domain models.
// Table creation order follows the ownership chain so foreign keys resolve.
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.Project{},
		&domain.ProjectMember{},
		&domain.Board{},
		&domain.BoardColumn{},
		&domain.Sprint{},
		&domain.Label{},
		&domain.Task{},
		&domain.TaskAssignment{},
		&domain.TaskDependency{},
		&domain.Comment{},
		&domain.WorkflowRule{},
		&domain.ActivityLog{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}
	return nil
}
