package service

import (
	"context"

	"github.com/google/uuid"

	"task-board-api/internal/domain"
)

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	CreateFunc          func(ctx context.Context, task *domain.Task) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindByColumnIDFunc  func(ctx context.Context, columnID uuid.UUID) ([]*domain.Task, error)
	FindByProjectIDFunc func(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)
	UpdateFunc          func(ctx context.Context, task *domain.Task) error
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
	MaxTaskNumberFunc   func(ctx context.Context, projectID uuid.UUID) (int, error)
	SaveMoveFunc        func(ctx context.Context, task *domain.Task, reordered []*domain.Task) error
	AddAssigneeFunc     func(ctx context.Context, assignment *domain.TaskAssignment) error
	RemoveAssigneeFunc  func(ctx context.Context, taskID, userID uuid.UUID) error
	AddLabelFunc        func(ctx context.Context, task *domain.Task, label *domain.Label) error
	RemoveLabelFunc     func(ctx context.Context, task *domain.Task, label *domain.Label) error
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskRepository) FindByColumnID(ctx context.Context, columnID uuid.UUID) ([]*domain.Task, error) {
	if m.FindByColumnIDFunc != nil {
		return m.FindByColumnIDFunc(ctx, columnID)
	}
	return nil, nil
}

func (m *MockTaskRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTaskRepository) MaxTaskNumber(ctx context.Context, projectID uuid.UUID) (int, error) {
	if m.MaxTaskNumberFunc != nil {
		return m.MaxTaskNumberFunc(ctx, projectID)
	}
	return 0, nil
}

func (m *MockTaskRepository) SaveMove(ctx context.Context, task *domain.Task, reordered []*domain.Task) error {
	if m.SaveMoveFunc != nil {
		return m.SaveMoveFunc(ctx, task, reordered)
	}
	return nil
}

func (m *MockTaskRepository) AddAssignee(ctx context.Context, assignment *domain.TaskAssignment) error {
	if m.AddAssigneeFunc != nil {
		return m.AddAssigneeFunc(ctx, assignment)
	}
	return nil
}

func (m *MockTaskRepository) RemoveAssignee(ctx context.Context, taskID, userID uuid.UUID) error {
	if m.RemoveAssigneeFunc != nil {
		return m.RemoveAssigneeFunc(ctx, taskID, userID)
	}
	return nil
}

func (m *MockTaskRepository) AddLabel(ctx context.Context, task *domain.Task, label *domain.Label) error {
	if m.AddLabelFunc != nil {
		return m.AddLabelFunc(ctx, task, label)
	}
	return nil
}

func (m *MockTaskRepository) RemoveLabel(ctx context.Context, task *domain.Task, label *domain.Label) error {
	if m.RemoveLabelFunc != nil {
		return m.RemoveLabelFunc(ctx, task, label)
	}
	return nil
}

// MockColumnRepository is a mock implementation of ColumnRepository
type MockColumnRepository struct {
	CreateFunc              func(ctx context.Context, column *domain.BoardColumn) error
	FindByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.BoardColumn, error)
	FindByBoardIDFunc       func(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardColumn, error)
	UpdateFunc              func(ctx context.Context, column *domain.BoardColumn) error
	DeleteFunc              func(ctx context.Context, id uuid.UUID) error
	CountTasksFunc          func(ctx context.Context, columnID uuid.UUID) (int64, error)
	CountTasksExcludingFunc func(ctx context.Context, columnID, taskID uuid.UUID) (int64, error)
}

func (m *MockColumnRepository) Create(ctx context.Context, column *domain.BoardColumn) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, column)
	}
	return nil
}

func (m *MockColumnRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.BoardColumn, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockColumnRepository) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardColumn, error) {
	if m.FindByBoardIDFunc != nil {
		return m.FindByBoardIDFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockColumnRepository) Update(ctx context.Context, column *domain.BoardColumn) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, column)
	}
	return nil
}

func (m *MockColumnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockColumnRepository) CountTasks(ctx context.Context, columnID uuid.UUID) (int64, error) {
	if m.CountTasksFunc != nil {
		return m.CountTasksFunc(ctx, columnID)
	}
	return 0, nil
}

func (m *MockColumnRepository) CountTasksExcluding(ctx context.Context, columnID, taskID uuid.UUID) (int64, error) {
	if m.CountTasksExcludingFunc != nil {
		return m.CountTasksExcludingFunc(ctx, columnID, taskID)
	}
	return 0, nil
}

// MockBoardRepository is a mock implementation of BoardRepository
type MockBoardRepository struct {
	CreateFunc              func(ctx context.Context, board *domain.Board) error
	FindByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByIDWithColumnsFunc func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByProjectIDFunc     func(ctx context.Context, projectID uuid.UUID) ([]*domain.Board, error)
	UpdateFunc              func(ctx context.Context, board *domain.Board) error
	DeleteFunc              func(ctx context.Context, id uuid.UUID) error
	CountFunc               func(ctx context.Context) (int64, error)
}

func (m *MockBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindByIDWithColumns(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.FindByIDWithColumnsFunc != nil {
		return m.FindByIDWithColumnsFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Board, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockBoardRepository) Update(ctx context.Context, board *domain.Board) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockBoardRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	CreateFunc                 func(ctx context.Context, project *domain.Project) error
	FindByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	FindByUserIDFunc           func(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error)
	AddMemberFunc              func(ctx context.Context, member *domain.ProjectMember) error
	IsProjectMemberFunc        func(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
	FindMembersByProjectIDFunc func(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error)
	CountFunc                  func(ctx context.Context) (int64, error)
}

func (m *MockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockProjectRepository) AddMember(ctx context.Context, member *domain.ProjectMember) error {
	if m.AddMemberFunc != nil {
		return m.AddMemberFunc(ctx, member)
	}
	return nil
}

func (m *MockProjectRepository) IsProjectMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	if m.IsProjectMemberFunc != nil {
		return m.IsProjectMemberFunc(ctx, projectID, userID)
	}
	return true, nil
}

func (m *MockProjectRepository) FindMembersByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error) {
	if m.FindMembersByProjectIDFunc != nil {
		return m.FindMembersByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockProjectRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockLabelRepository is a mock implementation of LabelRepository
type MockLabelRepository struct {
	CreateFunc          func(ctx context.Context, label *domain.Label) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Label, error)
	FindByProjectIDFunc func(ctx context.Context, projectID uuid.UUID) ([]*domain.Label, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
}

func (m *MockLabelRepository) Create(ctx context.Context, label *domain.Label) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, label)
	}
	return nil
}

func (m *MockLabelRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Label, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockLabelRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Label, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockLabelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockDependencyRepository is a mock implementation of DependencyRepository
type MockDependencyRepository struct {
	CreateFunc             func(ctx context.Context, dependency *domain.TaskDependency) error
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.TaskDependency, error)
	DeleteFunc             func(ctx context.Context, id uuid.UUID) error
	ExistsEdgeFunc         func(ctx context.Context, sourceTaskID, targetTaskID uuid.UUID, depType domain.DependencyType) (bool, error)
	FindBySourceTaskIDFunc func(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskDependency, error)
	FindByTargetTaskIDFunc func(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskDependency, error)
	FindAllByTaskIDFunc    func(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskDependency, error)
}

func (m *MockDependencyRepository) Create(ctx context.Context, dependency *domain.TaskDependency) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, dependency)
	}
	return nil
}

func (m *MockDependencyRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.TaskDependency, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockDependencyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockDependencyRepository) ExistsEdge(ctx context.Context, sourceTaskID, targetTaskID uuid.UUID, depType domain.DependencyType) (bool, error) {
	if m.ExistsEdgeFunc != nil {
		return m.ExistsEdgeFunc(ctx, sourceTaskID, targetTaskID, depType)
	}
	return false, nil
}

func (m *MockDependencyRepository) FindBySourceTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskDependency, error) {
	if m.FindBySourceTaskIDFunc != nil {
		return m.FindBySourceTaskIDFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *MockDependencyRepository) FindByTargetTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskDependency, error) {
	if m.FindByTargetTaskIDFunc != nil {
		return m.FindByTargetTaskIDFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *MockDependencyRepository) FindAllByTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskDependency, error) {
	if m.FindAllByTaskIDFunc != nil {
		return m.FindAllByTaskIDFunc(ctx, taskID)
	}
	return nil, nil
}

// MockWorkflowRepository is a mock implementation of WorkflowRepository
type MockWorkflowRepository struct {
	CreateFunc                        func(ctx context.Context, rule *domain.WorkflowRule) error
	FindByIDFunc                      func(ctx context.Context, id uuid.UUID) (*domain.WorkflowRule, error)
	FindByProjectIDFunc               func(ctx context.Context, projectID uuid.UUID) ([]*domain.WorkflowRule, error)
	FindActiveByProjectAndTriggerFunc func(ctx context.Context, projectID uuid.UUID, trigger domain.WorkflowTrigger) ([]*domain.WorkflowRule, error)
	UpdateFunc                        func(ctx context.Context, rule *domain.WorkflowRule) error
	DeleteFunc                        func(ctx context.Context, id uuid.UUID) error
}

func (m *MockWorkflowRepository) Create(ctx context.Context, rule *domain.WorkflowRule) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, rule)
	}
	return nil
}

func (m *MockWorkflowRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.WorkflowRule, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockWorkflowRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.WorkflowRule, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockWorkflowRepository) FindActiveByProjectAndTrigger(ctx context.Context, projectID uuid.UUID, trigger domain.WorkflowTrigger) ([]*domain.WorkflowRule, error) {
	if m.FindActiveByProjectAndTriggerFunc != nil {
		return m.FindActiveByProjectAndTriggerFunc(ctx, projectID, trigger)
	}
	return nil, nil
}

func (m *MockWorkflowRepository) Update(ctx context.Context, rule *domain.WorkflowRule) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, rule)
	}
	return nil
}

func (m *MockWorkflowRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockActivityRepository is a mock implementation of ActivityRepository
type MockActivityRepository struct {
	CreateFunc          func(ctx context.Context, entry *domain.ActivityLog) error
	FindByProjectIDFunc func(ctx context.Context, projectID uuid.UUID, limit int) ([]*domain.ActivityLog, error)
}

func (m *MockActivityRepository) Create(ctx context.Context, entry *domain.ActivityLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	return nil
}

func (m *MockActivityRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID, limit int) ([]*domain.ActivityLog, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID, limit)
	}
	return nil, nil
}

// MockSprintRepository is a mock implementation of SprintRepository
type MockSprintRepository struct {
	CreateFunc                func(ctx context.Context, sprint *domain.Sprint) error
	FindByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.Sprint, error)
	FindByProjectIDFunc       func(ctx context.Context, projectID uuid.UUID) ([]*domain.Sprint, error)
	FindActiveByProjectIDFunc func(ctx context.Context, projectID uuid.UUID) (*domain.Sprint, error)
	UpdateFunc                func(ctx context.Context, sprint *domain.Sprint) error
}

func (m *MockSprintRepository) Create(ctx context.Context, sprint *domain.Sprint) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sprint)
	}
	return nil
}

func (m *MockSprintRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Sprint, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSprintRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Sprint, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockSprintRepository) FindActiveByProjectID(ctx context.Context, projectID uuid.UUID) (*domain.Sprint, error) {
	if m.FindActiveByProjectIDFunc != nil {
		return m.FindActiveByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockSprintRepository) Update(ctx context.Context, sprint *domain.Sprint) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sprint)
	}
	return nil
}

// MockNotifier is a mock implementation of Notifier
type MockNotifier struct {
	SendTaskUpdatedFunc  func(ctx context.Context, task *domain.Task, recipientID uuid.UUID, description string) error
	SendTaskAssignedFunc func(ctx context.Context, task *domain.Task, recipientID, actorID uuid.UUID) error
}

func (m *MockNotifier) SendTaskUpdated(ctx context.Context, task *domain.Task, recipientID uuid.UUID, description string) error {
	if m.SendTaskUpdatedFunc != nil {
		return m.SendTaskUpdatedFunc(ctx, task, recipientID, description)
	}
	return nil
}

func (m *MockNotifier) SendTaskAssigned(ctx context.Context, task *domain.Task, recipientID, actorID uuid.UUID) error {
	if m.SendTaskAssignedFunc != nil {
		return m.SendTaskAssignedFunc(ctx, task, recipientID, actorID)
	}
	return nil
}

// MockEventQueue is a mock implementation of EventQueue
type MockEventQueue struct {
	EnqueueFunc func(taskID uuid.UUID, trigger domain.WorkflowTrigger, value string) bool
}

func (m *MockEventQueue) Enqueue(taskID uuid.UUID, trigger domain.WorkflowTrigger, value string) bool {
	if m.EnqueueFunc != nil {
		return m.EnqueueFunc(taskID, trigger, value)
	}
	return true
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc               func(ctx context.Context, comment *domain.Comment) error
	FindByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindTopLevelByTaskIDFunc func(ctx context.Context, taskID uuid.UUID) ([]*domain.Comment, error)
	UpdateFunc               func(ctx context.Context, comment *domain.Comment) error
	DeleteFunc               func(ctx context.Context, id uuid.UUID) error
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindTopLevelByTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.Comment, error) {
	if m.FindTopLevelByTaskIDFunc != nil {
		return m.FindTopLevelByTaskIDFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
