package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
	"task-board-api/internal/dto"
	"task-board-api/internal/metrics"
	"task-board-api/internal/repository"
	"task-board-api/internal/response"
)

// TaskService defines the interface for task lifecycle and movement
type TaskService interface {
	CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GetTask(ctx context.Context, userID, taskID uuid.UUID) (*dto.TaskResponse, error)
	GetColumnTasks(ctx context.Context, userID, columnID uuid.UUID) ([]*dto.TaskResponse, error)
	GetProjectTasks(ctx context.Context, userID, projectID uuid.UUID) ([]*dto.TaskResponse, error)
	UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	MoveTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.MoveTaskRequest) (*dto.TaskResponse, error)
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
	AssignUser(ctx context.Context, userID, taskID, assigneeID uuid.UUID) (*dto.TaskResponse, error)
	UnassignUser(ctx context.Context, userID, taskID, assigneeID uuid.UUID) (*dto.TaskResponse, error)
	AddLabelToTask(ctx context.Context, userID, taskID, labelID uuid.UUID) (*dto.TaskResponse, error)
	RemoveLabelFromTask(ctx context.Context, userID, taskID, labelID uuid.UUID) (*dto.TaskResponse, error)
}

// taskServiceImpl is the implementation of TaskService
type taskServiceImpl struct {
	taskRepo    repository.TaskRepository
	columnRepo  repository.ColumnRepository
	boardRepo   repository.BoardRepository
	projectRepo repository.ProjectRepository
	labelRepo   repository.LabelRepository
	activity    repository.ActivityRepository
	notifier    Notifier
	events      EventQueue
	publisher   BoardEventPublisher
	metrics     *metrics.Metrics
	logger      *zap.Logger

	// columnLocks serializes moves per target column so concurrent moves
	// cannot both pass the WIP check before either one is persisted.
	columnLocks sync.Map
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	columnRepo repository.ColumnRepository,
	boardRepo repository.BoardRepository,
	projectRepo repository.ProjectRepository,
	labelRepo repository.LabelRepository,
	activity repository.ActivityRepository,
	notifier Notifier,
	events EventQueue,
	publisher BoardEventPublisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) TaskService {
	return &taskServiceImpl{
		taskRepo:    taskRepo,
		columnRepo:  columnRepo,
		boardRepo:   boardRepo,
		projectRepo: projectRepo,
		labelRepo:   labelRepo,
		activity:    activity,
		notifier:    notifier,
		events:      events,
		publisher:   publisher,
		metrics:     m,
		logger:      logger,
	}
}

// CreateTask creates a task at the end of its column with a project-unique key
func (s *taskServiceImpl) CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if err := requireProjectMember(ctx, s.projectRepo, req.ProjectID, userID); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindByID(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load project", err.Error())
	}

	position := 0
	if req.ColumnID != nil {
		column, err := s.findProjectColumn(ctx, *req.ColumnID, req.ProjectID)
		if err != nil {
			return nil, err
		}
		count, err := s.columnRepo.CountTasks(ctx, column.ID)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count column tasks", err.Error())
		}
		position = int(count)
	}

	number, err := s.taskRepo.MaxTaskNumber(ctx, req.ProjectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to allocate task number", err.Error())
	}

	priority := req.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}

	task := &domain.Task{
		ProjectID:    req.ProjectID,
		ColumnID:     req.ColumnID,
		ParentTaskID: req.ParentTask,
		SprintID:     req.SprintID,
		ReporterID:   userID,
		TaskKey:      fmt.Sprintf("%s-%d", strings.ToUpper(project.Prefix), number+1),
		Title:        req.Title,
		Description:  req.Description,
		Status:       domain.TaskStatusOpen,
		Priority:     priority,
		Position:     position,
		DueDate:      req.DueDate,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create task", err.Error())
	}

	for _, assigneeID := range req.AssigneeIDs {
		assignment := &domain.TaskAssignment{TaskID: task.ID, UserID: assigneeID}
		if err := s.taskRepo.AddAssignee(ctx, assignment); err != nil {
			s.logger.Warn("Failed to add initial assignee",
				zap.String("task", task.TaskKey),
				zap.String("user_id", assigneeID.String()),
				zap.Error(err),
			)
		}
	}
	for _, labelID := range req.LabelIDs {
		label, err := s.labelRepo.FindByID(ctx, labelID)
		if err != nil || label.ProjectID != req.ProjectID {
			continue
		}
		if err := s.taskRepo.AddLabel(ctx, task, label); err != nil {
			s.logger.Warn("Failed to add initial label",
				zap.String("task", task.TaskKey),
				zap.String("label_id", labelID.String()),
				zap.Error(err),
			)
		}
	}

	s.metrics.IncrementTaskCreated()
	s.logger.Info("Task created",
		zap.String("task", task.TaskKey),
		zap.String("project_id", req.ProjectID.String()),
	)

	recordActivity(ctx, s.activity, s.logger, req.ProjectID, userID,
		"TASK_CREATED", "TASK", task.ID, fmt.Sprintf("Created task %s", task.TaskKey), nil)

	created, err := s.taskRepo.FindByID(ctx, task.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load created task", err.Error())
	}

	s.enqueueEvent(created.ID, domain.TriggerTaskCreated, "")
	s.publisher.Publish(BoardEvent{Type: EventTaskCreated, ProjectID: created.ProjectID, Payload: dto.ToTaskResponse(created)})

	resp := dto.ToTaskResponse(created)
	return &resp, nil
}

// GetTask returns a task with its assignees and labels
func (s *taskServiceImpl) GetTask(ctx context.Context, userID, taskID uuid.UUID) (*dto.TaskResponse, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projectRepo, task.ProjectID, userID); err != nil {
		return nil, err
	}
	resp := dto.ToTaskResponse(task)
	return &resp, nil
}

// GetColumnTasks returns the tasks of a column ordered by position
func (s *taskServiceImpl) GetColumnTasks(ctx context.Context, userID, columnID uuid.UUID) ([]*dto.TaskResponse, error) {
	column, err := s.columnRepo.FindByID(ctx, columnID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Column not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load column", err.Error())
	}
	board, err := s.boardRepo.FindByID(ctx, column.BoardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}
	if err := requireProjectMember(ctx, s.projectRepo, board.ProjectID, userID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindByColumnID(ctx, columnID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list column tasks", err.Error())
	}
	return toTaskResponses(tasks), nil
}

// GetProjectTasks returns all tasks of a project, newest first
func (s *taskServiceImpl) GetProjectTasks(ctx context.Context, userID, projectID uuid.UUID) ([]*dto.TaskResponse, error) {
	if err := requireProjectMember(ctx, s.projectRepo, projectID, userID); err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list project tasks", err.Error())
	}
	return toTaskResponses(tasks), nil
}

// UpdateTask updates the task's attributes. Position and column are not
// touched here; moves go through MoveTask.
func (s *taskServiceImpl) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projectRepo, task.ProjectID, userID); err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	priorityChanged := false
	statusChanged := false
	dueDateSet := false

	if req.Title != nil && *req.Title != task.Title {
		changes["title"] = map[string]string{"old": task.Title, "new": *req.Title}
		task.Title = *req.Title
	}
	if req.Description != nil && *req.Description != task.Description {
		task.Description = *req.Description
	}
	if req.Priority != nil && *req.Priority != task.Priority {
		changes["priority"] = map[string]string{"old": string(task.Priority), "new": string(*req.Priority)}
		task.Priority = *req.Priority
		priorityChanged = true
	}
	if req.Status != nil && *req.Status != task.Status {
		changes["status"] = map[string]string{"old": string(task.Status), "new": string(*req.Status)}
		task.Status = *req.Status
		statusChanged = true
		now := time.Now()
		if task.Status == domain.TaskStatusInProgress && task.StartedAt == nil {
			task.StartedAt = &now
		}
		if task.Status == domain.TaskStatusDone && task.CompletedAt == nil {
			task.CompletedAt = &now
		}
	}
	if req.DueDate != nil {
		dueDateSet = task.DueDate == nil || !task.DueDate.Equal(*req.DueDate)
		task.DueDate = req.DueDate
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update task", err.Error())
	}

	recordActivity(ctx, s.activity, s.logger, task.ProjectID, userID,
		"TASK_UPDATED", "TASK", task.ID, fmt.Sprintf("Updated task %s", task.TaskKey), changes)

	if statusChanged {
		s.enqueueEvent(task.ID, domain.TriggerTaskStatusChanged, string(task.Status))
	}
	if priorityChanged {
		s.enqueueEvent(task.ID, domain.TriggerTaskPriorityChanged, string(task.Priority))
	}
	if dueDateSet {
		s.enqueueEvent(task.ID, domain.TriggerDueDateSet, "")
	}
	s.publisher.Publish(BoardEvent{Type: EventTaskUpdated, ProjectID: task.ProjectID, Payload: dto.ToTaskResponse(task)})

	resp := dto.ToTaskResponse(task)
	return &resp, nil
}

// MoveTask moves a task into a column slot. The WIP check, the status
// derivation, and the dense renumbering of both affected columns are
// evaluated under the column locks and persisted in one transaction.
func (s *taskServiceImpl) MoveTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.MoveTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projectRepo, task.ProjectID, userID); err != nil {
		return nil, err
	}

	targetColumn, err := s.findProjectColumn(ctx, req.ColumnID, task.ProjectID)
	if err != nil {
		return nil, err
	}

	sourceColumnID := task.ColumnID
	unlock := s.lockColumns(req.ColumnID, sourceColumnID)
	defer unlock()

	count, err := s.columnRepo.CountTasksExcluding(ctx, targetColumn.ID, task.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count column tasks", err.Error())
	}

	change, err := EvaluateMove(task, targetColumn, count, time.Now())
	if err != nil {
		s.metrics.IncrementWipLimitRejected()
		return nil, err
	}

	siblings, err := s.taskRepo.FindByColumnID(ctx, targetColumn.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list column tasks", err.Error())
	}

	crossColumn := sourceColumnID == nil || *sourceColumnID != targetColumn.ID
	task.ColumnID = &targetColumn.ID
	change.Apply(task)

	reordered := PlaceTask(siblings, task, req.Position)

	if crossColumn && sourceColumnID != nil {
		oldSiblings, err := s.taskRepo.FindByColumnID(ctx, *sourceColumnID)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list source column tasks", err.Error())
		}
		reordered = append(reordered, CompactPositions(oldSiblings, task.ID)...)
	}

	if err := s.taskRepo.SaveMove(ctx, task, reordered); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to persist move", err.Error())
	}

	s.metrics.IncrementTaskMoved()
	s.logger.Info("Task moved",
		zap.String("task", task.TaskKey),
		zap.String("column_id", targetColumn.ID.String()),
		zap.Int("position", task.Position),
	)

	metadata := map[string]interface{}{"column": targetColumn.Name, "position": task.Position}
	if sourceColumnID != nil {
		metadata["from_column_id"] = sourceColumnID.String()
	}
	recordActivity(ctx, s.activity, s.logger, task.ProjectID, userID,
		"TASK_MOVED", "TASK", task.ID,
		fmt.Sprintf("Moved task %s to '%s'", task.TaskKey, targetColumn.Name), metadata)

	if crossColumn {
		s.enqueueEvent(task.ID, domain.TriggerTaskMovedToColumn, targetColumn.Name)
	}
	if change.Changed {
		s.enqueueEvent(task.ID, domain.TriggerTaskStatusChanged, string(task.Status))
	}
	s.publisher.Publish(BoardEvent{Type: EventTaskMoved, ProjectID: task.ProjectID, Payload: dto.ToTaskResponse(task)})

	resp := dto.ToTaskResponse(task)
	return &resp, nil
}

// DeleteTask removes a task and closes the position gap it leaves behind
func (s *taskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return err
	}
	if err := requireProjectMember(ctx, s.projectRepo, task.ProjectID, userID); err != nil {
		return err
	}

	if task.ColumnID != nil {
		unlock := s.lockColumns(*task.ColumnID, nil)
		defer unlock()
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete task", err.Error())
	}

	if task.ColumnID != nil {
		siblings, err := s.taskRepo.FindByColumnID(ctx, *task.ColumnID)
		if err == nil {
			for _, sibling := range CompactPositions(siblings, task.ID) {
				if err := s.taskRepo.Update(ctx, sibling); err != nil {
					s.logger.Warn("Failed to compact column positions",
						zap.String("task_id", sibling.ID.String()),
						zap.Error(err),
					)
				}
			}
		}
	}

	recordActivity(ctx, s.activity, s.logger, task.ProjectID, userID,
		"TASK_DELETED", "TASK", task.ID, fmt.Sprintf("Deleted task %s", task.TaskKey), nil)
	s.publisher.Publish(BoardEvent{Type: EventTaskDeleted, ProjectID: task.ProjectID, Payload: dto.ToTaskResponse(task)})
	return nil
}

// AssignUser assigns a user to the task and notifies them
func (s *taskServiceImpl) AssignUser(ctx context.Context, userID, taskID, assigneeID uuid.UUID) (*dto.TaskResponse, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projectRepo, task.ProjectID, userID); err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projectRepo, task.ProjectID, assigneeID); err != nil {
		return nil, err
	}

	if !task.HasAssignee(assigneeID) {
		assignment := &domain.TaskAssignment{TaskID: task.ID, UserID: assigneeID}
		if err := s.taskRepo.AddAssignee(ctx, assignment); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to assign user", err.Error())
		}

		recordActivity(ctx, s.activity, s.logger, task.ProjectID, userID,
			"TASK_ASSIGNED", "TASK", task.ID,
			fmt.Sprintf("Assigned user to task %s", task.TaskKey),
			map[string]interface{}{"assignee_id": assigneeID.String()})

		if err := s.notifier.SendTaskAssigned(ctx, task, assigneeID, userID); err != nil {
			s.logger.Warn("Failed to send assignment notification",
				zap.String("task", task.TaskKey),
				zap.Error(err),
			)
		}
		s.enqueueEvent(task.ID, domain.TriggerTaskAssigned, assigneeID.String())
	}

	return s.reloadResponse(ctx, task.ID)
}

// UnassignUser removes a user from the task's assignees
func (s *taskServiceImpl) UnassignUser(ctx context.Context, userID, taskID, assigneeID uuid.UUID) (*dto.TaskResponse, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projectRepo, task.ProjectID, userID); err != nil {
		return nil, err
	}

	if err := s.taskRepo.RemoveAssignee(ctx, task.ID, assigneeID); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to unassign user", err.Error())
	}

	recordActivity(ctx, s.activity, s.logger, task.ProjectID, userID,
		"TASK_UNASSIGNED", "TASK", task.ID,
		fmt.Sprintf("Unassigned user from task %s", task.TaskKey),
		map[string]interface{}{"assignee_id": assigneeID.String()})

	return s.reloadResponse(ctx, task.ID)
}

// AddLabelToTask attaches a project label to the task
func (s *taskServiceImpl) AddLabelToTask(ctx context.Context, userID, taskID, labelID uuid.UUID) (*dto.TaskResponse, error) {
	task, label, err := s.findTaskAndLabel(ctx, userID, taskID, labelID)
	if err != nil {
		return nil, err
	}
	if err := s.taskRepo.AddLabel(ctx, task, label); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to add label", err.Error())
	}
	return s.reloadResponse(ctx, task.ID)
}

// RemoveLabelFromTask detaches a label from the task
func (s *taskServiceImpl) RemoveLabelFromTask(ctx context.Context, userID, taskID, labelID uuid.UUID) (*dto.TaskResponse, error) {
	task, label, err := s.findTaskAndLabel(ctx, userID, taskID, labelID)
	if err != nil {
		return nil, err
	}
	if err := s.taskRepo.RemoveLabel(ctx, task, label); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to remove label", err.Error())
	}
	return s.reloadResponse(ctx, task.ID)
}

// findTask loads a task, translating the missing-record case
func (s *taskServiceImpl) findTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Task not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load task", err.Error())
	}
	return task, nil
}

// findProjectColumn loads a column and checks it belongs to the project
func (s *taskServiceImpl) findProjectColumn(ctx context.Context, columnID, projectID uuid.UUID) (*domain.BoardColumn, error) {
	column, err := s.columnRepo.FindByID(ctx, columnID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Column not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load column", err.Error())
	}
	board, err := s.boardRepo.FindByID(ctx, column.BoardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}
	if board.ProjectID != projectID {
		return nil, response.NewAppError(response.ErrCodeNotFound, "Column does not belong to this project", "")
	}
	return column, nil
}

func (s *taskServiceImpl) findTaskAndLabel(ctx context.Context, userID, taskID, labelID uuid.UUID) (*domain.Task, *domain.Label, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, nil, err
	}
	if err := requireProjectMember(ctx, s.projectRepo, task.ProjectID, userID); err != nil {
		return nil, nil, err
	}
	label, err := s.labelRepo.FindByID(ctx, labelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, response.NewAppError(response.ErrCodeNotFound, "Label not found", "")
		}
		return nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to load label", err.Error())
	}
	if label.ProjectID != task.ProjectID {
		return nil, nil, response.NewAppError(response.ErrCodeNotFound, "Label does not belong to this project", "")
	}
	return task, label, nil
}

func (s *taskServiceImpl) reloadResponse(ctx context.Context, taskID uuid.UUID) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load task", err.Error())
	}
	resp := dto.ToTaskResponse(task)
	return &resp, nil
}

// lockColumns acquires the per-column mutexes for a move. Both columns are
// locked in a fixed order so two opposite cross-column moves cannot deadlock.
func (s *taskServiceImpl) lockColumns(target uuid.UUID, source *uuid.UUID) func() {
	ids := []uuid.UUID{target}
	if source != nil && *source != target {
		if source.String() < target.String() {
			ids = []uuid.UUID{*source, target}
		} else {
			ids = append(ids, *source)
		}
	}

	locks := make([]*sync.Mutex, 0, len(ids))
	for _, id := range ids {
		v, _ := s.columnLocks.LoadOrStore(id, &sync.Mutex{})
		locks = append(locks, v.(*sync.Mutex))
	}
	for _, l := range locks {
		l.Lock()
	}
	return func() {
		for i := len(locks) - 1; i >= 0; i-- {
			locks[i].Unlock()
		}
	}
}

func (s *taskServiceImpl) enqueueEvent(taskID uuid.UUID, trigger domain.WorkflowTrigger, value string) {
	if s.events == nil {
		return
	}
	// The queue counts and logs its own drops
	s.events.Enqueue(taskID, trigger, value)
}

func toTaskResponses(tasks []*domain.Task) []*dto.TaskResponse {
	out := make([]*dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp := dto.ToTaskResponse(t)
		out = append(out, &resp)
	}
	return out
}
