package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
	"task-board-api/internal/dto"
	"task-board-api/internal/response"
)

type commentFixture struct {
	commentRepo *MockCommentRepository
	taskRepo    *MockTaskRepository
	projectRepo *MockProjectRepository
	notifier    *MockNotifier
	queue       *MockEventQueue
	svc         CommentService
}

func newCommentFixture() *commentFixture {
	f := &commentFixture{
		commentRepo: &MockCommentRepository{},
		taskRepo:    &MockTaskRepository{},
		projectRepo: &MockProjectRepository{},
		notifier:    &MockNotifier{},
		queue:       &MockEventQueue{},
	}
	f.projectRepo.IsProjectMemberFunc = func(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
		return true, nil
	}
	f.svc = NewCommentService(f.commentRepo, f.taskRepo, f.projectRepo, f.notifier, f.queue, zap.NewNop())
	return f
}

func commentTaskFixture(projectID uuid.UUID) *domain.Task {
	return &domain.Task{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		ProjectID: projectID,
		TaskKey:   "PROJ-7",
		Title:     "Review the release notes",
		Status:    domain.TaskStatusOpen,
	}
}

func TestAddComment_FiresCommentAddedTrigger(t *testing.T) {
	f := newCommentFixture()
	task := commentTaskFixture(uuid.New())
	f.taskRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
		return task, nil
	}

	var enqueuedTask uuid.UUID
	var enqueuedTrigger domain.WorkflowTrigger
	f.queue.EnqueueFunc = func(taskID uuid.UUID, trigger domain.WorkflowTrigger, value string) bool {
		enqueuedTask = taskID
		enqueuedTrigger = trigger
		return true
	}

	resp, err := f.svc.AddComment(context.Background(), uuid.New(), task.ID, &dto.CreateCommentRequest{
		Content: "Looks good to me",
	})
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if resp.Content != "Looks good to me" {
		t.Errorf("Expected comment content to round-trip, got %q", resp.Content)
	}
	if enqueuedTask != task.ID {
		t.Errorf("Expected event for task %s, got %s", task.ID, enqueuedTask)
	}
	if enqueuedTrigger != domain.TriggerCommentAdded {
		t.Errorf("Expected trigger %s, got %s", domain.TriggerCommentAdded, enqueuedTrigger)
	}
}

func TestAddComment_NotifiesOtherAssignees(t *testing.T) {
	f := newCommentFixture()
	author := uuid.New()
	assignee := uuid.New()
	task := commentTaskFixture(uuid.New())
	task.Assignees = []domain.TaskAssignment{
		{TaskID: task.ID, UserID: author},
		{TaskID: task.ID, UserID: assignee},
	}
	f.taskRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
		return task, nil
	}

	notified := make(map[uuid.UUID]bool)
	f.notifier.SendTaskUpdatedFunc = func(ctx context.Context, task *domain.Task, recipientID uuid.UUID, description string) error {
		notified[recipientID] = true
		return nil
	}

	if _, err := f.svc.AddComment(context.Background(), author, task.ID, &dto.CreateCommentRequest{
		Content: "Picking this up",
	}); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if !notified[assignee] {
		t.Error("Expected the other assignee to be notified")
	}
	if notified[author] {
		t.Error("Author should not be notified of their own comment")
	}
}

func TestAddComment_NonMemberRejected(t *testing.T) {
	f := newCommentFixture()
	task := commentTaskFixture(uuid.New())
	f.taskRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
		return task, nil
	}
	f.projectRepo.IsProjectMemberFunc = func(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
		return false, nil
	}

	enqueued := false
	f.queue.EnqueueFunc = func(taskID uuid.UUID, trigger domain.WorkflowTrigger, value string) bool {
		enqueued = true
		return true
	}

	_, err := f.svc.AddComment(context.Background(), uuid.New(), task.ID, &dto.CreateCommentRequest{
		Content: "Drive-by comment",
	})
	expectAppError(t, err, response.ErrCodeForbidden)
	if enqueued {
		t.Error("Rejected comment should not fire an event")
	}
}

func TestAddComment_TaskNotFound(t *testing.T) {
	f := newCommentFixture()
	f.taskRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
		return nil, gorm.ErrRecordNotFound
	}

	_, err := f.svc.AddComment(context.Background(), uuid.New(), uuid.New(), &dto.CreateCommentRequest{
		Content: "Hello",
	})
	expectAppError(t, err, response.ErrCodeNotFound)
}

func TestAddComment_ParentNotFound(t *testing.T) {
	f := newCommentFixture()
	task := commentTaskFixture(uuid.New())
	f.taskRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
		return task, nil
	}
	f.commentRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
		return nil, gorm.ErrRecordNotFound
	}

	parentID := uuid.New()
	_, err := f.svc.AddComment(context.Background(), uuid.New(), task.ID, &dto.CreateCommentRequest{
		Content:         "Replying",
		ParentCommentID: &parentID,
	})
	expectAppError(t, err, response.ErrCodeNotFound)
}

func TestAddComment_ParentOnOtherTaskRejected(t *testing.T) {
	f := newCommentFixture()
	task := commentTaskFixture(uuid.New())
	f.taskRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
		return task, nil
	}
	parentID := uuid.New()
	f.commentRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
		return &domain.Comment{
			BaseModel: domain.BaseModel{ID: parentID},
			TaskID:    uuid.New(),
			AuthorID:  uuid.New(),
			Content:   "Unrelated thread",
		}, nil
	}

	_, err := f.svc.AddComment(context.Background(), uuid.New(), task.ID, &dto.CreateCommentRequest{
		Content:         "Replying",
		ParentCommentID: &parentID,
	})
	expectAppError(t, err, response.ErrCodeValidation)
}

func TestUpdateComment_AuthorOnly(t *testing.T) {
	f := newCommentFixture()
	author := uuid.New()
	comment := &domain.Comment{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		TaskID:    uuid.New(),
		AuthorID:  author,
		Content:   "Original wording",
	}
	f.commentRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
		return comment, nil
	}

	_, err := f.svc.UpdateComment(context.Background(), uuid.New(), comment.ID, &dto.UpdateCommentRequest{
		Content: "Rewritten by someone else",
	})
	expectAppError(t, err, response.ErrCodeForbidden)

	resp, err := f.svc.UpdateComment(context.Background(), author, comment.ID, &dto.UpdateCommentRequest{
		Content: "Better wording",
	})
	if err != nil {
		t.Fatalf("UpdateComment by author failed: %v", err)
	}
	if !resp.IsEdited {
		t.Error("Expected edited comment to be flagged")
	}
	if resp.Content != "Better wording" {
		t.Errorf("Expected updated content, got %q", resp.Content)
	}
}

func TestDeleteComment_AuthorOnly(t *testing.T) {
	f := newCommentFixture()
	author := uuid.New()
	comment := &domain.Comment{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		TaskID:    uuid.New(),
		AuthorID:  author,
		Content:   "To be removed",
	}
	f.commentRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
		return comment, nil
	}

	err := f.svc.DeleteComment(context.Background(), uuid.New(), comment.ID)
	expectAppError(t, err, response.ErrCodeForbidden)

	deleted := false
	f.commentRepo.DeleteFunc = func(ctx context.Context, id uuid.UUID) error {
		deleted = true
		return nil
	}
	if err := f.svc.DeleteComment(context.Background(), author, comment.ID); err != nil {
		t.Fatalf("DeleteComment by author failed: %v", err)
	}
	if !deleted {
		t.Error("Expected comment to be deleted")
	}
}

func TestGetTaskComments_MemberGated(t *testing.T) {
	f := newCommentFixture()
	task := commentTaskFixture(uuid.New())
	f.taskRepo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
		return task, nil
	}
	f.commentRepo.FindTopLevelByTaskIDFunc = func(ctx context.Context, taskID uuid.UUID) ([]*domain.Comment, error) {
		return []*domain.Comment{
			{BaseModel: domain.BaseModel{ID: uuid.New()}, TaskID: taskID, AuthorID: uuid.New(), Content: "First"},
		}, nil
	}

	comments, err := f.svc.GetTaskComments(context.Background(), uuid.New(), task.ID)
	if err != nil {
		t.Fatalf("GetTaskComments failed: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("Expected 1 comment, got %d", len(comments))
	}

	f.projectRepo.IsProjectMemberFunc = func(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
		return false, nil
	}
	_, err = f.svc.GetTaskComments(context.Background(), uuid.New(), task.ID)
	expectAppError(t, err, response.ErrCodeForbidden)
}
