package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
	"task-board-api/internal/dto"
	"task-board-api/internal/response"
)

func newSprintTestService(sprintRepo *MockSprintRepository) SprintService {
	return NewSprintService(sprintRepo, &MockProjectRepository{}, zap.NewNop())
}

func sprintFixture(projectID uuid.UUID, status domain.SprintStatus) *domain.Sprint {
	return &domain.Sprint{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		ProjectID: projectID,
		Name:      "Iteration 1",
		Status:    status,
	}
}

func TestCreateSprint_Success(t *testing.T) {
	var created *domain.Sprint
	sprintRepo := &MockSprintRepository{
		CreateFunc: func(ctx context.Context, sprint *domain.Sprint) error {
			sprint.ID = uuid.New()
			created = sprint
			return nil
		},
	}
	svc := newSprintTestService(sprintRepo)

	resp, err := svc.CreateSprint(context.Background(), uuid.New(), uuid.New(), &dto.CreateSprintRequest{
		Name: "Iteration 1",
		Goal: "Ship the board view",
	})
	if err != nil {
		t.Fatalf("CreateSprint failed: %v", err)
	}
	if created == nil {
		t.Fatal("Expected sprint to be persisted")
	}
	if created.Status != domain.SprintStatusPlanned {
		t.Errorf("Expected status PLANNED, got %s", created.Status)
	}
	if resp.Status != domain.SprintStatusPlanned {
		t.Errorf("Expected response status PLANNED, got %s", resp.Status)
	}
}

func TestCreateSprint_EndBeforeStartRejected(t *testing.T) {
	svc := newSprintTestService(&MockSprintRepository{})

	start := time.Now().UTC()
	end := start.Add(-24 * time.Hour)
	_, err := svc.CreateSprint(context.Background(), uuid.New(), uuid.New(), &dto.CreateSprintRequest{
		Name:      "Iteration 1",
		StartDate: &start,
		EndDate:   &end,
	})

	expectAppError(t, err, response.ErrCodeValidation)
}

func TestStartSprint_ActivatesPlannedSprint(t *testing.T) {
	sprint := sprintFixture(uuid.New(), domain.SprintStatusPlanned)
	var updated *domain.Sprint
	sprintRepo := &MockSprintRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Sprint, error) {
			return sprint, nil
		},
		FindActiveByProjectIDFunc: func(ctx context.Context, projectID uuid.UUID) (*domain.Sprint, error) {
			return nil, gorm.ErrRecordNotFound
		},
		UpdateFunc: func(ctx context.Context, s *domain.Sprint) error {
			updated = s
			return nil
		},
	}
	svc := newSprintTestService(sprintRepo)

	resp, err := svc.StartSprint(context.Background(), uuid.New(), sprint.ID)
	if err != nil {
		t.Fatalf("StartSprint failed: %v", err)
	}
	if updated == nil || updated.Status != domain.SprintStatusActive {
		t.Fatalf("Expected sprint persisted as ACTIVE, got %+v", updated)
	}
	if updated.StartDate == nil {
		t.Error("Expected start date to be stamped on activation")
	}
	if resp.Status != domain.SprintStatusActive {
		t.Errorf("Expected response status ACTIVE, got %s", resp.Status)
	}
}

func TestStartSprint_RejectsNonPlannedSprint(t *testing.T) {
	sprint := sprintFixture(uuid.New(), domain.SprintStatusCompleted)
	sprintRepo := &MockSprintRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Sprint, error) {
			return sprint, nil
		},
	}
	svc := newSprintTestService(sprintRepo)

	_, err := svc.StartSprint(context.Background(), uuid.New(), sprint.ID)

	expectAppError(t, err, response.ErrCodeInvalidState)
}

func TestStartSprint_RejectsSecondActiveSprint(t *testing.T) {
	projectID := uuid.New()
	sprint := sprintFixture(projectID, domain.SprintStatusPlanned)
	sprintRepo := &MockSprintRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Sprint, error) {
			return sprint, nil
		},
		FindActiveByProjectIDFunc: func(ctx context.Context, pid uuid.UUID) (*domain.Sprint, error) {
			return sprintFixture(projectID, domain.SprintStatusActive), nil
		},
		UpdateFunc: func(ctx context.Context, s *domain.Sprint) error {
			t.Error("Update should not be called when an active sprint exists")
			return nil
		},
	}
	svc := newSprintTestService(sprintRepo)

	_, err := svc.StartSprint(context.Background(), uuid.New(), sprint.ID)

	appErr := expectAppError(t, err, response.ErrCodeInvalidState)
	if appErr.Message != "Project already has an active sprint" {
		t.Errorf("Unexpected message: %s", appErr.Message)
	}
}

func TestCompleteSprint_StampsEndDate(t *testing.T) {
	sprint := sprintFixture(uuid.New(), domain.SprintStatusActive)
	var updated *domain.Sprint
	sprintRepo := &MockSprintRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Sprint, error) {
			return sprint, nil
		},
		UpdateFunc: func(ctx context.Context, s *domain.Sprint) error {
			updated = s
			return nil
		},
	}
	svc := newSprintTestService(sprintRepo)

	_, err := svc.CompleteSprint(context.Background(), uuid.New(), sprint.ID)
	if err != nil {
		t.Fatalf("CompleteSprint failed: %v", err)
	}
	if updated == nil || updated.Status != domain.SprintStatusCompleted {
		t.Fatalf("Expected sprint persisted as COMPLETED, got %+v", updated)
	}
	if updated.EndDate == nil {
		t.Error("Expected end date to be stamped on completion")
	}
}

func TestCompleteSprint_RejectsPlannedSprint(t *testing.T) {
	sprint := sprintFixture(uuid.New(), domain.SprintStatusPlanned)
	sprintRepo := &MockSprintRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Sprint, error) {
			return sprint, nil
		},
	}
	svc := newSprintTestService(sprintRepo)

	_, err := svc.CompleteSprint(context.Background(), uuid.New(), sprint.ID)

	expectAppError(t, err, response.ErrCodeInvalidState)
}

func TestStartSprint_NotFound(t *testing.T) {
	sprintRepo := &MockSprintRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Sprint, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newSprintTestService(sprintRepo)

	_, err := svc.StartSprint(context.Background(), uuid.New(), uuid.New())

	expectAppError(t, err, response.ErrCodeNotFound)
}
