package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task-board-api/internal/domain"
	"task-board-api/internal/dto"
	"task-board-api/internal/response"
)

// MockTaskService is a mock implementation of TaskService
type MockTaskService struct {
	CreateTaskFunc          func(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GetTaskFunc             func(ctx context.Context, userID, taskID uuid.UUID) (*dto.TaskResponse, error)
	GetColumnTasksFunc      func(ctx context.Context, userID, columnID uuid.UUID) ([]*dto.TaskResponse, error)
	GetProjectTasksFunc     func(ctx context.Context, userID, projectID uuid.UUID) ([]*dto.TaskResponse, error)
	UpdateTaskFunc          func(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	MoveTaskFunc            func(ctx context.Context, userID, taskID uuid.UUID, req *dto.MoveTaskRequest) (*dto.TaskResponse, error)
	DeleteTaskFunc          func(ctx context.Context, userID, taskID uuid.UUID) error
	AssignUserFunc          func(ctx context.Context, userID, taskID, assigneeID uuid.UUID) (*dto.TaskResponse, error)
	UnassignUserFunc        func(ctx context.Context, userID, taskID, assigneeID uuid.UUID) (*dto.TaskResponse, error)
	AddLabelToTaskFunc      func(ctx context.Context, userID, taskID, labelID uuid.UUID) (*dto.TaskResponse, error)
	RemoveLabelFromTaskFunc func(ctx context.Context, userID, taskID, labelID uuid.UUID) (*dto.TaskResponse, error)
}

func (m *MockTaskService) CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if m.CreateTaskFunc != nil {
		return m.CreateTaskFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockTaskService) GetTask(ctx context.Context, userID, taskID uuid.UUID) (*dto.TaskResponse, error) {
	if m.GetTaskFunc != nil {
		return m.GetTaskFunc(ctx, userID, taskID)
	}
	return nil, nil
}

func (m *MockTaskService) GetColumnTasks(ctx context.Context, userID, columnID uuid.UUID) ([]*dto.TaskResponse, error) {
	if m.GetColumnTasksFunc != nil {
		return m.GetColumnTasksFunc(ctx, userID, columnID)
	}
	return nil, nil
}

func (m *MockTaskService) GetProjectTasks(ctx context.Context, userID, projectID uuid.UUID) ([]*dto.TaskResponse, error) {
	if m.GetProjectTasksFunc != nil {
		return m.GetProjectTasksFunc(ctx, userID, projectID)
	}
	return nil, nil
}

func (m *MockTaskService) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	if m.UpdateTaskFunc != nil {
		return m.UpdateTaskFunc(ctx, userID, taskID, req)
	}
	return nil, nil
}

func (m *MockTaskService) MoveTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.MoveTaskRequest) (*dto.TaskResponse, error) {
	if m.MoveTaskFunc != nil {
		return m.MoveTaskFunc(ctx, userID, taskID, req)
	}
	return nil, nil
}

func (m *MockTaskService) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	if m.DeleteTaskFunc != nil {
		return m.DeleteTaskFunc(ctx, userID, taskID)
	}
	return nil
}

func (m *MockTaskService) AssignUser(ctx context.Context, userID, taskID, assigneeID uuid.UUID) (*dto.TaskResponse, error) {
	if m.AssignUserFunc != nil {
		return m.AssignUserFunc(ctx, userID, taskID, assigneeID)
	}
	return nil, nil
}

func (m *MockTaskService) UnassignUser(ctx context.Context, userID, taskID, assigneeID uuid.UUID) (*dto.TaskResponse, error) {
	if m.UnassignUserFunc != nil {
		return m.UnassignUserFunc(ctx, userID, taskID, assigneeID)
	}
	return nil, nil
}

func (m *MockTaskService) AddLabelToTask(ctx context.Context, userID, taskID, labelID uuid.UUID) (*dto.TaskResponse, error) {
	if m.AddLabelToTaskFunc != nil {
		return m.AddLabelToTaskFunc(ctx, userID, taskID, labelID)
	}
	return nil, nil
}

func (m *MockTaskService) RemoveLabelFromTask(ctx context.Context, userID, taskID, labelID uuid.UUID) (*dto.TaskResponse, error) {
	if m.RemoveLabelFromTaskFunc != nil {
		return m.RemoveLabelFromTaskFunc(ctx, userID, taskID, labelID)
	}
	return nil, nil
}

// newTaskTestRouter wires the handler behind a router that injects the user
func newTaskTestRouter(svc *MockTaskService, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})

	h := NewTaskHandler(svc)
	r.PUT("/tasks/:taskId/move", h.MoveTask)
	r.POST("/tasks", h.CreateTask)
	r.GET("/tasks/:taskId", h.GetTask)
	return r
}

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var resp response.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal error response: %v", err)
	}
	if resp.Success {
		t.Error("Expected success=false on error response")
	}
	return resp.Error
}

func TestTaskHandler_MoveTask(t *testing.T) {
	userID := uuid.New()
	taskID := uuid.New()
	columnID := uuid.New()

	tests := []struct {
		name           string
		taskPathID     string
		requestBody    interface{}
		mockService    func(*MockTaskService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:       "moves task into column slot",
			taskPathID: taskID.String(),
			requestBody: dto.MoveTaskRequest{
				ColumnID: columnID,
				Position: 2,
			},
			mockService: func(m *MockTaskService) {
				m.MoveTaskFunc = func(ctx context.Context, uid, tid uuid.UUID, req *dto.MoveTaskRequest) (*dto.TaskResponse, error) {
					if uid != userID {
						t.Errorf("Expected user %s, got %s", userID, uid)
					}
					if tid != taskID {
						t.Errorf("Expected task %s, got %s", taskID, tid)
					}
					return &dto.TaskResponse{
						ID:       tid,
						ColumnID: &req.ColumnID,
						Status:   domain.TaskStatusInProgress,
						Position: req.Position,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp response.SuccessResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("Failed to unmarshal response: %v", err)
				}

				dataBytes, _ := json.Marshal(resp.Data)
				var task dto.TaskResponse
				if err := json.Unmarshal(dataBytes, &task); err != nil {
					t.Fatalf("Failed to unmarshal data: %v", err)
				}
				if task.Position != 2 {
					t.Errorf("Expected position 2, got %d", task.Position)
				}
				if task.Status != domain.TaskStatusInProgress {
					t.Errorf("Expected status IN_PROGRESS, got %s", task.Status)
				}
			},
		},
		{
			name:       "maps WIP limit rejection to 409",
			taskPathID: taskID.String(),
			requestBody: dto.MoveTaskRequest{
				ColumnID: columnID,
				Position: 0,
			},
			mockService: func(m *MockTaskService) {
				m.MoveTaskFunc = func(ctx context.Context, uid, tid uuid.UUID, req *dto.MoveTaskRequest) (*dto.TaskResponse, error) {
					return nil, response.NewAppError(response.ErrCodeWipLimitExceeded,
						"WIP limit exceeded for column 'In Progress'. Maximum: 3, Current: 3", "")
				}
			},
			expectedStatus: http.StatusConflict,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				errBody := decodeErrorBody(t, w)
				if errBody.Code != response.ErrCodeWipLimitExceeded {
					t.Errorf("Expected code WIP_LIMIT_EXCEEDED, got %s", errBody.Code)
				}
			},
		},
		{
			name:       "maps missing column to 404",
			taskPathID: taskID.String(),
			requestBody: dto.MoveTaskRequest{
				ColumnID: columnID,
				Position: 0,
			},
			mockService: func(m *MockTaskService) {
				m.MoveTaskFunc = func(ctx context.Context, uid, tid uuid.UUID, req *dto.MoveTaskRequest) (*dto.TaskResponse, error) {
					return nil, response.NewAppError(response.ErrCodeNotFound, "Column not found", "")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "rejects malformed task id",
			taskPathID:     "not-a-uuid",
			requestBody:    dto.MoveTaskRequest{ColumnID: columnID},
			mockService:    func(m *MockTaskService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rejects body without column id",
			taskPathID:     taskID.String(),
			requestBody:    map[string]interface{}{"position": 1},
			mockService:    func(m *MockTaskService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:       "rejects negative position",
			taskPathID: taskID.String(),
			requestBody: map[string]interface{}{
				"columnId": columnID.String(),
				"position": -1,
			},
			mockService:    func(m *MockTaskService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockTaskService{}
			tt.mockService(svc)
			router := newTaskTestRouter(svc, userID)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPut,
				fmt.Sprintf("/tasks/%s/move", tt.taskPathID), bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestTaskHandler_CreateTask(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()

	svc := &MockTaskService{
		CreateTaskFunc: func(ctx context.Context, uid uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
			return &dto.TaskResponse{
				ID:        uuid.New(),
				ProjectID: req.ProjectID,
				TaskKey:   "PROJ-1",
				Title:     req.Title,
				Status:    domain.TaskStatusOpen,
			}, nil
		},
	}
	router := newTaskTestRouter(svc, userID)

	body, _ := json.Marshal(dto.CreateTaskRequest{
		ProjectID: projectID,
		Title:     "Write the release notes",
	})
	req := httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestTaskHandler_GetTask_MissingUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewTaskHandler(&MockTaskService{})
	r.GET("/tasks/:taskId", h.GetTask)

	req := httptest.NewRequest(http.MethodGet, "/tasks/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 without user context, got %d", w.Code)
	}
}
