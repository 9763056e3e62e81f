package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-board-api/internal/dto"
	"task-board-api/internal/response"
	"task-board-api/internal/service"
)

// TaskHandler handles task endpoints
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTask godoc
// @Summary      Create a task
// @Description  Creates a task with a project-unique key at the end of its column
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateTaskRequest true "Task creation request"
// @Success      201 {object} response.SuccessResponse{data=dto.TaskResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Router       /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, task)
}

// GetTask godoc
// @Summary      Get a task
// @Tags         tasks
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.TaskResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /tasks/{taskId} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), userID, taskID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, task)
}

// GetColumnTasks godoc
// @Summary      List column tasks
// @Description  Returns the tasks of a column ordered by position
// @Tags         tasks
// @Produce      json
// @Param        columnId path string true "Column ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.TaskResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /columns/{columnId}/tasks [get]
func (h *TaskHandler) GetColumnTasks(c *gin.Context) {
	columnID, ok := pathUUID(c, "columnId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.GetColumnTasks(c.Request.Context(), userID, columnID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, tasks)
}

// GetProjectTasks godoc
// @Summary      List project tasks
// @Tags         tasks
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.TaskResponse}
// @Failure      403 {object} response.ErrorResponse
// @Router       /projects/{projectId}/tasks [get]
func (h *TaskHandler) GetProjectTasks(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.GetProjectTasks(c.Request.Context(), userID, projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, tasks)
}

// UpdateTask godoc
// @Summary      Update a task
// @Description  Updates task attributes. Column and position changes go through the move endpoint.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Param        request body dto.UpdateTaskRequest true "Task update request"
// @Success      200 {object} response.SuccessResponse{data=dto.TaskResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /tasks/{taskId} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), userID, taskID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, task)
}

// MoveTask godoc
// @Summary      Move a task
// @Description  Moves a task into a column slot, enforcing the column's WIP limit and deriving the task's status
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Param        request body dto.MoveTaskRequest true "Target column and position"
// @Success      200 {object} response.SuccessResponse{data=dto.TaskResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse "WIP limit exceeded"
// @Router       /tasks/{taskId}/move [put]
func (h *TaskHandler) MoveTask(c *gin.Context) {
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}

	var req dto.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	task, err := h.taskService.MoveTask(c.Request.Context(), userID, taskID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, task)
}

// DeleteTask godoc
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=map[string]string}
// @Failure      404 {object} response.ErrorResponse
// @Router       /tasks/{taskId} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), userID, taskID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Task deleted successfully"})
}

// AssignUser godoc
// @Summary      Assign a user to a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Param        request body dto.AssignUserRequest true "User to assign"
// @Success      200 {object} response.SuccessResponse{data=dto.TaskResponse}
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /tasks/{taskId}/assignees [post]
func (h *TaskHandler) AssignUser(c *gin.Context) {
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}

	var req dto.AssignUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	task, err := h.taskService.AssignUser(c.Request.Context(), userID, taskID, req.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, task)
}

// UnassignUser godoc
// @Summary      Unassign a user from a task
// @Tags         tasks
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Param        userId path string true "User ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.TaskResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /tasks/{taskId}/assignees/{userId} [delete]
func (h *TaskHandler) UnassignUser(c *gin.Context) {
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}
	assigneeID, ok := pathUUID(c, "userId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	task, err := h.taskService.UnassignUser(c.Request.Context(), userID, taskID, assigneeID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, task)
}

// AddLabel godoc
// @Summary      Add a label to a task
// @Tags         tasks
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Param        labelId path string true "Label ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.TaskResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /tasks/{taskId}/labels/{labelId} [post]
func (h *TaskHandler) AddLabel(c *gin.Context) {
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}
	labelID, ok := pathUUID(c, "labelId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	task, err := h.taskService.AddLabelToTask(c.Request.Context(), userID, taskID, labelID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, task)
}

// RemoveLabel godoc
// @Summary      Remove a label from a task
// @Tags         tasks
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Param        labelId path string true "Label ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.TaskResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /tasks/{taskId}/labels/{labelId} [delete]
func (h *TaskHandler) RemoveLabel(c *gin.Context) {
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}
	labelID, ok := pathUUID(c, "labelId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	task, err := h.taskService.RemoveLabelFromTask(c.Request.Context(), userID, taskID, labelID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, task)
}
