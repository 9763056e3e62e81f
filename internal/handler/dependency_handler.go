package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-board-api/internal/dto"
	"task-board-api/internal/response"
	"task-board-api/internal/service"
)

// DependencyHandler handles task dependency endpoints
type DependencyHandler struct {
	dependencyService service.DependencyService
}

// NewDependencyHandler creates a new DependencyHandler
func NewDependencyHandler(dependencyService service.DependencyService) *DependencyHandler {
	return &DependencyHandler{dependencyService: dependencyService}
}

// AddDependency godoc
// @Summary      Link two tasks
// @Description  Creates a directed dependency edge from this task to another task in the same project
// @Tags         dependencies
// @Accept       json
// @Produce      json
// @Param        taskId path string true "Source task ID (UUID)"
// @Param        request body dto.AddDependencyRequest true "Target task and dependency type"
// @Success      201 {object} response.SuccessResponse{data=dto.DependencyResponse}
// @Failure      400 {object} response.ErrorResponse "Self-reference, cross-project, duplicate, or circular dependency"
// @Failure      404 {object} response.ErrorResponse
// @Router       /tasks/{taskId}/dependencies [post]
func (h *DependencyHandler) AddDependency(c *gin.Context) {
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}

	var req dto.AddDependencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dep, err := h.dependencyService.AddDependency(c.Request.Context(), userID, taskID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, dep)
}

// RemoveDependency godoc
// @Summary      Remove a dependency
// @Tags         dependencies
// @Produce      json
// @Param        dependencyId path string true "Dependency ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=map[string]string}
// @Failure      404 {object} response.ErrorResponse
// @Router       /dependencies/{dependencyId} [delete]
func (h *DependencyHandler) RemoveDependency(c *gin.Context) {
	dependencyID, ok := pathUUID(c, "dependencyId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.dependencyService.RemoveDependency(c.Request.Context(), userID, dependencyID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Dependency removed successfully"})
}

// GetTaskDependencies godoc
// @Summary      List task dependencies
// @Description  Returns every dependency edge touching the task, in either direction
// @Tags         dependencies
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.DependencyResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /tasks/{taskId}/dependencies [get]
func (h *DependencyHandler) GetTaskDependencies(c *gin.Context) {
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}

	deps, err := h.dependencyService.GetTaskDependencies(c.Request.Context(), taskID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, deps)
}

// GetBlocking godoc
// @Summary      List tasks this task blocks
// @Tags         dependencies
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.DependencyResponse}
// @Router       /tasks/{taskId}/dependencies/blocking [get]
func (h *DependencyHandler) GetBlocking(c *gin.Context) {
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}

	deps, err := h.dependencyService.GetBlockingDependencies(c.Request.Context(), taskID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, deps)
}

// GetBlockedBy godoc
// @Summary      List tasks blocking this task
// @Tags         dependencies
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.DependencyResponse}
// @Router       /tasks/{taskId}/dependencies/blocked-by [get]
func (h *DependencyHandler) GetBlockedBy(c *gin.Context) {
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}

	deps, err := h.dependencyService.GetBlockedByDependencies(c.Request.Context(), taskID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, deps)
}

// GetBlockers godoc
// @Summary      Check for unresolved blockers
// @Description  Reports whether any incoming BLOCKS edge originates from a task that is not done or cancelled
// @Tags         dependencies
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.BlockersResponse}
// @Router       /tasks/{taskId}/blockers [get]
func (h *DependencyHandler) GetBlockers(c *gin.Context) {
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}

	blocked, err := h.dependencyService.HasUnresolvedBlockers(c.Request.Context(), taskID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.BlockersResponse{
		TaskID:                taskID,
		HasUnresolvedBlockers: blocked,
	})
}
