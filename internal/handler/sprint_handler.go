package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-board-api/internal/dto"
	"task-board-api/internal/response"
	"task-board-api/internal/service"
)

// SprintHandler handles sprint endpoints
type SprintHandler struct {
	sprintService service.SprintService
}

// NewSprintHandler creates a new SprintHandler
func NewSprintHandler(sprintService service.SprintService) *SprintHandler {
	return &SprintHandler{sprintService: sprintService}
}

// CreateSprint godoc
// @Summary      Create a sprint
// @Tags         sprints
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        request body dto.CreateSprintRequest true "Sprint creation request"
// @Success      201 {object} response.SuccessResponse{data=dto.SprintResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Router       /projects/{projectId}/sprints [post]
func (h *SprintHandler) CreateSprint(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}

	var req dto.CreateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sprint, err := h.sprintService.CreateSprint(c.Request.Context(), userID, projectID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, sprint)
}

// GetProjectSprints godoc
// @Summary      List project sprints
// @Tags         sprints
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.SprintResponse}
// @Failure      403 {object} response.ErrorResponse
// @Router       /projects/{projectId}/sprints [get]
func (h *SprintHandler) GetProjectSprints(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sprints, err := h.sprintService.GetProjectSprints(c.Request.Context(), userID, projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, sprints)
}

// StartSprint godoc
// @Summary      Start a planned sprint
// @Tags         sprints
// @Produce      json
// @Param        sprintId path string true "Sprint ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.SprintResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Router       /sprints/{sprintId}/start [post]
func (h *SprintHandler) StartSprint(c *gin.Context) {
	sprintID, ok := pathUUID(c, "sprintId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sprint, err := h.sprintService.StartSprint(c.Request.Context(), userID, sprintID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, sprint)
}

// CompleteSprint godoc
// @Summary      Complete an active sprint
// @Tags         sprints
// @Produce      json
// @Param        sprintId path string true "Sprint ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.SprintResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Router       /sprints/{sprintId}/complete [post]
func (h *SprintHandler) CompleteSprint(c *gin.Context) {
	sprintID, ok := pathUUID(c, "sprintId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sprint, err := h.sprintService.CompleteSprint(c.Request.Context(), userID, sprintID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, sprint)
}
