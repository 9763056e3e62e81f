package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-board-api/internal/dto"
	"task-board-api/internal/response"
	"task-board-api/internal/service"
)

// LabelHandler handles project label endpoints
type LabelHandler struct {
	labelService service.LabelService
}

// NewLabelHandler creates a new LabelHandler
func NewLabelHandler(labelService service.LabelService) *LabelHandler {
	return &LabelHandler{labelService: labelService}
}

// CreateLabel godoc
// @Summary      Create a label
// @Tags         labels
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        request body dto.CreateLabelRequest true "Label creation request"
// @Success      201 {object} response.SuccessResponse{data=dto.LabelResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Router       /projects/{projectId}/labels [post]
func (h *LabelHandler) CreateLabel(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}

	var req dto.CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	label, err := h.labelService.CreateLabel(c.Request.Context(), userID, projectID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, label)
}

// GetProjectLabels godoc
// @Summary      List project labels
// @Tags         labels
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.LabelResponse}
// @Failure      403 {object} response.ErrorResponse
// @Router       /projects/{projectId}/labels [get]
func (h *LabelHandler) GetProjectLabels(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	labels, err := h.labelService.GetProjectLabels(c.Request.Context(), userID, projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, labels)
}

// DeleteLabel godoc
// @Summary      Delete a label
// @Tags         labels
// @Produce      json
// @Param        labelId path string true "Label ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=map[string]string}
// @Failure      404 {object} response.ErrorResponse
// @Router       /labels/{labelId} [delete]
func (h *LabelHandler) DeleteLabel(c *gin.Context) {
	labelID, ok := pathUUID(c, "labelId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.labelService.DeleteLabel(c.Request.Context(), userID, labelID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Label deleted successfully"})
}
