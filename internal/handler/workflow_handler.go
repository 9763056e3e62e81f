package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-board-api/internal/dto"
	"task-board-api/internal/response"
	"task-board-api/internal/service"
)

// WorkflowHandler handles workflow rule endpoints
type WorkflowHandler struct {
	ruleService service.WorkflowRuleService
}

// NewWorkflowHandler creates a new WorkflowHandler
func NewWorkflowHandler(ruleService service.WorkflowRuleService) *WorkflowHandler {
	return &WorkflowHandler{ruleService: ruleService}
}

// CreateRule godoc
// @Summary      Create a workflow rule
// @Description  Creates an automation rule. The action value is validated against the action type at save time.
// @Tags         workflows
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        request body dto.WorkflowRuleRequest true "Rule definition"
// @Success      201 {object} response.SuccessResponse{data=dto.WorkflowRuleResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Router       /projects/{projectId}/workflows [post]
func (h *WorkflowHandler) CreateRule(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}

	var req dto.WorkflowRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	rule, err := h.ruleService.CreateRule(c.Request.Context(), userID, projectID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, rule)
}

// GetProjectRules godoc
// @Summary      List workflow rules
// @Tags         workflows
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.WorkflowRuleResponse}
// @Failure      403 {object} response.ErrorResponse
// @Router       /projects/{projectId}/workflows [get]
func (h *WorkflowHandler) GetProjectRules(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	rules, err := h.ruleService.GetProjectRules(c.Request.Context(), userID, projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, rules)
}

// UpdateRule godoc
// @Summary      Update a workflow rule
// @Tags         workflows
// @Accept       json
// @Produce      json
// @Param        ruleId path string true "Rule ID (UUID)"
// @Param        request body dto.WorkflowRuleRequest true "Rule definition"
// @Success      200 {object} response.SuccessResponse{data=dto.WorkflowRuleResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /workflows/{ruleId} [put]
func (h *WorkflowHandler) UpdateRule(c *gin.Context) {
	ruleID, ok := pathUUID(c, "ruleId")
	if !ok {
		return
	}

	var req dto.WorkflowRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	rule, err := h.ruleService.UpdateRule(c.Request.Context(), userID, ruleID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, rule)
}

// ToggleRule godoc
// @Summary      Toggle a workflow rule
// @Description  Flips the rule between active and inactive
// @Tags         workflows
// @Produce      json
// @Param        ruleId path string true "Rule ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.WorkflowRuleResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /workflows/{ruleId}/toggle [patch]
func (h *WorkflowHandler) ToggleRule(c *gin.Context) {
	ruleID, ok := pathUUID(c, "ruleId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	rule, err := h.ruleService.ToggleRule(c.Request.Context(), userID, ruleID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, rule)
}

// DeleteRule godoc
// @Summary      Delete a workflow rule
// @Tags         workflows
// @Produce      json
// @Param        ruleId path string true "Rule ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=map[string]string}
// @Failure      404 {object} response.ErrorResponse
// @Router       /workflows/{ruleId} [delete]
func (h *WorkflowHandler) DeleteRule(c *gin.Context) {
	ruleID, ok := pathUUID(c, "ruleId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.ruleService.DeleteRule(c.Request.Context(), userID, ruleID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Rule deleted successfully"})
}
