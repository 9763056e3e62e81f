package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"task-board-api/internal/dto"
	"task-board-api/internal/response"
	"task-board-api/internal/service"
)

// ProjectHandler handles project and membership endpoints
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// CreateProject godoc
// @Summary      Create a project
// @Description  Creates a project with its default board and enrolls the creator as OWNER
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateProjectRequest true "Project creation request"
// @Success      201 {object} response.SuccessResponse{data=dto.ProjectResponse}
// @Failure      400 {object} response.ErrorResponse
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, project)
}

// GetProject godoc
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.ProjectResponse}
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /projects/{projectId} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), userID, projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, project)
}

// GetUserProjects godoc
// @Summary      List my projects
// @Tags         projects
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.ProjectResponse}
// @Router       /projects [get]
func (h *ProjectHandler) GetUserProjects(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projects, err := h.projectService.GetUserProjects(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, projects)
}

// AddMember godoc
// @Summary      Add a project member
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        request body dto.AddMemberRequest true "Member to add"
// @Success      201 {object} response.SuccessResponse{data=dto.MemberResponse}
// @Failure      403 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse "Already a member"
// @Router       /projects/{projectId}/members [post]
func (h *ProjectHandler) AddMember(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	member, err := h.projectService.AddMember(c.Request.Context(), userID, projectID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, member)
}

// GetMembers godoc
// @Summary      List project members
// @Tags         projects
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.MemberResponse}
// @Failure      403 {object} response.ErrorResponse
// @Router       /projects/{projectId}/members [get]
func (h *ProjectHandler) GetMembers(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	members, err := h.projectService.GetMembers(c.Request.Context(), userID, projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, members)
}

// GetActivity godoc
// @Summary      Get project activity
// @Description  Returns recent activity log entries, newest first
// @Tags         projects
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        limit query int false "Maximum entries to return (default 50)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.ActivityResponse}
// @Failure      403 {object} response.ErrorResponse
// @Router       /projects/{projectId}/activity [get]
func (h *ProjectHandler) GetActivity(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	activity, err := h.projectService.GetActivity(c.Request.Context(), userID, projectID, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, activity)
}
