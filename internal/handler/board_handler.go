package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-board-api/internal/dto"
	"task-board-api/internal/response"
	"task-board-api/internal/service"
)

// BoardHandler handles board and column endpoints
type BoardHandler struct {
	boardService service.BoardService
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(boardService service.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

// CreateBoard godoc
// @Summary      Create a board
// @Description  Creates a board in a project with the default To Do / In Progress / Done columns
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBoardRequest true "Board creation request"
// @Success      201 {object} response.SuccessResponse{data=dto.BoardResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /boards [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	board, err := h.boardService.CreateBoard(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, board)
}

// GetBoard godoc
// @Summary      Get a board
// @Description  Returns a board with its columns ordered by position
// @Tags         boards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /boards/{boardId} [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	boardID, ok := pathUUID(c, "boardId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	board, err := h.boardService.GetBoard(c.Request.Context(), userID, boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// GetProjectBoards godoc
// @Summary      List project boards
// @Tags         boards
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.BoardResponse}
// @Failure      403 {object} response.ErrorResponse
// @Router       /projects/{projectId}/boards [get]
func (h *BoardHandler) GetProjectBoards(c *gin.Context) {
	projectID, ok := pathUUID(c, "projectId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boards, err := h.boardService.GetProjectBoards(c.Request.Context(), userID, projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, boards)
}

// DeleteBoard godoc
// @Summary      Delete a board
// @Description  Deletes a board. The project's default board cannot be deleted.
// @Tags         boards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=map[string]string}
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Router       /boards/{boardId} [delete]
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	boardID, ok := pathUUID(c, "boardId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.boardService.DeleteBoard(c.Request.Context(), userID, boardID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Board deleted successfully"})
}

// AddColumn godoc
// @Summary      Add a column
// @Description  Appends a column to the end of the board's column order
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.AddColumnRequest true "Column creation request"
// @Success      201 {object} response.SuccessResponse{data=dto.BoardResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /boards/{boardId}/columns [post]
func (h *BoardHandler) AddColumn(c *gin.Context) {
	boardID, ok := pathUUID(c, "boardId")
	if !ok {
		return
	}

	var req dto.AddColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	board, err := h.boardService.AddColumn(c.Request.Context(), userID, boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, board)
}

// ReorderColumns godoc
// @Summary      Reorder columns
// @Description  Rewrites each listed column's position to its index in the supplied order
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.ReorderColumnsRequest true "Ordered column IDs"
// @Success      200 {object} response.SuccessResponse{data=map[string]string}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /boards/{boardId}/columns/reorder [put]
func (h *BoardHandler) ReorderColumns(c *gin.Context) {
	boardID, ok := pathUUID(c, "boardId")
	if !ok {
		return
	}

	var req dto.ReorderColumnsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.boardService.ReorderColumns(c.Request.Context(), userID, boardID, req.ColumnIDs); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Columns reordered successfully"})
}

// RemoveColumn godoc
// @Summary      Remove a column
// @Description  Deletes an empty column. Columns that still contain tasks are rejected.
// @Tags         boards
// @Produce      json
// @Param        columnId path string true "Column ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=map[string]string}
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Router       /columns/{columnId} [delete]
func (h *BoardHandler) RemoveColumn(c *gin.Context) {
	columnID, ok := pathUUID(c, "columnId")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.boardService.RemoveColumn(c.Request.Context(), userID, columnID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Column removed successfully"})
}
