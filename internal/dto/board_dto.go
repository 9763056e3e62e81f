package dto

import (
	"time"

	"github.com/google/uuid"

	"task-board-api/internal/domain"
)

// CreateBoardRequest represents the request to create a board.
// New boards start with the three default columns (To Do / In Progress / Done).
type CreateBoardRequest struct {
	ProjectID   uuid.UUID `json:"projectId" binding:"required"`
	Name        string    `json:"name" binding:"required,min=1,max=255"`
	Description string    `json:"description" binding:"max=2000"`
}

// AddColumnRequest represents the request to append a column to a board
type AddColumnRequest struct {
	Name         string            `json:"name" binding:"required,min=1,max=100"`
	Color        string            `json:"color" binding:"omitempty,len=7"`
	WipLimit     int               `json:"wipLimit" binding:"omitempty,min=0"`
	SemanticRole domain.ColumnRole `json:"semanticRole" binding:"omitempty,oneof=NONE IN_PROGRESS IN_REVIEW DONE"`
}

// ReorderColumnsRequest represents the request to reorder a board's columns
type ReorderColumnsRequest struct {
	ColumnIDs []uuid.UUID `json:"columnIds" binding:"required,min=1"`
}

// ColumnResponse represents a board column
type ColumnResponse struct {
	ID           uuid.UUID         `json:"columnId"`
	BoardID      uuid.UUID         `json:"boardId"`
	Name         string            `json:"name"`
	Color        string            `json:"color"`
	Position     int               `json:"position"`
	WipLimit     int               `json:"wipLimit"`
	IsDoneColumn bool              `json:"isDoneColumn"`
	SemanticRole domain.ColumnRole `json:"semanticRole"`
	Tasks        []TaskResponse    `json:"tasks,omitempty"`
}

// BoardResponse represents a board with its ordered columns
type BoardResponse struct {
	ID          uuid.UUID        `json:"boardId"`
	ProjectID   uuid.UUID        `json:"projectId"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Position    int              `json:"position"`
	IsDefault   bool             `json:"isDefault"`
	Columns     []ColumnResponse `json:"columns"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// ToColumnResponse converts a domain column to its response representation
func ToColumnResponse(column *domain.BoardColumn) ColumnResponse {
	resp := ColumnResponse{
		ID:           column.ID,
		BoardID:      column.BoardID,
		Name:         column.Name,
		Color:        column.Color,
		Position:     column.Position,
		WipLimit:     column.WipLimit,
		IsDoneColumn: column.IsDoneColumn,
		SemanticRole: column.SemanticRole,
	}
	for i := range column.Tasks {
		resp.Tasks = append(resp.Tasks, ToTaskResponse(&column.Tasks[i]))
	}
	return resp
}

// ToBoardResponse converts a domain board to its response representation
func ToBoardResponse(board *domain.Board) *BoardResponse {
	resp := &BoardResponse{
		ID:          board.ID,
		ProjectID:   board.ProjectID,
		Name:        board.Name,
		Description: board.Description,
		Position:    board.Position,
		IsDefault:   board.IsDefault,
		Columns:     make([]ColumnResponse, 0, len(board.Columns)),
		CreatedAt:   board.CreatedAt,
		UpdatedAt:   board.UpdatedAt,
	}
	for i := range board.Columns {
		resp.Columns = append(resp.Columns, ToColumnResponse(&board.Columns[i]))
	}
	return resp
}
