package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
	"task-board-api/internal/dto"
	"task-board-api/internal/metrics"
	"task-board-api/internal/repository"
	"task-board-api/internal/response"
)

// defaultColumns are created on every new board. The last one is the
// terminal column of the board.
var defaultColumns = []struct {
	name  string
	color string
	role  domain.ColumnRole
}{
	{"To Do", "#3b82f6", domain.ColumnRoleNone},
	{"In Progress", "#f59e0b", domain.ColumnRoleInProgress},
	{"Done", "#22c55e", domain.ColumnRoleDone},
}

// BoardService defines the interface for board and column structure management
type BoardService interface {
	CreateBoard(ctx context.Context, userID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetBoard(ctx context.Context, userID, boardID uuid.UUID) (*dto.BoardResponse, error)
	GetProjectBoards(ctx context.Context, userID, projectID uuid.UUID) ([]*dto.BoardResponse, error)
	DeleteBoard(ctx context.Context, userID, boardID uuid.UUID) error
	AddColumn(ctx context.Context, userID, boardID uuid.UUID, req *dto.AddColumnRequest) (*dto.BoardResponse, error)
	ReorderColumns(ctx context.Context, userID, boardID uuid.UUID, columnIDs []uuid.UUID) error
	RemoveColumn(ctx context.Context, userID, columnID uuid.UUID) error
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	boardRepo   repository.BoardRepository
	columnRepo  repository.ColumnRepository
	projectRepo repository.ProjectRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(
	boardRepo repository.BoardRepository,
	columnRepo repository.ColumnRepository,
	projectRepo repository.ProjectRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardService {
	return &boardServiceImpl{
		boardRepo:   boardRepo,
		columnRepo:  columnRepo,
		projectRepo: projectRepo,
		metrics:     m,
		logger:      logger,
	}
}

// CreateBoard creates a board with the three default columns
func (s *boardServiceImpl) CreateBoard(ctx context.Context, userID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	if err := requireProjectMember(ctx, s.projectRepo, req.ProjectID, userID); err != nil {
		return nil, err
	}

	if _, err := s.projectRepo.FindByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify project", err.Error())
	}

	existing, err := s.boardRepo.FindByProjectID(ctx, req.ProjectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list project boards", err.Error())
	}

	board := &domain.Board{
		ProjectID:   req.ProjectID,
		Name:        req.Name,
		Description: req.Description,
		Position:    len(existing),
		IsDefault:   false,
	}
	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create board", err.Error())
	}

	for i, def := range defaultColumns {
		column := &domain.BoardColumn{
			BoardID:      board.ID,
			Name:         def.name,
			Color:        def.color,
			Position:     i,
			IsDoneColumn: i == len(defaultColumns)-1,
			SemanticRole: def.role,
		}
		if err := s.columnRepo.Create(ctx, column); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create default column", err.Error())
		}
	}

	s.metrics.IncrementBoardCreated()
	s.logger.Info("Board created",
		zap.String("board_id", board.ID.String()),
		zap.String("project_id", req.ProjectID.String()),
	)

	created, err := s.boardRepo.FindByIDWithColumns(ctx, board.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load created board", err.Error())
	}
	return dto.ToBoardResponse(created), nil
}

// GetBoard returns a board with its columns ordered by position
func (s *boardServiceImpl) GetBoard(ctx context.Context, userID, boardID uuid.UUID) (*dto.BoardResponse, error) {
	board, err := s.boardRepo.FindByIDWithColumns(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}
	if err := requireProjectMember(ctx, s.projectRepo, board.ProjectID, userID); err != nil {
		return nil, err
	}
	return dto.ToBoardResponse(board), nil
}

// GetProjectBoards returns all boards of a project ordered by position
func (s *boardServiceImpl) GetProjectBoards(ctx context.Context, userID, projectID uuid.UUID) ([]*dto.BoardResponse, error) {
	if err := requireProjectMember(ctx, s.projectRepo, projectID, userID); err != nil {
		return nil, err
	}
	boards, err := s.boardRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list boards", err.Error())
	}
	out := make([]*dto.BoardResponse, 0, len(boards))
	for _, b := range boards {
		out = append(out, dto.ToBoardResponse(b))
	}
	return out, nil
}

// DeleteBoard removes a board. The project's default board cannot be deleted.
func (s *boardServiceImpl) DeleteBoard(ctx context.Context, userID, boardID uuid.UUID) error {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}
	if err := requireProjectMember(ctx, s.projectRepo, board.ProjectID, userID); err != nil {
		return err
	}
	if board.IsDefault {
		return response.NewAppError(response.ErrCodeInvalidState, "Cannot delete the default board", "")
	}
	if err := s.boardRepo.Delete(ctx, boardID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete board", err.Error())
	}
	return nil
}

// AddColumn appends a column to the end of the board's column order
func (s *boardServiceImpl) AddColumn(ctx context.Context, userID, boardID uuid.UUID, req *dto.AddColumnRequest) (*dto.BoardResponse, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}
	if err := requireProjectMember(ctx, s.projectRepo, board.ProjectID, userID); err != nil {
		return nil, err
	}

	existing, err := s.columnRepo.FindByBoardID(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list board columns", err.Error())
	}

	color := req.Color
	if color == "" {
		color = "#94a3b8"
	}
	role := req.SemanticRole
	if role == "" {
		role = domain.ColumnRoleNone
	}

	column := &domain.BoardColumn{
		BoardID:      boardID,
		Name:         req.Name,
		Color:        color,
		Position:     len(existing),
		WipLimit:     req.WipLimit,
		IsDoneColumn: role == domain.ColumnRoleDone,
		SemanticRole: role,
	}
	if err := s.columnRepo.Create(ctx, column); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create column", err.Error())
	}

	updated, err := s.boardRepo.FindByIDWithColumns(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}
	return dto.ToBoardResponse(updated), nil
}

// ReorderColumns rewrites every listed column's position to its index in the
// supplied sequence. The rewrite is a sequence of independent saves; a failure
// mid-sequence leaves the earlier writes in place.
func (s *boardServiceImpl) ReorderColumns(ctx context.Context, userID, boardID uuid.UUID, columnIDs []uuid.UUID) error {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}
	if err := requireProjectMember(ctx, s.projectRepo, board.ProjectID, userID); err != nil {
		return err
	}

	for i, columnID := range columnIDs {
		column, err := s.columnRepo.FindByID(ctx, columnID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewAppError(response.ErrCodeNotFound, "Column not found", columnID.String())
			}
			return response.NewAppError(response.ErrCodeInternal, "Failed to load column", err.Error())
		}
		if column.BoardID != boardID {
			return response.NewAppError(response.ErrCodeNotFound, "Column does not belong to this board", columnID.String())
		}
		column.Position = i
		if err := s.columnRepo.Update(ctx, column); err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to update column position", err.Error())
		}
	}
	return nil
}

// RemoveColumn deletes an empty column. Positions of the remaining columns
// are left as-is; gaps between column positions are permitted.
func (s *boardServiceImpl) RemoveColumn(ctx context.Context, userID, columnID uuid.UUID) error {
	column, err := s.columnRepo.FindByID(ctx, columnID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Column not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load column", err.Error())
	}

	board, err := s.boardRepo.FindByID(ctx, column.BoardID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}
	if err := requireProjectMember(ctx, s.projectRepo, board.ProjectID, userID); err != nil {
		return err
	}

	count, err := s.columnRepo.CountTasks(ctx, columnID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to count column tasks", err.Error())
	}
	if count > 0 {
		return response.NewAppError(response.ErrCodeInvalidState,
			"Cannot delete a column that contains tasks. Move tasks first.", "")
	}

	if err := s.columnRepo.Delete(ctx, columnID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete column", err.Error())
	}
	return nil
}
