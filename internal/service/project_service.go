package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
	"task-board-api/internal/dto"
	"task-board-api/internal/repository"
	"task-board-api/internal/response"
)

// ProjectService defines the interface for project and membership management
type ProjectService interface {
	CreateProject(ctx context.Context, userID uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProject(ctx context.Context, userID, projectID uuid.UUID) (*dto.ProjectResponse, error)
	GetUserProjects(ctx context.Context, userID uuid.UUID) ([]*dto.ProjectResponse, error)
	AddMember(ctx context.Context, userID, projectID uuid.UUID, req *dto.AddMemberRequest) (*dto.MemberResponse, error)
	GetMembers(ctx context.Context, userID, projectID uuid.UUID) ([]*dto.MemberResponse, error)
	GetActivity(ctx context.Context, userID, projectID uuid.UUID, limit int) ([]*dto.ActivityResponse, error)
}

// projectServiceImpl is the implementation of ProjectService
type projectServiceImpl struct {
	projectRepo repository.ProjectRepository
	boardRepo   repository.BoardRepository
	columnRepo  repository.ColumnRepository
	activity    repository.ActivityRepository
	logger      *zap.Logger
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(
	projectRepo repository.ProjectRepository,
	boardRepo repository.BoardRepository,
	columnRepo repository.ColumnRepository,
	activity repository.ActivityRepository,
	logger *zap.Logger,
) ProjectService {
	return &projectServiceImpl{
		projectRepo: projectRepo,
		boardRepo:   boardRepo,
		columnRepo:  columnRepo,
		activity:    activity,
		logger:      logger,
	}
}

// CreateProject creates a project, enrolls the creator as OWNER, and sets up
// the default board with the standard columns.
func (s *projectServiceImpl) CreateProject(ctx context.Context, userID uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	project := &domain.Project{
		OwnerID:     userID,
		Name:        req.Name,
		Prefix:      strings.ToUpper(req.Prefix),
		Description: req.Description,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create project", err.Error())
	}

	member := &domain.ProjectMember{
		ProjectID: project.ID,
		UserID:    userID,
		RoleName:  domain.ProjectRoleOwner,
		JoinedAt:  time.Now(),
	}
	if err := s.projectRepo.AddMember(ctx, member); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to enroll project owner", err.Error())
	}

	board := &domain.Board{
		ProjectID: project.ID,
		Name:      req.Name,
		Position:  0,
		IsDefault: true,
	}
	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create default board", err.Error())
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

	s.logger.Info("Project created",
		zap.String("project_id", project.ID.String()),
		zap.String("prefix", project.Prefix),
	)
	return dto.ToProjectResponse(project), nil
}

// GetProject returns a project visible to its members
func (s *projectServiceImpl) GetProject(ctx context.Context, userID, projectID uuid.UUID) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load project", err.Error())
	}
	if err := requireProjectMember(ctx, s.projectRepo, projectID, userID); err != nil {
		return nil, err
	}
	return dto.ToProjectResponse(project), nil
}

// GetUserProjects lists the projects the user belongs to
func (s *projectServiceImpl) GetUserProjects(ctx context.Context, userID uuid.UUID) ([]*dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list projects", err.Error())
	}
	out := make([]*dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, dto.ToProjectResponse(p))
	}
	return out, nil
}

// AddMember adds a user to the project
func (s *projectServiceImpl) AddMember(ctx context.Context, userID, projectID uuid.UUID, req *dto.AddMemberRequest) (*dto.MemberResponse, error) {
	if err := requireProjectMember(ctx, s.projectRepo, projectID, userID); err != nil {
		return nil, err
	}

	already, err := s.projectRepo.IsProjectMember(ctx, projectID, req.UserID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check membership", err.Error())
	}
	if already {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "User is already a project member", "")
	}

	role := req.Role
	if role == "" {
		role = domain.ProjectRoleMember
	}
	member := &domain.ProjectMember{
		ProjectID: projectID,
		UserID:    req.UserID,
		RoleName:  role,
		JoinedAt:  time.Now(),
	}
	if err := s.projectRepo.AddMember(ctx, member); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to add member", err.Error())
	}

	recordActivity(ctx, s.activity, s.logger, projectID, userID,
		"MEMBER_ADDED", "PROJECT", projectID, "Added a project member",
		map[string]interface{}{"member_id": req.UserID.String(), "role": string(role)})

	return dto.ToMemberResponse(member), nil
}

// GetMembers lists the project's members
func (s *projectServiceImpl) GetMembers(ctx context.Context, userID, projectID uuid.UUID) ([]*dto.MemberResponse, error) {
	if err := requireProjectMember(ctx, s.projectRepo, projectID, userID); err != nil {
		return nil, err
	}
	members, err := s.projectRepo.FindMembersByProjectID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list members", err.Error())
	}
	out := make([]*dto.MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, dto.ToMemberResponse(m))
	}
	return out, nil
}

// GetActivity returns recent project activity, newest first
func (s *projectServiceImpl) GetActivity(ctx context.Context, userID, projectID uuid.UUID, limit int) ([]*dto.ActivityResponse, error) {
	if err := requireProjectMember(ctx, s.projectRepo, projectID, userID); err != nil {
		return nil, err
	}
	entries, err := s.activity.FindByProjectID(ctx, projectID, limit)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load activity", err.Error())
	}
	out := make([]*dto.ActivityResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ToActivityResponse(e))
	}
	return out, nil
}
