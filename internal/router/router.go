package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"task-board-api/internal/handler"
	"task-board-api/internal/metrics"
	"task-board-api/internal/middleware"
	"task-board-api/internal/repository"
	"task-board-api/internal/service"
	"task-board-api/internal/ws"
)

// Config carries the dependencies the router needs
type Config struct {
	DB             *gorm.DB
	Logger         *zap.Logger
	JWTSecret      string
	BasePath       string
	AllowedOrigins []string
	Metrics        *metrics.Metrics
	Notifier       service.Notifier
	EventQueue     service.EventQueue
	RuleCache      *service.RuleCache
	Hub            *ws.Hub
}

// Setup builds the gin engine with all routes and middleware
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Metrics(cfg.Metrics))

	// Repositories
	projectRepo := repository.NewProjectRepository(cfg.DB)
	boardRepo := repository.NewBoardRepository(cfg.DB)
	columnRepo := repository.NewColumnRepository(cfg.DB)
	taskRepo := repository.NewTaskRepository(cfg.DB)
	dependencyRepo := repository.NewDependencyRepository(cfg.DB)
	workflowRepo := repository.NewWorkflowRepository(cfg.DB)
	labelRepo := repository.NewLabelRepository(cfg.DB)
	sprintRepo := repository.NewSprintRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)
	activityRepo := repository.NewActivityRepository(cfg.DB)

	// Services
	var publisher service.BoardEventPublisher = service.NopPublisher{}
	if cfg.Hub != nil {
		publisher = cfg.Hub
	}

	ruleCache := cfg.RuleCache
	if ruleCache == nil {
		ruleCache = service.NewRuleCache(nil, cfg.Logger)
	}
	projectService := service.NewProjectService(projectRepo, boardRepo, columnRepo, activityRepo, cfg.Logger)
	boardService := service.NewBoardService(boardRepo, columnRepo, projectRepo, cfg.Metrics, cfg.Logger)
	taskService := service.NewTaskService(taskRepo, columnRepo, boardRepo, projectRepo, labelRepo, activityRepo,
		cfg.Notifier, cfg.EventQueue, publisher, cfg.Metrics, cfg.Logger)
	dependencyService := service.NewDependencyService(dependencyRepo, taskRepo, projectRepo, cfg.Logger)
	labelService := service.NewLabelService(labelRepo, projectRepo, cfg.Logger)
	workflowService := service.NewWorkflowRuleService(workflowRepo, projectRepo, ruleCache, cfg.Logger)
	sprintService := service.NewSprintService(sprintRepo, projectRepo, cfg.Logger)
	commentService := service.NewCommentService(commentRepo, taskRepo, projectRepo, cfg.Notifier, cfg.EventQueue, cfg.Logger)

	// Handlers
	projectHandler := handler.NewProjectHandler(projectService)
	boardHandler := handler.NewBoardHandler(boardService)
	taskHandler := handler.NewTaskHandler(taskService)
	dependencyHandler := handler.NewDependencyHandler(dependencyService)
	labelHandler := handler.NewLabelHandler(labelService)
	workflowHandler := handler.NewWorkflowHandler(workflowService)
	sprintHandler := handler.NewSprintHandler(sprintService)
	commentHandler := handler.NewCommentHandler(commentService)

	base := r.Group(cfg.BasePath)

	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	metricsHandler := gin.WrapH(promhttp.Handler())

	base.GET("/health", healthHandler)
	base.GET("/metrics", metricsHandler)

	// Root-path probes stay reachable when a base path is configured
	if cfg.BasePath != "" {
		r.GET("/health", healthHandler)
		r.GET("/metrics", metricsHandler)
	}

	if cfg.Hub != nil {
		wsHandler := ws.NewHandler(cfg.Hub, projectRepo, cfg.JWTSecret, cfg.Logger)
		base.GET("/ws/projects/:projectId", wsHandler.HandleBoardWebSocket)
	}

	api := base.Group("")
	api.Use(middleware.Auth(cfg.JWTSecret))
	{
		projects := api.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.GetUserProjects)
			projects.GET("/:projectId", projectHandler.GetProject)
			projects.POST("/:projectId/members", projectHandler.AddMember)
			projects.GET("/:projectId/members", projectHandler.GetMembers)
			projects.GET("/:projectId/activity", projectHandler.GetActivity)
			projects.GET("/:projectId/boards", boardHandler.GetProjectBoards)
			projects.GET("/:projectId/tasks", taskHandler.GetProjectTasks)
			projects.POST("/:projectId/labels", labelHandler.CreateLabel)
			projects.GET("/:projectId/labels", labelHandler.GetProjectLabels)
			projects.POST("/:projectId/workflows", workflowHandler.CreateRule)
			projects.GET("/:projectId/workflows", workflowHandler.GetProjectRules)
			projects.POST("/:projectId/sprints", sprintHandler.CreateSprint)
			projects.GET("/:projectId/sprints", sprintHandler.GetProjectSprints)
		}

		boards := api.Group("/boards")
		{
			boards.POST("", boardHandler.CreateBoard)
			boards.GET("/:boardId", boardHandler.GetBoard)
			boards.DELETE("/:boardId", boardHandler.DeleteBoard)
			boards.POST("/:boardId/columns", boardHandler.AddColumn)
			boards.PUT("/:boardId/columns/reorder", boardHandler.ReorderColumns)
		}

		columns := api.Group("/columns")
		{
			columns.GET("/:columnId/tasks", taskHandler.GetColumnTasks)
			columns.DELETE("/:columnId", boardHandler.RemoveColumn)
		}

		tasks := api.Group("/tasks")
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:taskId", taskHandler.GetTask)
			tasks.PUT("/:taskId", taskHandler.UpdateTask)
			tasks.DELETE("/:taskId", taskHandler.DeleteTask)
			tasks.PUT("/:taskId/move", taskHandler.MoveTask)
			tasks.POST("/:taskId/assignees", taskHandler.AssignUser)
			tasks.DELETE("/:taskId/assignees/:userId", taskHandler.UnassignUser)
			tasks.POST("/:taskId/labels/:labelId", taskHandler.AddLabel)
			tasks.DELETE("/:taskId/labels/:labelId", taskHandler.RemoveLabel)
			tasks.POST("/:taskId/dependencies", dependencyHandler.AddDependency)
			tasks.GET("/:taskId/dependencies", dependencyHandler.GetTaskDependencies)
			tasks.GET("/:taskId/dependencies/blocking", dependencyHandler.GetBlocking)
			tasks.GET("/:taskId/dependencies/blocked-by", dependencyHandler.GetBlockedBy)
			tasks.GET("/:taskId/blockers", dependencyHandler.GetBlockers)
			tasks.POST("/:taskId/comments", commentHandler.AddComment)
			tasks.GET("/:taskId/comments", commentHandler.GetTaskComments)
		}

		api.DELETE("/dependencies/:dependencyId", dependencyHandler.RemoveDependency)
		api.DELETE("/labels/:labelId", labelHandler.DeleteLabel)
		api.PUT("/comments/:commentId", commentHandler.UpdateComment)
		api.DELETE("/comments/:commentId", commentHandler.DeleteComment)

		sprints := api.Group("/sprints")
		{
			sprints.POST("/:sprintId/start", sprintHandler.StartSprint)
			sprints.POST("/:sprintId/complete", sprintHandler.CompleteSprint)
		}

		workflows := api.Group("/workflows")
		{
			workflows.PUT("/:ruleId", workflowHandler.UpdateRule)
			workflows.PATCH("/:ruleId/toggle", workflowHandler.ToggleRule)
			workflows.DELETE("/:ruleId", workflowHandler.DeleteRule)
		}
	}

	return r
}
