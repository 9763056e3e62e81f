package ws

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"task-board-api/internal/middleware"
	"task-board-api/internal/repository"
)

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Handler upgrades board event subscriptions
type Handler struct {
	hub         *Hub
	projectRepo repository.ProjectRepository
	jwtSecret   string
	logger      *zap.Logger
}

// NewHandler creates a websocket handler backed by the hub
func NewHandler(hub *Hub, projectRepo repository.ProjectRepository, jwtSecret string, logger *zap.Logger) *Handler {
	return &Handler{
		hub:         hub,
		projectRepo: projectRepo,
		jwtSecret:   jwtSecret,
		logger:      logger,
	}
}

// HandleBoardWebSocket godoc
// @Summary      Subscribe to board events
// @Description  Opens a websocket that streams task events for a project
// @Tags         websocket
// @Param        projectId path string true "Project ID"
// @Param        token query string true "JWT access token"
// @Success      101 {string} string "Switching Protocols"
// @Failure      401 {object} map[string]string
// @Router       /ws/projects/{projectId} [get]
func (h *Handler) HandleBoardWebSocket(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	// The browser websocket API cannot set headers, so the token rides
	// in a query parameter here.
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
		return
	}

	userID, err := middleware.ParseUserID(token, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	isMember, err := h.projectRepo.IsProjectMember(ctx, projectID, userID)
	if err != nil || !isMember {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not a project member"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade connection", zap.Error(err))
		return
	}

	client := &Client{
		conn:      conn,
		send:      make(chan []byte, 256),
		projectID: projectID,
		userID:    userID,
		hub:       h.hub,
	}

	h.hub.register <- client

	go client.writePump()
	go client.readPump()
}
