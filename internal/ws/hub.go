package ws

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"task-board-api/internal/service"
)

// boardMessage is one encoded event on its way to a project's subscribers
type boardMessage struct {
	projectID uuid.UUID
	payload   []byte
}

// Hub fans board events out to the websocket clients subscribed to each
// project. It implements service.BoardEventPublisher. All sends to client
// channels happen inside run, the same goroutine that closes them on
// unregister, so a disconnecting client can never panic a publisher.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]bool
	clientsMu  sync.RWMutex
	register   chan *Client
	unregister chan *Client
	broadcast  chan boardMessage
	logger     *zap.Logger
}

// NewHub creates a hub and starts its event loop
func NewHub(logger *zap.Logger) *Hub {
	h := &Hub{
		clients:    make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan boardMessage, 64),
		logger:     logger,
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.clientsMu.Lock()
			if h.clients[client.projectID] == nil {
				h.clients[client.projectID] = make(map[*Client]bool)
			}
			h.clients[client.projectID][client] = true
			h.clientsMu.Unlock()

			h.logger.Info("Board client connected",
				zap.String("project_id", client.projectID.String()),
				zap.String("user_id", client.userID.String()),
			)

		case client := <-h.unregister:
			h.clientsMu.Lock()
			h.dropClient(client)
			h.clientsMu.Unlock()

			h.logger.Info("Board client disconnected",
				zap.String("project_id", client.projectID.String()),
				zap.String("user_id", client.userID.String()),
			)

		case msg := <-h.broadcast:
			h.clientsMu.Lock()
			for client := range h.clients[msg.projectID] {
				select {
				case client.send <- msg.payload:
				default:
					// Slow client, drop it rather than block the loop
					h.dropClient(client)
				}
			}
			h.clientsMu.Unlock()
		}
	}
}

// dropClient removes a client and closes its send channel. Callers hold
// clientsMu; the membership check makes a second drop of the same client a
// no-op instead of a double close.
func (h *Hub) dropClient(client *Client) {
	clients, ok := h.clients[client.projectID]
	if !ok {
		return
	}
	if _, exists := clients[client]; !exists {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.clients, client.projectID)
	}
}

// Publish hands the event to the hub loop for fan-out. Fire-and-forget: when
// the hub's own buffer is full the event is dropped and logged.
func (h *Hub) Publish(event service.BoardEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Warn("Failed to encode board event", zap.Error(err))
		return
	}

	select {
	case h.broadcast <- boardMessage{projectID: event.ProjectID, payload: payload}:
	default:
		h.logger.Warn("Board event dropped, hub busy",
			zap.String("project_id", event.ProjectID.String()),
			zap.String("type", event.Type),
		)
	}
}

// SubscriberCount returns the number of clients subscribed to a project
func (h *Hub) SubscriberCount(projectID uuid.UUID) int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients[projectID])
}
