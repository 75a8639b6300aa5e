package websocket

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"glory-to-rome-backend/internal/delivery/dto"
	"glory-to-rome-backend/internal/game"
	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/logger"
	"glory-to-rome-backend/internal/repository"
)

// InboundMessage is one client submission routed through the hub
type InboundMessage struct {
	Connection *Connection
	Message    ClientMessage
}

// ClientMessage is the wire envelope clients send
type ClientMessage struct {
	Type   string             `json:"type"` // "join" | "action"
	GameID string             `json:"gameId,omitempty"`
	Viewer int                `json:"viewer,omitempty"`
	Action *action.GameAction `json:"action,omitempty"`
}

// ServerMessage is the wire envelope the hub sends back
type ServerMessage struct {
	Type    string        `json:"type"` // "state" | "error"
	Kind    string        `json:"kind,omitempty"`
	Message string        `json:"message,omitempty"`
	State   *dto.GameView `json:"state,omitempty"`
}

// Hub maintains active connections grouped by game and serializes all
// action submissions through each game's entry mutex, satisfying the
// engine's external-serialization contract.
type Hub struct {
	connections     map[*Connection]bool
	gameConnections map[string]map[*Connection]bool

	Register   chan *Connection
	Unregister chan *Connection
	Inbound    chan InboundMessage

	// Notify receives game IDs whose state changed; the hub loop
	// broadcasts asynchronously so the engine's mutex is never held
	// while fan-out runs
	Notify chan string

	repo repository.GameRepository

	mu     sync.RWMutex
	logger *zap.Logger
}

// NewHub creates a hub over the game repository
func NewHub(repo repository.GameRepository) *Hub {
	return &Hub{
		connections:     make(map[*Connection]bool),
		gameConnections: make(map[string]map[*Connection]bool),
		Register:        make(chan *Connection),
		Unregister:      make(chan *Connection),
		Inbound:         make(chan InboundMessage),
		Notify:          make(chan string, 64),
		repo:            repo,
		logger:          logger.Get(),
	}
}

// Broadcaster returns the callback the repository wires into each
// game's event bus. It only enqueues; fan-out happens on the hub loop.
func (h *Hub) Broadcaster() func(gameID string) {
	return func(gameID string) {
		select {
		case h.Notify <- gameID:
		default:
		}
	}
}

// Run starts the hub loop
func (h *Hub) Run(ctx context.Context) {
	h.logger.Info("starting websocket hub")

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("websocket hub stopping")
			h.closeAll()
			return

		case conn := <-h.Register:
			h.register(conn)

		case conn := <-h.Unregister:
			h.unregister(conn)

		case msg := <-h.Inbound:
			h.handleMessage(ctx, msg)

		case gameID := <-h.Notify:
			h.BroadcastState(gameID)
		}
	}
}

func (h *Hub) register(conn *Connection) {
	h.mu.Lock()
	h.connections[conn] = true
	h.mu.Unlock()

	h.logger.Debug("connection registered", zap.String("client_id", conn.ID))
}

func (h *Hub) unregister(conn *Connection) {
	h.mu.Lock()
	if _, ok := h.connections[conn]; ok {
		delete(h.connections, conn)
		if conn.GameID != "" {
			if peers, ok := h.gameConnections[conn.GameID]; ok {
				delete(peers, conn)
				if len(peers) == 0 {
					delete(h.gameConnections, conn.GameID)
				}
			}
		}
		conn.Close()
	}
	h.mu.Unlock()

	h.logger.Debug("connection unregistered", zap.String("client_id", conn.ID))
}

func (h *Hub) handleMessage(ctx context.Context, msg InboundMessage) {
	switch msg.Message.Type {
	case "join":
		h.handleJoin(ctx, msg)
	case "action":
		h.handleAction(ctx, msg)
	default:
		msg.Connection.Send(ServerMessage{
			Type: "error", Kind: "BadRequest",
			Message: "unknown message type " + msg.Message.Type,
		})
	}
}

func (h *Hub) handleJoin(ctx context.Context, msg InboundMessage) {
	entry, err := h.repo.Get(ctx, msg.Message.GameID)
	if err != nil {
		msg.Connection.Send(ServerMessage{Type: "error", Kind: "NotFound", Message: err.Error()})
		return
	}

	h.mu.Lock()
	msg.Connection.GameID = entry.ID
	msg.Connection.Viewer = msg.Message.Viewer
	if h.gameConnections[entry.ID] == nil {
		h.gameConnections[entry.ID] = make(map[*Connection]bool)
	}
	h.gameConnections[entry.ID][msg.Connection] = true
	h.mu.Unlock()

	entry.Mu.Lock()
	view := dto.NewGameView(entry.ID, entry.Game, msg.Message.Viewer)
	entry.Mu.Unlock()
	msg.Connection.Send(ServerMessage{Type: "state", State: &view})
}

func (h *Hub) handleAction(ctx context.Context, msg InboundMessage) {
	if msg.Message.Action == nil {
		msg.Connection.Send(ServerMessage{Type: "error", Kind: "BadRequest", Message: "missing action"})
		return
	}
	entry, err := h.repo.Get(ctx, msg.Connection.GameID)
	if err != nil {
		msg.Connection.Send(ServerMessage{Type: "error", Kind: "NotFound", Message: err.Error()})
		return
	}

	entry.Mu.Lock()
	err = entry.Game.Handle(*msg.Message.Action)
	entry.Mu.Unlock()

	if err != nil {
		msg.Connection.Send(ServerMessage{
			Type: "error", Kind: game.ErrorKind(err), Message: err.Error(),
		})
	}
	// Accepted actions broadcast via the event bus notification
}

// BroadcastState pushes a per-viewer state projection to every
// connection joined to a game. The hub loop calls it for game IDs
// queued by the Broadcaster callback.
func (h *Hub) BroadcastState(gameID string) {
	entry, err := h.repo.Get(context.Background(), gameID)
	if err != nil {
		return
	}

	h.mu.RLock()
	peers := make([]*Connection, 0, len(h.gameConnections[gameID]))
	for conn := range h.gameConnections[gameID] {
		peers = append(peers, conn)
	}
	h.mu.RUnlock()

	for _, conn := range peers {
		entry.Mu.Lock()
		view := dto.NewGameView(entry.ID, entry.Game, conn.Viewer)
		entry.Mu.Unlock()
		conn.Send(ServerMessage{Type: "state", State: &view})
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.connections {
		conn.Close()
	}
	h.connections = make(map[*Connection]bool)
	h.gameConnections = make(map[string]map[*Connection]bool)
}
