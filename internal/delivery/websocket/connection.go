package websocket

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"glory-to-rome-backend/internal/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Connection wraps one websocket client
type Connection struct {
	ID     string
	GameID string
	Viewer int

	hub  *Hub
	conn *websocket.Conn
	send chan ServerMessage

	closeOnce sync.Once
	logger    *zap.Logger
}

// ServeWS upgrades an HTTP request into a hub-managed connection
func ServeWS(hub *Hub, w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Get().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	conn := &Connection{
		ID:     uuid.New().String(),
		Viewer: -1,
		hub:    hub,
		conn:   ws,
		send:   make(chan ServerMessage, 16),
		logger: logger.WithContext(zap.String("client_id", "")),
	}
	conn.logger = logger.WithContext(zap.String("client_id", conn.ID))

	hub.Register <- conn
	go conn.writePump()
	go conn.readPump()
}

// Send queues a message without blocking the hub; a slow client drops
// messages rather than stalling the loop
func (c *Connection) Send(msg ServerMessage) {
	select {
	case c.send <- msg:
	default:
		c.logger.Warn("send buffer full, dropping message")
	}
}

// Close shuts the connection down
func (c *Connection) Close() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}

func (c *Connection) readPump() {
	defer func() {
		c.hub.Unregister <- c
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("unexpected close", zap.Error(err))
			}
			return
		}
		c.hub.Inbound <- InboundMessage{Connection: c, Message: msg}
	}
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
