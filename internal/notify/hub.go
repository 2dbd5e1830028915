package notify

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	messageTypeSessionUpdated   = "session_updated"
	messageTypeRoleStateChanged = "role_state_changed"

	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second // must be less than pongWait
)

// message is the envelope pushed to websocket clients
type message struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId,omitempty"`
}

// client is one websocket subscriber, watching a single session
type client struct {
	conn      *websocket.Conn
	sessionID string
	userID    string
	send      chan []byte
}

// Config holds configuration for the websocket hub
type Config struct {
	// SendBuffer is the per-client outbound queue size
	SendBuffer int
}

// Hub fans game events out to websocket clients. It implements Notifier.
// Messages for slow clients are dropped rather than blocking the game loop.
type Hub struct {
	mu         sync.RWMutex
	clients    map[*client]struct{}
	sendBuffer int
	upgrader   websocket.Upgrader
}

// NewHub creates a new websocket hub
func NewHub(cfg *Config) (*Hub, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	sendBuffer := cfg.SendBuffer
	if sendBuffer <= 0 {
		sendBuffer = 16
	}

	return &Hub{
		clients:    make(map[*client]struct{}),
		sendBuffer: sendBuffer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}, nil
}

// SessionUpdated broadcasts to every client watching the session
func (h *Hub) SessionUpdated(sessionID string) {
	h.publish(message{
		Type:      messageTypeSessionUpdated,
		SessionID: sessionID,
	})
}

// RoleStateChanged targets the one client identified by the user ID
func (h *Hub) RoleStateChanged(sessionID, userID string) {
	h.publish(message{
		Type:      messageTypeRoleStateChanged,
		SessionID: sessionID,
		UserID:    userID,
	})
}

func (h *Hub) publish(msg message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("notify: failed to marshal message: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients {
		if c.sessionID != msg.SessionID {
			continue
		}
		if msg.UserID != "" && c.userID != msg.UserID {
			continue
		}

		select {
		case c.send <- payload:
		default:
			// Client is not keeping up; drop the message
		}
	}
}

// ServeHTTP upgrades the connection and subscribes it to one session.
// Expected query parameters: session_id (required), user_id (optional,
// needed to receive targeted messages).
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("notify: websocket upgrade failed: %v", err)
		return
	}

	c := &client{
		conn:      conn,
		sessionID: sessionID,
		userID:    r.URL.Query().Get("user_id"),
		send:      make(chan []byte, h.sendBuffer),
	}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	go h.writeLoop(c)
	go h.readLoop(c)
}

// writeLoop pushes queued messages and pings to the client
func (h *Hub) writeLoop(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readLoop drains the connection to keep pong handling alive and detects
// disconnects
func (h *Hub) readLoop(c *client) {
	defer h.drop(c)

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()

	c.conn.Close()
}
