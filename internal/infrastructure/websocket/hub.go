package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"dpmarketpro/pkg/logger"
)

// Client is one connected session-event listener. Listeners are anonymous:
// the stream only announces that a sign-in or sign-out happened, the same
// signal a browser tab uses to refresh its navbar.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub fans session lifecycle events out to every connected listener.
type Hub struct {
	clients    map[*Client]struct{}
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	mutex      sync.RWMutex
}

type sessionEvent struct {
	Event string    `json:"event"`
	UID   string    `json:"uid"`
	At    time.Time `json:"at"`
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte),
	}
}

// Start runs the hub's main loop in a goroutine.
func (h *Hub) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-h.Register:
				h.mutex.Lock()
				h.clients[client] = struct{}{}
				h.mutex.Unlock()
				logger.Debug("Session listener registered (%d active)", h.count())

			case client := <-h.Unregister:
				h.mutex.Lock()
				if _, ok := h.clients[client]; ok {
					delete(h.clients, client)
					close(client.Send)
				}
				h.mutex.Unlock()
				logger.Debug("Session listener unregistered (%d active)", h.count())

			case message := <-h.broadcast:
				h.mutex.Lock()
				for client := range h.clients {
					select {
					case client.Send <- message:
					default:
						// Stalled listener; drop it rather than block
						// everyone else's updates.
						close(client.Send)
						delete(h.clients, client)
					}
				}
				h.mutex.Unlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

func (h *Hub) count() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// Publish satisfies the session event sink used by the auth flows.
func (h *Hub) Publish(event, uid string) {
	payload, err := json.Marshal(sessionEvent{
		Event: event,
		UID:   uid,
		At:    time.Now(),
	})
	if err != nil {
		logger.Error("Failed to encode session event: %v", err)
		return
	}
	h.broadcast <- payload
}

// ReadPump drains the connection until the peer goes away. Listeners never
// send anything meaningful; reading is only how we notice the close.
func (c *Client) ReadPump(h *Hub) {
	defer func() {
		h.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Debug("Session listener read error: %v", err)
			}
			break
		}
	}
}

// WritePump sends queued events to the WebSocket connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Debug("Session listener write error: %v", err)
			return
		}
	}
}
