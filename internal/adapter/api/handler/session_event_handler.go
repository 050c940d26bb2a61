package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "dpmarketpro/internal/infrastructure/websocket"
	"dpmarketpro/pkg/errors"
)

// SessionEventHandler upgrades clients onto the session-event stream. The
// stream carries sign-in/sign-out notifications only, so listeners need no
// authentication of their own.
type SessionEventHandler struct {
	hub *ws.Hub
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewSessionEventHandler(hub *ws.Hub) *SessionEventHandler {
	return &SessionEventHandler{
		hub: hub,
	}
}

func (h *SessionEventHandler) HandleEvents(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &ws.Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}

	h.hub.Register <- client

	go client.ReadPump(h.hub)
	go client.WritePump()

	return nil
}
