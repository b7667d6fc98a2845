package ws

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// Handler upgrades HTTP requests to WebSocket connections and feeds room
// membership requests into the hub.
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHandler creates a WebSocket handler backed by the given hub.
// The dashboard is served from arbitrary origins in development, so the
// upgrader accepts all of them.
func NewHandler(hub *Hub, logger *slog.Logger) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger: logger.With("component", "ws_handler"),
	}
}

// ServeWS handles GET /ws. The connection stays registered until the client
// disconnects or a read fails; inbound frames only manage room membership.
func (h *Handler) ServeWS(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	h.hub.Register(conn)
	go h.readLoop(conn)
	return nil
}

func (h *Handler) readLoop(conn *websocket.Conn) {
	defer h.hub.Unregister(conn)

	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("ws read failed", "error", err)
			}
			return
		}

		switch msg.Action {
		case ActionJoinDriverRoom:
			h.hub.JoinDriverRoom(conn, msg.DriverID)
		case ActionLeaveDriverRoom:
			h.hub.LeaveDriverRoom(conn, msg.DriverID)
		default:
			h.logger.Warn("ws unknown action", "action", msg.Action)
		}
	}
}
