package ws

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Hub stores all active WebSocket connections and their room memberships.
// Rooms group connections interested in a single driver's notifications;
// updates go to everyone.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	rooms   map[string]map[*websocket.Conn]struct{}
	logger  *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
		rooms:   make(map[string]map[*websocket.Conn]struct{}),
		logger:  logger.With("component", "ws_hub"),
	}
}

// Register adds a new connection to the hub.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
	h.logger.Info("ws client connected", "clients", len(h.clients))
}

// Unregister removes the connection from the hub and every room, then
// closes it.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(conn)
}

// JoinDriverRoom subscribes the connection to the given driver's notifications.
func (h *Hub) JoinDriverRoom(conn *websocket.Conn, driverID string) {
	if driverID == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	room := driverRoom(driverID)
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*websocket.Conn]struct{})
	}
	h.rooms[room][conn] = struct{}{}
	h.logger.Info("ws client joined room", "room", room)
}

// LeaveDriverRoom unsubscribes the connection from the driver's room.
func (h *Hub) LeaveDriverRoom(conn *websocket.Conn, driverID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room := driverRoom(driverID)
	delete(h.rooms[room], conn)
	if len(h.rooms[room]) == 0 {
		delete(h.rooms, room)
	}
	h.logger.Info("ws client left room", "room", room)
}

// BroadcastUpdate sends an update event to every connected client.
// Connections that fail to accept the write are dropped.
func (h *Hub) BroadcastUpdate(updateType string, data any) {
	msg := UpdateMessage{
		Event:     EventUpdate,
		Type:      updateType,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(msg); err != nil {
			h.logger.Warn("ws broadcast failed, dropping client", "error", err)
			h.dropLocked(conn)
		}
	}
}

// NotifyDriver sends a notification to every connection in the driver's room.
// Nothing happens when the room is empty.
func (h *Hub) NotifyDriver(driverID string, message string, data any) {
	msg := NotificationMessage{
		Event:     EventNotification,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.rooms[driverRoom(driverID)] {
		if err := conn.WriteJSON(msg); err != nil {
			h.logger.Warn("ws notification failed, dropping client", "error", err)
			h.dropLocked(conn)
		}
	}
}

// RoomMembers returns the number of connections subscribed to the driver's room.
func (h *Hub) RoomMembers(driverID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[driverRoom(driverID)])
}

// ConnectedClients returns the number of registered connections.
func (h *Hub) ConnectedClients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// dropLocked removes the connection from the hub and every room.
// Caller must hold h.mu.
func (h *Hub) dropLocked(conn *websocket.Conn) {
	_ = conn.Close()
	delete(h.clients, conn)
	for room, members := range h.rooms {
		delete(members, conn)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}

func driverRoom(driverID string) string {
	return "driver_" + driverID
}
