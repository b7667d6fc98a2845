// Package ws pushes live dispatch events to connected dashboard and driver
// clients over WebSocket. All state changes flow one way: transports mutate
// state through commands, then publish the refreshed read models here.
package ws

import "time"

// Event names for outbound messages.
const (
	// EventUpdate carries a board-wide state change to every connected client.
	EventUpdate = "update"
	// EventNotification carries a message targeted at a single driver's room.
	EventNotification = "notification"
)

// Client request actions.
const (
	// ActionJoinDriverRoom subscribes the connection to one driver's notifications.
	ActionJoinDriverRoom = "join_driver_room"
	// ActionLeaveDriverRoom unsubscribes the connection from the driver's room.
	ActionLeaveDriverRoom = "leave_driver_room"
)

// UpdateMessage is broadcast to all clients whenever dispatch state changes.
// Type names the kind of change (for example "driver_created" or
// "package_assigned") and Data carries the affected read model.
type UpdateMessage struct {
	Event     string    `json:"event"`
	Type      string    `json:"type"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// NotificationMessage is sent to a single driver's room, typically when a
// package is assigned to or completed by that driver.
type NotificationMessage struct {
	Event     string    `json:"event"`
	Message   string    `json:"message"`
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ClientMessage is the inbound frame clients send to manage room membership.
type ClientMessage struct {
	Action   string `json:"action"`
	DriverID string `json:"driver_id"`
}
