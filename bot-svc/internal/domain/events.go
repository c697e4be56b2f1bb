package domain

import (
	"time"
)

type EventKind string

const (
	EventText     EventKind = "text"
	EventContact  EventKind = "contact"
	EventLocation EventKind = "location"
	EventControl  EventKind = "control"
)

// Event is one inbound chat event, independent of the transport that produced it.
type Event struct {
	Kind       EventKind `json:"kind"`
	ChatID     int64     `json:"chat_id"`
	SenderID   int64     `json:"sender_id"`
	SenderName string    `json:"sender_name,omitempty"`
	Private    bool      `json:"private"`

	Text      string  `json:"text,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`

	// control events only
	Data        string `json:"data,omitempty"`
	CallbackID  string `json:"callback_id,omitempty"`
	MessageID   int    `json:"message_id,omitempty"`
	MessageText string `json:"message_text,omitempty"`
}

// Button is an inline control attached to a message.
type Button struct {
	Label string
	Data  string
	URL   string
}

// KeyButton is a reply keyboard button.
type KeyButton struct {
	Label           string
	RequestContact  bool
	RequestLocation bool
}

// Controls describes what is attached to an outgoing message. A nil *Controls
// leaves the chat's keyboard untouched.
type Controls struct {
	Inline      [][]Button
	Keyboard    [][]KeyButton
	RemoveReply bool
}

func InlineRow(buttons ...Button) []Button { return buttons }

func KeyRow(labels ...string) []KeyButton {
	row := make([]KeyButton, len(labels))
	for i, l := range labels {
		row[i] = KeyButton{Label: l}
	}
	return row
}

// NoControls strips inline controls when editing a message.
func NoControls() *Controls { return &Controls{} }

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

// OrderEvent is published to the event bus after every committed order change.
type OrderEvent struct {
	ID           string      `json:"id"`
	Type         string      `json:"type"`
	OrderID      int         `json:"order_id"`
	RestaurantID int         `json:"restaurant_id"`
	Status       OrderStatus `json:"status"`
	Total        string      `json:"total"`
	Timestamp    time.Time   `json:"timestamp"`
}
