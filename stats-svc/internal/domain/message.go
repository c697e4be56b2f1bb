package domain

import "time"

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

const (
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// OrderEvent is the bot service's order lifecycle message.
type OrderEvent struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	OrderID      int       `json:"order_id"`
	RestaurantID int       `json:"restaurant_id"`
	Status       string    `json:"status"`
	Total        string    `json:"total"`
	Timestamp    time.Time `json:"timestamp"`
}
