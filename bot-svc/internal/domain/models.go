package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID          int    `json:"id"`
	ChatID      int64  `json:"telegram_id"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

type Address struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Name      string    `json:"address_name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

type Restaurant struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type FoodSummary struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type FoodDetail struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Image          string          `json:"image,omitempty"`
	Price          decimal.Decimal `json:"price"`
	RestaurantName string          `json:"restaurant_name"`
	CategoryName   string          `json:"category_name"`
}

// CartLine is a cart row joined with its food and restaurant.
type CartLine struct {
	ID               int             `json:"id"`
	FoodID           int             `json:"food_id"`
	FoodName         string          `json:"food_name"`
	Quantity         int             `json:"quantity"`
	Price            decimal.Decimal `json:"price"`
	RestaurantID     int             `json:"restaurant_id"`
	RestaurantName   string          `json:"restaurant_name"`
	RestaurantChatID int64           `json:"restaurant_chat_id"`
	DeliveryCost     decimal.Decimal `json:"delivery_cost"`
}

func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartGroup is the part of a cart that belongs to one restaurant.
type CartGroup struct {
	RestaurantID     int             `json:"restaurant_id"`
	RestaurantName   string          `json:"restaurant_name"`
	RestaurantChatID int64           `json:"restaurant_chat_id"`
	DeliveryCost     decimal.Decimal `json:"delivery_cost"`
	Items            []CartLine      `json:"items"`
	Subtotal         decimal.Decimal `json:"subtotal"`
}

// Total is the subtotal plus the restaurant's delivery cost.
func (g CartGroup) Total() decimal.Decimal {
	return g.Subtotal.Add(g.DeliveryCost)
}

// Checkout is the transient data collected during the checkout dialogue.
type Checkout struct {
	Phone             string `json:"phone"`
	AddressID         int    `json:"address_id"`
	RestaurantMessage string `json:"restaurant_message,omitempty"`
	DeliveryMessage   string `json:"delivery_message,omitempty"`
}

type Order struct {
	ID                 int             `json:"id"`
	UserID             int             `json:"user_id"`
	RestaurantID       int             `json:"restaurant_id"`
	Status             OrderStatus     `json:"status"`
	Total              decimal.Decimal `json:"total"`
	PhoneNumber        string          `json:"phone_number"`
	Latitude           float64         `json:"latitude"`
	Longitude          float64         `json:"longitude"`
	RestaurantMessage  string          `json:"restaurant_message,omitempty"`
	DeliveryMessage    string          `json:"delivery_message,omitempty"`
	DeliveryPersonID   *int            `json:"active_delivery_person_id,omitempty"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type OrderItem struct {
	FoodID   int             `json:"food_id"`
	FoodName string          `json:"food_name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// OrderDraft is one restaurant group ready to be inserted.
type OrderDraft struct {
	RestaurantID      int
	Total             decimal.Decimal
	Phone             string
	Latitude          float64
	Longitude         float64
	RestaurantMessage string
	DeliveryMessage   string
	Items             []OrderItem
}

// PlacedOrder is a freshly created order with what dispatch needs to announce it.
type PlacedOrder struct {
	Order            Order           `json:"order"`
	RestaurantName   string          `json:"restaurant_name"`
	RestaurantChatID int64           `json:"restaurant_chat_id"`
	DeliveryCost     decimal.Decimal `json:"delivery_cost"`
	Items            []OrderItem     `json:"items"`
}

// OrderDetails is an order joined with every party involved in its delivery.
type OrderDetails struct {
	Order
	CustomerChatID   int64       `json:"customer_chat_id"`
	RestaurantName   string      `json:"restaurant_name"`
	RestaurantChatID int64       `json:"restaurant_chat_id"`
	DeliveryChatID   int64       `json:"delivery_chat_id"`
	AdminChatID      int64       `json:"admin_chat_id"`
	RestaurantLat    float64     `json:"restaurant_latitude"`
	RestaurantLon    float64     `json:"restaurant_longitude"`
	CourierChatID    int64       `json:"courier_chat_id,omitempty"`
	CourierName      string      `json:"courier_name,omitempty"`
	CourierPhone     string      `json:"courier_phone,omitempty"`
	Items            []OrderItem `json:"items,omitempty"`
}

// OrderSummary is a row of the customer's order history.
type OrderSummary struct {
	ID             int             `json:"id"`
	RestaurantName string          `json:"restaurant_name"`
	Status         OrderStatus     `json:"status"`
	Total          decimal.Decimal `json:"total"`
	CreatedAt      time.Time       `json:"created_at"`
	Items          []OrderItem     `json:"items"`
}

type DeliveryPerson struct {
	ID          int    `json:"id"`
	ChatID      int64  `json:"telegram_id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Busy        bool   `json:"busy"`
}

type MessageKind string

const (
	MessageRestaurant MessageKind = "restaurant"
	MessageDelivery   MessageKind = "delivery"
	MessageCourier    MessageKind = "courier"
	MessageCustomer   MessageKind = "customer"
)

// DeliveryMessage records a sent dispatch notification so it can be edited later.
type DeliveryMessage struct {
	ID        int         `json:"id"`
	OrderID   int         `json:"order_id"`
	ChatID    int64       `json:"chat_id"`
	MessageID int         `json:"message_id"`
	Kind      MessageKind `json:"type"`
	CreatedAt time.Time   `json:"created_at"`
}
