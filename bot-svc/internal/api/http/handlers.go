package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"overcooked-bot/bot-svc/internal/domain"
	"overcooked-bot/bot-svc/internal/service"

	"github.com/gorilla/mux"
)

// EventSink accepts inbound chat events for processing.
type EventSink interface {
	Submit(ev domain.Event) error
}

type Handler struct {
	Orders service.OrderServiceInterface
	Events EventSink
}

func NewHandler(orders service.OrderServiceInterface, events EventSink) *Handler {
	return &Handler{Orders: orders, Events: events}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/orders/{orderId}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/users/{chatId}/orders", h.getUserOrders).Methods("GET")
	r.HandleFunc("/api/events", h.postEvent).Methods("POST")
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(mux.Vars(r)["orderId"])
	if err != nil || orderID <= 0 {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}
	order, err := h.Orders.Details(r.Context(), orderID)
	if errors.Is(err, domain.ErrNotFound) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[bot-svc] get order %d: %v", orderID, err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) getUserOrders(w http.ResponseWriter, r *http.Request) {
	chatID, err := strconv.ParseInt(mux.Vars(r)["chatId"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid chat id", http.StatusBadRequest)
		return
	}
	orders, err := h.Orders.History(r.Context(), chatID)
	w.Header().Set("Content-Type", "application/json")
	if errors.Is(err, domain.ErrNotFound) {
		json.NewEncoder(w).Encode([]domain.OrderSummary{})
		return
	}
	if err != nil {
		log.Printf("[bot-svc] order history of %d: %v", chatID, err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(orders)
}

// postEvent lets other chat front-ends feed events into the conversation.
func (h *Handler) postEvent(w http.ResponseWriter, r *http.Request) {
	var ev domain.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	switch ev.Kind {
	case domain.EventText, domain.EventContact, domain.EventLocation, domain.EventControl:
	default:
		http.Error(w, "Unknown event kind", http.StatusBadRequest)
		return
	}
	if ev.ChatID == 0 || ev.SenderID == 0 {
		http.Error(w, "chat_id and sender_id are required", http.StatusBadRequest)
		return
	}
	if err := h.Events.Submit(ev); err != nil {
		http.Error(w, "Service unavailable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
