package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"overcooked-bot/stats-svc/internal/domain"
	"overcooked-bot/stats-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Stats service.StatsInterface
}

func NewHandler(svc service.StatsInterface) *Handler {
	return &Handler{Stats: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/stats", h.getRestaurantStats).Methods("GET")
	r.HandleFunc("/api/stats/top", h.getTopRestaurants).Methods("GET")
}

func (h *Handler) getRestaurantStats(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.Atoi(mux.Vars(r)["restaurantId"])
	if err != nil {
		http.Error(w, "Invalid restaurant id", http.StatusBadRequest)
		return
	}
	stats, err := h.Stats.RestaurantStats(r.Context(), restaurantID, r.URL.Query().Get("date"))
	if errors.Is(err, domain.ErrValidation) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("[stats-svc] stats of restaurant %d: %v", restaurantID, err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func (h *Handler) getTopRestaurants(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	top, err := h.Stats.TopRestaurants(r.Context(), limit)
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		log.Printf("[stats-svc] top restaurants: %v", err)
		json.NewEncoder(w).Encode([]domain.RestaurantScore{})
		return
	}
	json.NewEncoder(w).Encode(top)
}
