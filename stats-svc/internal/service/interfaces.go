package service

import (
	"context"

	"overcooked-bot/stats-svc/internal/domain"
	"overcooked-bot/stats-svc/internal/storage"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type StoreInterface interface {
	MarkSeen(ctx context.Context, eventID string) (bool, error)
	Forget(ctx context.Context, eventID string) error
	RecordCreated(ctx context.Context, restaurantID int, date string) error
	RecordCompleted(ctx context.Context, restaurantID int, date string, total decimal.Decimal) error
	RecordCancelled(ctx context.Context, restaurantID int, date string) error
	DailyStats(ctx context.Context, restaurantID int, date string) (domain.DailyStats, error)
	TopRestaurants(ctx context.Context, limit int) ([]domain.RestaurantScore, error)
}

// MessageReader is the part of *kafka.Reader the consumer reads from.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context) error
	ProcessEvent(ctx context.Context, ev domain.OrderEvent) error
}

type StatsInterface interface {
	RestaurantStats(ctx context.Context, restaurantID int, date string) (domain.DailyStats, error)
	TopRestaurants(ctx context.Context, limit int) ([]domain.RestaurantScore, error)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
	_ StatsInterface    = (*StatsService)(nil)
)
