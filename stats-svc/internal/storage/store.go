package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"overcooked-bot/stats-svc/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	topKey       = "stats:completed"
	dailyTTL     = 30 * 24 * time.Hour
	seenTTL      = 7 * 24 * time.Hour
	revenueScale = 2
)

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func dailyKey(date string, restaurantID int) string {
	return fmt.Sprintf("stats:daily:%s:%d", date, restaurantID)
}

// MarkSeen records an event id and reports whether it was new. Redelivered
// events are skipped by the consumer.
func (s *Store) MarkSeen(ctx context.Context, eventID string) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, "stats:seen:"+eventID, 1, seenTTL).Result()
	if err != nil {
		return false, fmt.Errorf("mark event %s: %w", eventID, err)
	}
	return ok, nil
}

// Forget drops a seen marker so a failed event can be retried.
func (s *Store) Forget(ctx context.Context, eventID string) error {
	return s.rdb.Del(ctx, "stats:seen:"+eventID).Err()
}

func (s *Store) RecordCreated(ctx context.Context, restaurantID int, date string) error {
	return s.incr(ctx, dailyKey(date, restaurantID), func(pipe redis.Pipeliner, key string) {
		pipe.HIncrBy(ctx, key, "created", 1)
	})
}

func (s *Store) RecordCancelled(ctx context.Context, restaurantID int, date string) error {
	return s.incr(ctx, dailyKey(date, restaurantID), func(pipe redis.Pipeliner, key string) {
		pipe.HIncrBy(ctx, key, "cancelled", 1)
	})
}

// RecordCompleted counts a completed order and adds its total, kept in minor
// units so the hash holds integers only.
func (s *Store) RecordCompleted(ctx context.Context, restaurantID int, date string, total decimal.Decimal) error {
	minor := total.Shift(revenueScale).Round(0).IntPart()
	return s.incr(ctx, dailyKey(date, restaurantID), func(pipe redis.Pipeliner, key string) {
		pipe.HIncrBy(ctx, key, "completed", 1)
		pipe.HIncrBy(ctx, key, "revenue", minor)
		pipe.ZIncrBy(ctx, topKey, 1, strconv.Itoa(restaurantID))
	})
}

func (s *Store) incr(ctx context.Context, key string, fn func(redis.Pipeliner, string)) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		fn(pipe, key)
		pipe.Expire(ctx, key, dailyTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("update %s: %w", key, err)
	}
	return nil
}

func (s *Store) DailyStats(ctx context.Context, restaurantID int, date string) (domain.DailyStats, error) {
	stats := domain.DailyStats{RestaurantID: restaurantID, Date: date, Revenue: decimal.Zero}
	values, err := s.rdb.HGetAll(ctx, dailyKey(date, restaurantID)).Result()
	if err != nil {
		return stats, fmt.Errorf("read stats for %d on %s: %w", restaurantID, date, err)
	}
	if len(values) == 0 {
		return stats, domain.ErrNotFound
	}

	stats.Created, _ = strconv.ParseInt(values["created"], 10, 64)
	stats.Completed, _ = strconv.ParseInt(values["completed"], 10, 64)
	stats.Cancelled, _ = strconv.ParseInt(values["cancelled"], 10, 64)
	minor, _ := strconv.ParseInt(values["revenue"], 10, 64)
	stats.Revenue = decimal.New(minor, -revenueScale)
	return stats, nil
}

// TopRestaurants ranks restaurants by completed orders, best first.
func (s *Store) TopRestaurants(ctx context.Context, limit int) ([]domain.RestaurantScore, error) {
	results, err := s.rdb.ZRevRangeWithScores(ctx, topKey, 0, int64(limit-1)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("read %s: %w", topKey, err)
	}

	top := make([]domain.RestaurantScore, 0, len(results))
	for _, z := range results {
		member, _ := z.Member.(string)
		id, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		top = append(top, domain.RestaurantScore{RestaurantID: id, Completed: z.Score})
	}
	return top, nil
}
