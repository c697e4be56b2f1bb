package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"overcooked-bot/stats-svc/internal/domain"
)

const (
	defaultTopLimit = 10
	maxTopLimit     = 100
)

type StatsService struct {
	store    StoreInterface
	location *time.Location
	now      func() time.Time
}

func NewStatsService(store StoreInterface, loc *time.Location, now func() time.Time) *StatsService {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &StatsService{store: store, location: loc, now: now}
}

// RestaurantStats returns one restaurant's counters for date, today when
// date is empty. A day without events reads as zeros.
func (s *StatsService) RestaurantStats(ctx context.Context, restaurantID int, date string) (domain.DailyStats, error) {
	if restaurantID <= 0 {
		return domain.DailyStats{}, fmt.Errorf("%w: restaurant id %d", domain.ErrValidation, restaurantID)
	}
	if date == "" {
		date = s.now().In(s.location).Format(domain.DateLayout)
	} else if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return domain.DailyStats{}, fmt.Errorf("%w: date %q", domain.ErrValidation, date)
	}

	stats, err := s.store.DailyStats(ctx, restaurantID, date)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.DailyStats{}, err
	}
	return stats, nil
}

func (s *StatsService) TopRestaurants(ctx context.Context, limit int) ([]domain.RestaurantScore, error) {
	switch {
	case limit <= 0:
		limit = defaultTopLimit
	case limit > maxTopLimit:
		limit = maxTopLimit
	}
	return s.store.TopRestaurants(ctx, limit)
}
