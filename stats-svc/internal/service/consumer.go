package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"overcooked-bot/stats-svc/internal/domain"

	"github.com/shopspring/decimal"
)

const readRetryDelay = time.Second

type Consumer struct {
	Reader   MessageReader
	Store    StoreInterface
	Location *time.Location
}

func NewConsumer(reader MessageReader, store StoreInterface, loc *time.Location) *Consumer {
	if loc == nil {
		loc = time.UTC
	}
	return &Consumer{
		Reader:   reader,
		Store:    store,
		Location: loc,
	}
}

// Start reads order events until ctx is done.
func (c *Consumer) Start(ctx context.Context) error {
	log.Println("[stats-svc] starting order events consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Printf("[stats-svc] error reading message: %v", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(readRetryDelay):
			}
			continue
		}

		var ev domain.OrderEvent
		if err := json.Unmarshal(message.Value, &ev); err != nil {
			log.Printf("[stats-svc] skip malformed message at offset %d: %v", message.Offset, err)
			continue
		}
		if err := c.ProcessEvent(ctx, ev); err != nil {
			log.Printf("[stats-svc] order %d: %v", ev.OrderID, err)
		}
	}
}

// ProcessEvent folds one order event into the daily counters. Events the
// counters do not track are ignored.
func (c *Consumer) ProcessEvent(ctx context.Context, ev domain.OrderEvent) error {
	record, err := c.recorder(ev)
	if err != nil || record == nil {
		return err
	}

	if ev.ID != "" {
		first, err := c.Store.MarkSeen(ctx, ev.ID)
		if err != nil {
			return err
		}
		if !first {
			log.Printf("[stats-svc] order %d: event %s already counted", ev.OrderID, ev.ID)
			return nil
		}
	}

	if err := record(ctx); err != nil {
		if ev.ID != "" {
			if ferr := c.Store.Forget(ctx, ev.ID); ferr != nil {
				log.Printf("[stats-svc] order %d: release event %s: %v", ev.OrderID, ev.ID, ferr)
			}
		}
		return err
	}
	return nil
}

func (c *Consumer) recorder(ev domain.OrderEvent) (func(context.Context) error, error) {
	if ev.RestaurantID <= 0 {
		return nil, fmt.Errorf("%w: event %s has no restaurant", domain.ErrValidation, ev.ID)
	}
	date := c.day(ev.Timestamp)

	switch {
	case ev.Type == domain.EventOrderCreated:
		return func(ctx context.Context) error {
			return c.Store.RecordCreated(ctx, ev.RestaurantID, date)
		}, nil
	case ev.Type == domain.EventOrderStatusChanged && ev.Status == domain.StatusCompleted:
		total, err := decimal.NewFromString(ev.Total)
		if err != nil {
			return nil, fmt.Errorf("%w: total %q: %v", domain.ErrValidation, ev.Total, err)
		}
		return func(ctx context.Context) error {
			return c.Store.RecordCompleted(ctx, ev.RestaurantID, date, total)
		}, nil
	case ev.Type == domain.EventOrderStatusChanged && ev.Status == domain.StatusCancelled:
		return func(ctx context.Context) error {
			return c.Store.RecordCancelled(ctx, ev.RestaurantID, date)
		}, nil
	}
	return nil, nil
}

func (c *Consumer) day(ts time.Time) string {
	if ts.IsZero() {
		ts = time.Now()
	}
	return ts.In(c.Location).Format(domain.DateLayout)
}
