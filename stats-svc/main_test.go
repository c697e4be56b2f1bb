package main

import (
	"context"
	"testing"

	"overcooked-bot/stats-svc/internal/domain"
	"overcooked-bot/stats-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*storage.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return storage.NewStore(rdb), mr
}

func TestStore_DailyCounters(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()
	const day = "2026-10-15"

	require.NoError(t, store.RecordCreated(ctx, 3, day))
	require.NoError(t, store.RecordCreated(ctx, 3, day))
	require.NoError(t, store.RecordCreated(ctx, 3, day))
	require.NoError(t, store.RecordCompleted(ctx, 3, day, decimal.RequireFromString("60000")))
	require.NoError(t, store.RecordCompleted(ctx, 3, day, decimal.RequireFromString("12500.50")))
	require.NoError(t, store.RecordCancelled(ctx, 3, day))

	assert.Equal(t, "7250050", mr.HGet("stats:daily:2026-10-15:3", "revenue"))
	assert.True(t, mr.TTL("stats:daily:2026-10-15:3") > 0)

	stats, err := store.DailyStats(ctx, 3, day)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Created)
	assert.Equal(t, int64(2), stats.Completed)
	assert.Equal(t, int64(1), stats.Cancelled)
	assert.True(t, decimal.RequireFromString("72500.50").Equal(stats.Revenue), stats.Revenue.String())
}

func TestStore_DailyStatsMissingDay(t *testing.T) {
	store, _ := setupStore(t)

	stats, err := store.DailyStats(context.Background(), 3, "2026-01-01")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 3, stats.RestaurantID)
	assert.True(t, stats.Revenue.IsZero())
}

func TestStore_TopRestaurants(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	for _, id := range []int{1, 3, 3, 2, 3, 2} {
		require.NoError(t, store.RecordCompleted(ctx, id, "2026-10-15", decimal.NewFromInt(1000)))
	}

	top, err := store.TopRestaurants(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.RestaurantScore{
		{RestaurantID: 3, Completed: 3},
		{RestaurantID: 2, Completed: 2},
	}, top)
}

func TestStore_TopRestaurantsEmpty(t *testing.T) {
	store, _ := setupStore(t)

	top, err := store.TopRestaurants(context.Background(), 10)

	assert.NoError(t, err)
	assert.Empty(t, top)
}

func TestStore_MarkSeen(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	first, err := store.MarkSeen(ctx, "evt-1")
	require.NoError(t, err)
	assert.True(t, first)

	again, err := store.MarkSeen(ctx, "evt-1")
	require.NoError(t, err)
	assert.False(t, again)
	assert.True(t, mr.TTL("stats:seen:evt-1") > 0)

	require.NoError(t, store.Forget(ctx, "evt-1"))
	retried, err := store.MarkSeen(ctx, "evt-1")
	require.NoError(t, err)
	assert.True(t, retried)
}

func TestStore_RedisDown(t *testing.T) {
	store, mr := setupStore(t)
	mr.SetError("LOADING dataset")

	err := store.RecordCreated(context.Background(), 3, "2026-10-15")

	assert.ErrorContains(t, err, "stats:daily:2026-10-15:3")
}
