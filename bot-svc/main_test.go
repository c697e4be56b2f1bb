package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"overcooked-bot/bot-svc/internal/domain"
	"overcooked-bot/bot-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepository(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return storage.NewPostgresRepository(mockDB), mock
}

var cartColumns = []string{"id", "food_id", "name", "quantity", "price", "restaurant_id", "restaurant_name", "restaurant_chat_id", "delivery_cost"}

func singleDraft(lines []domain.CartLine) ([]domain.OrderDraft, error) {
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}
	draft := domain.OrderDraft{RestaurantID: lines[0].RestaurantID, Phone: "+998901234567", Latitude: 38.28, Longitude: 67.9}
	total := lines[0].DeliveryCost
	for _, l := range lines {
		total = total.Add(l.LineTotal())
		draft.Items = append(draft.Items, domain.OrderItem{FoodID: l.FoodID, FoodName: l.FoodName, Quantity: l.Quantity, Price: l.Price})
	}
	draft.Total = total
	return []domain.OrderDraft{draft}, nil
}

func TestCreateOrders_CommitsWholeCheckout(t *testing.T) {
	repo, mock := setupRepository(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM cart c").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(cartColumns).
			AddRow(1, 10, "Burger", 2, "20000", 1, "RestaurantX", -100, "5000").
			AddRow(2, 11, "Fries", 1, "15000", 1, "RestaurantX", -100, "5000"))
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(3, 1, sqlmock.AnyArg(), "+998901234567", 38.28, 67.9, "", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(5, now, now))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(5, 10, 2, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(5, 11, 1, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec("DELETE FROM cart").
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	orders, err := repo.CreateOrders(context.Background(), 3, singleDraft)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 5, orders[0].ID)
	assert.Equal(t, domain.StatusPending, orders[0].Status)
	assert.True(t, orders[0].Total.Equal(decimal.NewFromInt(60000)), "total %s", orders[0].Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrders_RollsBackOnFailure(t *testing.T) {
	repo, mock := setupRepository(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM cart c").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(cartColumns).
			AddRow(1, 10, "Burger", 2, "20000", 1, "RestaurantX", -100, nil))
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(5, now, now))
	mock.ExpectExec("INSERT INTO order_items").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	orders, err := repo.CreateOrders(context.Background(), 3, singleDraft)

	assert.Error(t, err)
	assert.Nil(t, orders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrders_EmptyCart(t *testing.T) {
	repo, mock := setupRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM cart c").WithArgs(3).WillReturnRows(sqlmock.NewRows(cartColumns))
	mock.ExpectRollback()

	_, err := repo.CreateOrders(context.Background(), 3, singleDraft)

	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_CompareAndSet(t *testing.T) {
	t.Run("stale", func(t *testing.T) {
		repo, mock := setupRepository(t)
		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE orders").
			WithArgs(domain.StatusAccepted, "", 5, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"active_delivery_person_id"}))
		mock.ExpectRollback()

		err := repo.UpdateStatus(context.Background(), 5, []domain.OrderStatus{domain.StatusPending}, domain.StatusAccepted)

		assert.ErrorIs(t, err, domain.ErrConflictOrStale)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("completion_frees_courier", func(t *testing.T) {
		repo, mock := setupRepository(t)
		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE orders").
			WithArgs(domain.StatusCompleted, "", 5, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"active_delivery_person_id"}).AddRow(3))
		mock.ExpectExec("UPDATE delivery_persons SET busy = FALSE").
			WithArgs(3).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.UpdateStatus(context.Background(), 5, []domain.OrderStatus{domain.StatusArrived}, domain.StatusCompleted)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cancel_keeps_reason", func(t *testing.T) {
		repo, mock := setupRepository(t)
		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE orders").
			WithArgs(domain.StatusCancelled, "Out of stock", 5, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"active_delivery_person_id"}).AddRow(nil))
		mock.ExpectCommit()

		err := repo.CancelOrder(context.Background(), 5,
			[]domain.OrderStatus{domain.StatusPending, domain.StatusAccepted}, "Out of stock")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAssignCourier(t *testing.T) {
	courierColumns := []string{"id", "telegram_id", "name", "phone_number", "busy"}

	t.Run("unregistered", func(t *testing.T) {
		repo, mock := setupRepository(t)
		mock.ExpectBegin()
		mock.ExpectQuery("FROM delivery_persons").WithArgs(int64(700)).WillReturnRows(sqlmock.NewRows(courierColumns))
		mock.ExpectRollback()

		_, err := repo.AssignCourier(context.Background(), 5, 700)

		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already_taken", func(t *testing.T) {
		repo, mock := setupRepository(t)
		mock.ExpectBegin()
		mock.ExpectQuery("FROM delivery_persons").WithArgs(int64(700)).
			WillReturnRows(sqlmock.NewRows(courierColumns).AddRow(3, 700, "Ali", "+998907654321", false))
		mock.ExpectExec("UPDATE orders").
			WithArgs(domain.StatusDelivering, 3, 5, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := repo.AssignCourier(context.Background(), 5, 700)

		assert.ErrorIs(t, err, domain.ErrConflictOrStale)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("assigned", func(t *testing.T) {
		repo, mock := setupRepository(t)
		mock.ExpectBegin()
		mock.ExpectQuery("FROM delivery_persons").WithArgs(int64(700)).
			WillReturnRows(sqlmock.NewRows(courierColumns).AddRow(3, 700, "Ali", "+998907654321", false))
		mock.ExpectExec("UPDATE orders").
			WithArgs(domain.StatusDelivering, 3, 5, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE delivery_persons SET busy = TRUE").
			WithArgs(3).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		dp, err := repo.AssignCourier(context.Background(), 5, 700)

		require.NoError(t, err)
		assert.Equal(t, int64(700), dp.ChatID)
		assert.True(t, dp.Busy)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAddCartItem_Upserts(t *testing.T) {
	repo, mock := setupRepository(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM users").WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectQuery("SELECT is_active FROM foods").WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"is_active"}).AddRow(true))
	mock.ExpectExec("ON CONFLICT \\(user_id, food_id\\) DO UPDATE SET quantity = cart.quantity \\+ EXCLUDED.quantity").
		WithArgs(3, 10, 2).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.AddCartItem(context.Background(), 42, 10, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddCartItem_InactiveFood(t *testing.T) {
	repo, mock := setupRepository(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM users").WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectQuery("SELECT is_active FROM foods").WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"is_active"}).AddRow(false))
	mock.ExpectRollback()

	err := repo.AddCartItem(context.Background(), 42, 10, 2)

	assert.ErrorIs(t, err, domain.ErrItemUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisSessionStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := storage.NewRedisSessionStore(client, 30*time.Minute)
	ctx := context.Background()
	key := domain.ChatSession(42)

	empty, err := store.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, domain.StateMainMenu, empty.State)

	sess := domain.Session{State: domain.StateSelectingFood, RestaurantID: 1, RestaurantName: "RestaurantX", Category: "Burgers"}
	require.NoError(t, store.Save(ctx, key, sess))
	assert.Equal(t, 30*time.Minute, mr.TTL("session:chat:42"))

	loaded, err := store.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, sess, loaded)

	// the reason dialogue of the same identity is stored apart
	other, err := store.Load(ctx, domain.CancelReasonSession(42))
	require.NoError(t, err)
	assert.Equal(t, domain.StateMainMenu, other.State)

	mr.FastForward(31 * time.Minute)
	expired, err := store.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, domain.Session{}, expired)

	require.NoError(t, store.Save(ctx, key, sess))
	require.NoError(t, store.Clear(ctx, key))
	assert.False(t, mr.Exists("session:chat:42"))
}

func TestRedisSessionStore_PurposeTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := storage.NewRedisSessionStore(client, 30*time.Minute).
		WithTTL(domain.PurposeCancelReason, 24*time.Hour)
	ctx := context.Background()

	reason := domain.Session{State: domain.StateWaitingCancelReason, CancelOrderID: 5, GroupChatID: -100, GroupMessageID: 10}
	require.NoError(t, store.Save(ctx, domain.CancelReasonSession(500), reason))
	require.NoError(t, store.Save(ctx, domain.ChatSession(500), domain.Session{State: domain.StateViewingCart}))
	assert.Equal(t, 24*time.Hour, mr.TTL("session:cancel_reason:500"))

	// an admin answering well after the chat timeout still finds the dialogue
	mr.FastForward(31 * time.Minute)

	chat, err := store.Load(ctx, domain.ChatSession(500))
	require.NoError(t, err)
	assert.Equal(t, domain.StateMainMenu, chat.State)

	loaded, err := store.Load(ctx, domain.CancelReasonSession(500))
	require.NoError(t, err)
	assert.Equal(t, reason, loaded)
}

func TestRedisSessionStore_NoExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := storage.NewRedisSessionStore(client, time.Minute).WithTTL(domain.PurposeCancelReason, 0)
	require.NoError(t, store.Save(context.Background(), domain.CancelReasonSession(500),
		domain.Session{State: domain.StateWaitingCancelReason, CancelOrderID: 5}))

	assert.Equal(t, time.Duration(0), mr.TTL("session:cancel_reason:500"))
}

func TestRedisSessionStore_CorruptValue(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	require.NoError(t, mr.Set("session:chat:42", "{not json"))

	_, err := storage.NewRedisSessionStore(client, time.Minute).Load(context.Background(), domain.ChatSession(42))
	assert.Error(t, err)
}
