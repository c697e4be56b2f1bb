package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"overcooked-bot/stats-svc/internal/domain"
	"overcooked-bot/stats-svc/internal/mocks"
	"overcooked-bot/stats-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var tashkent = time.FixedZone("UTC+5", 5*60*60)

// late evening UTC is already the next day in Tashkent
var eventTime = time.Date(2026, 10, 15, 20, 30, 0, 0, time.UTC)

const eventDay = "2026-10-16"

func orderEvent(typ, status string) domain.OrderEvent {
	return domain.OrderEvent{
		ID:           "evt-1",
		Type:         typ,
		OrderID:      5,
		RestaurantID: 3,
		Status:       status,
		Total:        "60000",
		Timestamp:    eventTime,
	}
}

func amount(v int64) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(v)) })
}

func TestConsumer_ProcessEvent(t *testing.T) {
	tests := []struct {
		name           string
		event          domain.OrderEvent
		setupMockStore func(*mocks.StoreInterface)
		wantErr        error
	}{
		{
			name:  "created",
			event: orderEvent(domain.EventOrderCreated, "pending"),
			setupMockStore: func(store *mocks.StoreInterface) {
				store.On("MarkSeen", mock.Anything, "evt-1").Return(true, nil).Once()
				store.On("RecordCreated", mock.Anything, 3, eventDay).Return(nil).Once()
			},
		},
		{
			name:  "completed",
			event: orderEvent(domain.EventOrderStatusChanged, domain.StatusCompleted),
			setupMockStore: func(store *mocks.StoreInterface) {
				store.On("MarkSeen", mock.Anything, "evt-1").Return(true, nil).Once()
				store.On("RecordCompleted", mock.Anything, 3, eventDay, amount(60000)).Return(nil).Once()
			},
		},
		{
			name:  "cancelled",
			event: orderEvent(domain.EventOrderStatusChanged, domain.StatusCancelled),
			setupMockStore: func(store *mocks.StoreInterface) {
				store.On("MarkSeen", mock.Anything, "evt-1").Return(true, nil).Once()
				store.On("RecordCancelled", mock.Anything, 3, eventDay).Return(nil).Once()
			},
		},
		{
			name:           "untracked status",
			event:          orderEvent(domain.EventOrderStatusChanged, "delivering"),
			setupMockStore: func(store *mocks.StoreInterface) {},
		},
		{
			name:           "unknown type",
			event:          orderEvent("new_review", ""),
			setupMockStore: func(store *mocks.StoreInterface) {},
		},
		{
			name:  "redelivered",
			event: orderEvent(domain.EventOrderCreated, "pending"),
			setupMockStore: func(store *mocks.StoreInterface) {
				store.On("MarkSeen", mock.Anything, "evt-1").Return(false, nil).Once()
			},
		},
		{
			name:  "record failure releases the event",
			event: orderEvent(domain.EventOrderCreated, "pending"),
			setupMockStore: func(store *mocks.StoreInterface) {
				store.On("MarkSeen", mock.Anything, "evt-1").Return(true, nil).Once()
				store.On("RecordCreated", mock.Anything, 3, eventDay).Return(errors.New("redis down")).Once()
				store.On("Forget", mock.Anything, "evt-1").Return(nil).Once()
			},
			wantErr: errors.New("redis down"),
		},
		{
			name: "no restaurant",
			event: func() domain.OrderEvent {
				ev := orderEvent(domain.EventOrderCreated, "pending")
				ev.RestaurantID = 0
				return ev
			}(),
			setupMockStore: func(store *mocks.StoreInterface) {},
			wantErr:        domain.ErrValidation,
		},
		{
			name: "malformed total",
			event: func() domain.OrderEvent {
				ev := orderEvent(domain.EventOrderStatusChanged, domain.StatusCompleted)
				ev.Total = "sixty"
				return ev
			}(),
			setupMockStore: func(store *mocks.StoreInterface) {},
			wantErr:        domain.ErrValidation,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewStoreInterface(t)
			testCase.setupMockStore(store)
			consumer := service.NewConsumer(nil, store, tashkent)

			err := consumer.ProcessEvent(context.Background(), testCase.event)

			switch {
			case testCase.wantErr == nil:
				assert.NoError(t, err)
			case errors.Is(testCase.wantErr, domain.ErrValidation):
				assert.ErrorIs(t, err, domain.ErrValidation)
			default:
				assert.ErrorContains(t, err, testCase.wantErr.Error())
			}
		})
	}
}

func TestConsumer_ProcessEventWithoutID(t *testing.T) {
	store := mocks.NewStoreInterface(t)
	store.On("RecordCancelled", mock.Anything, 3, eventDay).Return(nil).Once()
	consumer := service.NewConsumer(nil, store, tashkent)

	ev := orderEvent(domain.EventOrderStatusChanged, domain.StatusCancelled)
	ev.ID = ""

	assert.NoError(t, consumer.ProcessEvent(context.Background(), ev))
	store.AssertNotCalled(t, "MarkSeen", mock.Anything, mock.Anything)
}

func TestConsumer_Start(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payload, err := json.Marshal(orderEvent(domain.EventOrderCreated, "pending"))
	require.NoError(t, err)

	reader := mocks.NewMessageReader(t)
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: payload}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: []byte("{not json"), Offset: 7}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(func(context.Context) (kafka.Message, error) {
		cancel()
		return kafka.Message{}, context.Canceled
	}).Once()

	store := mocks.NewStoreInterface(t)
	store.On("MarkSeen", mock.Anything, "evt-1").Return(true, nil).Once()
	store.On("RecordCreated", mock.Anything, 3, eventDay).Return(nil).Once()

	consumer := service.NewConsumer(reader, store, tashkent)

	done := make(chan error, 1)
	go func() { done <- consumer.Start(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop after cancel")
	}
}

func TestConsumer_StartRetriesReadErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := mocks.NewMessageReader(t)
	reader.On("ReadMessage", mock.Anything).Return(func(context.Context) (kafka.Message, error) {
		cancel()
		return kafka.Message{}, errors.New("broker unavailable")
	}).Once()

	consumer := service.NewConsumer(reader, mocks.NewStoreInterface(t), tashkent)

	assert.NoError(t, consumer.Start(ctx))
}
