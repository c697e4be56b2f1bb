package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "overcooked-bot/bot-svc/internal/api/http"
	"overcooked-bot/bot-svc/internal/domain"
	"overcooked-bot/bot-svc/internal/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func serve(handler *httpapi.Handler, req *http.Request) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetOrderHandler(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(*mocks.OrderServiceInterface)
		wantCode  int
	}{
		{
			name: "found",
			id:   "5",
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("Details", mock.Anything, 5).Return(orderIn(domain.StatusAccepted), nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "invalid id",
			id:        "abc",
			setupMock: func(m *mocks.OrderServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "not found",
			id:   "6",
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("Details", mock.Anything, 6).Return(nil, domain.ErrNotFound).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "storage error",
			id:   "7",
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("Details", mock.Anything, 7).Return(nil, errors.New("db error")).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderServiceInterface(t)
			testCase.setupMock(orders)

			w := serve(httpapi.NewHandler(orders, nil), httptest.NewRequest("GET", "/api/orders/"+testCase.id, nil))

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusOK {
				var got domain.OrderDetails
				require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.Equal(t, 5, got.ID)
				assert.Equal(t, domain.StatusAccepted, got.Status)
				assert.True(t, got.Total.Equal(money(60000)))
			}
		})
	}
}

func TestGetUserOrdersHandler(t *testing.T) {
	t.Run("no history is an empty list", func(t *testing.T) {
		orders := mocks.NewOrderServiceInterface(t)
		orders.On("History", mock.Anything, customerChat).Return(nil, domain.ErrNotFound).Once()

		w := serve(httpapi.NewHandler(orders, nil), httptest.NewRequest("GET", "/api/users/42/orders", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("history", func(t *testing.T) {
		orders := mocks.NewOrderServiceInterface(t)
		orders.On("History", mock.Anything, customerChat).Return([]domain.OrderSummary{
			{ID: 5, RestaurantName: "RestaurantX", Status: domain.StatusCompleted, Total: money(60000)},
		}, nil).Once()

		w := serve(httpapi.NewHandler(orders, nil), httptest.NewRequest("GET", "/api/users/42/orders", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var got []domain.OrderSummary
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		require.Len(t, got, 1)
		assert.Equal(t, "RestaurantX", got[0].RestaurantName)
	})

	t.Run("invalid chat id", func(t *testing.T) {
		w := serve(httpapi.NewHandler(mocks.NewOrderServiceInterface(t), nil), httptest.NewRequest("GET", "/api/users/me/orders", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPostEventHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.EventSink)
		wantCode  int
	}{
		{
			name: "accepted",
			body: `{"kind":"text","chat_id":42,"sender_id":42,"private":true,"text":"/start"}`,
			setupMock: func(m *mocks.EventSink) {
				m.On("Submit", domain.Event{Kind: domain.EventText, ChatID: 42, SenderID: 42, Private: true, Text: "/start"}).
					Return(nil).Once()
			},
			wantCode: http.StatusAccepted,
		},
		{
			name:      "invalid JSON",
			body:      `{invalid}`,
			setupMock: func(m *mocks.EventSink) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "unknown kind",
			body:      `{"kind":"sticker","chat_id":42,"sender_id":42}`,
			setupMock: func(m *mocks.EventSink) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "missing chat",
			body:      `{"kind":"text","sender_id":42,"text":"hi"}`,
			setupMock: func(m *mocks.EventSink) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "shutting down",
			body: `{"kind":"control","chat_id":-100,"sender_id":7,"data":"accept_order_5"}`,
			setupMock: func(m *mocks.EventSink) {
				m.On("Submit", mock.AnythingOfType("domain.Event")).Return(errors.New("router stopped")).Once()
			},
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			sink := mocks.NewEventSink(t)
			testCase.setupMock(sink)

			req := httptest.NewRequest("POST", "/api/events", bytes.NewBufferString(testCase.body))
			req.Header.Set("Content-Type", "application/json")
			w := serve(httpapi.NewHandler(nil, sink), req)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestHealthAndCORS(t *testing.T) {
	router := httpapi.NewRouter(httpapi.NewHandler(nil, nil))

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
