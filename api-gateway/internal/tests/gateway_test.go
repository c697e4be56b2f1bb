package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"overcooked-bot/api-gateway/internal/gateway"
	"overcooked-bot/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var upstreams = gateway.Config{
	BotSvcURL:   "http://bot-svc",
	StatsSvcURL: "http://stats-svc",
}

func okResponse(body string) *http.Response {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func forwardedTo(url string) interface{} {
	return mock.MatchedBy(func(req *http.Request) bool {
		return req != nil && req.URL.String() == url
	})
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_RouteHandler(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		target string
	}{
		{name: "order details", method: http.MethodGet, path: "/api/orders/5", target: "http://bot-svc/api/orders/5"},
		{name: "order history", method: http.MethodGet, path: "/api/users/42/orders", target: "http://bot-svc/api/users/42/orders"},
		{name: "chat events", method: http.MethodPost, path: "/api/events", target: "http://bot-svc/api/events"},
		{name: "restaurant stats", method: http.MethodGet, path: "/api/restaurants/3/stats?date=2026-10-15", target: "http://stats-svc/api/restaurants/3/stats?date=2026-10-15"},
		{name: "top restaurants", method: http.MethodGet, path: "/api/stats/top?limit=5", target: "http://stats-svc/api/stats/top?limit=5"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			mockClient.On("Do", forwardedTo(testCase.target)).Return(okResponse(`{"ok":true}`), nil).Once()
			gw := gateway.NewGateway(upstreams, mockClient)

			rr := httptest.NewRecorder()
			gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(testCase.method, testCase.path, strings.NewReader(`{}`)))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}
}

func TestGateway_RouteHandler_UnknownAPI(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown"},
		{name: "events need POST", method: http.MethodGet, path: "/api/events"},
		{name: "bare restaurants", method: http.MethodGet, path: "/api/restaurants/3"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			gw := gateway.NewGateway(upstreams, mocks.NewHTTPClient(t))

			rr := httptest.NewRecorder()
			gw.RouteHandler(rr, httptest.NewRequest(testCase.method, testCase.path, nil))

			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(upstreams, mockClient)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	rr := httptest.NewRecorder()
	gw.RouteHandler(rr, httptest.NewRequest(http.MethodGet, "/api/stats/top", nil))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.NotContains(t, rr.Body.String(), "connection refused")
}

func TestGateway_ProxyKeepsUpstreamStatus(t *testing.T) {
	backendPath := ""
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendPath = r.URL.Path
		http.Error(w, "Order not found", http.StatusNotFound)
	}))
	defer backend.Close()

	gw := gateway.NewGateway(gateway.Config{BotSvcURL: backend.URL}, backend.Client())

	rr := httptest.NewRecorder()
	gw.RouteHandler(rr, httptest.NewRequest(http.MethodGet, "/api/orders/99", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "/api/orders/99", backendPath)
	assert.Contains(t, rr.Body.String(), "Order not found")
}
