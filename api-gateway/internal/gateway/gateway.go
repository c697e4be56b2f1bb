package gateway

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	BotSvcURL   string
	StatsSvcURL string
}

// Gateway exposes the operational APIs of the bot and stats services under
// one origin.
type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.Printf("[api-gateway] build request to %s: %v", url, err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[api-gateway] %s %s -> %s: %v", r.Method, r.URL.Path, targetURL, err)
		http.Error(w, "Upstream unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("[api-gateway] copy response of %s: %v", r.URL.Path, err)
	}
}

// RouteHandler picks the upstream for an API path.
func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case strings.HasPrefix(path, "/api/stats/"),
		strings.HasPrefix(path, "/api/restaurants/") && strings.HasSuffix(path, "/stats"):
		g.ProxyRequest(w, r, g.config.StatsSvcURL)
	case strings.HasPrefix(path, "/api/orders/"),
		strings.HasPrefix(path, "/api/users/") && strings.HasSuffix(path, "/orders"),
		path == "/api/events" && r.Method == http.MethodPost:
		g.ProxyRequest(w, r, g.config.BotSvcURL)
	default:
		log.Printf("[api-gateway] unmatched API route: %s %s", r.Method, path)
		http.Error(w, "API route not found", http.StatusNotFound)
	}
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	return r
}
