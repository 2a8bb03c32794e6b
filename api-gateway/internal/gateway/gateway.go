package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	OrderSvcURL     string
	AnalyticsSvcURL string
}

type Gateway struct {
	config Config
	client HTTPClient
	logger *zap.Logger

	// stream carries the long-lived order-svc connections (WebSocket and
	// SSE), which the buffered client path cannot.
	stream *httputil.ReverseProxy
}

func NewGateway(config Config, client HTTPClient, logger *zap.Logger) (*Gateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	target, err := url.Parse(config.OrderSvcURL)
	if err != nil || target.Host == "" {
		return nil, fmt.Errorf("invalid order service url %q", config.OrderSvcURL)
	}

	g := &Gateway{
		config: config,
		client: client,
		logger: logger.Named("gateway"),
	}

	g.stream = httputil.NewSingleHostReverseProxy(target)
	g.stream.FlushInterval = -1
	g.stream.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		g.logger.Warn("stream proxy failed", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}
	return g, nil
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
	target := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	g.logger.Debug("proxy", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.String("target", target))

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, r.Body)
	if err != nil {
		g.logger.Error("build upstream request", zap.String("target", target), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}
	req.ContentLength = r.ContentLength

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("upstream request failed", zap.String("target", targetURL), zap.Error(err))
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.logger.Warn("copy upstream response", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

// RouteHandler picks the upstream for an /api or /uploads path.
func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case path == "/api/stats" || strings.HasPrefix(path, "/api/analytics/"):
		g.ProxyRequest(w, r, g.config.AnalyticsSvcURL)
	case strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/uploads/"):
		g.ProxyRequest(w, r, g.config.OrderSvcURL)
	default:
		http.Error(w, "route not found", http.StatusNotFound)
	}
}

func (g *Gateway) StreamHandler(w http.ResponseWriter, r *http.Request) {
	g.logger.Debug("stream", zap.String("path", r.URL.Path))
	g.stream.ServeHTTP(w, r)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.HandleFunc("/ws", g.StreamHandler).Methods("GET")
	r.HandleFunc("/api/events", g.StreamHandler).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	r.PathPrefix("/uploads/").HandlerFunc(g.RouteHandler).Methods("GET")
	r.NotFoundHandler = http.HandlerFunc(g.RouteHandler)
	return r
}
