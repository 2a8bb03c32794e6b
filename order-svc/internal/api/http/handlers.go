package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"restaurant-pos/order-svc/internal/domain"
	"restaurant-pos/order-svc/internal/notify"
	"restaurant-pos/order-svc/internal/service"
)

type Handler struct {
	Orders  service.OrderServiceInterface
	Catalog service.CatalogServiceInterface
	Hub     *notify.Hub

	// Heartbeat is the ping/comment interval on real-time connections.
	Heartbeat time.Duration
	UploadDir string

	logger *zap.Logger
}

func NewHandler(orderSvc service.OrderServiceInterface, catalogSvc service.CatalogServiceInterface, hub *notify.Hub, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Orders:    orderSvc,
		Catalog:   catalogSvc,
		Hub:       hub,
		Heartbeat: 15 * time.Second,
		UploadDir: "./uploads",
		logger:    logger.Named("http"),
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.updateOrderStatus).Methods("PATCH")
	r.HandleFunc("/api/orders/{id}", h.deleteOrder).Methods("DELETE")

	r.HandleFunc("/api/tables", h.createTable).Methods("POST")
	r.HandleFunc("/api/tables", h.getTables).Methods("GET")
	r.HandleFunc("/api/tables/{id}/orders", h.getTableOrders).Methods("GET")
	r.HandleFunc("/api/tables/{id}/close", h.closeTable).Methods("POST")
	r.HandleFunc("/api/tables/{id}/qrcode", h.getTableQRCode).Methods("GET")

	r.HandleFunc("/api/items", h.createItem).Methods("POST")
	r.HandleFunc("/api/items", h.getItems).Methods("GET")
	r.HandleFunc("/api/items/{id}", h.updateItem).Methods("PATCH")
	r.HandleFunc("/api/items/{id}", h.deleteItem).Methods("DELETE")
	r.HandleFunc("/api/items/{id}/image", h.uploadItemImage).Methods("POST")

	r.HandleFunc("/api/addons", h.createAddOn).Methods("POST")
	r.HandleFunc("/api/addons", h.getAddOns).Methods("GET")
	r.HandleFunc("/api/addons/{id}", h.updateAddOn).Methods("PATCH")
	r.HandleFunc("/api/addons/{id}", h.deleteAddOn).Methods("DELETE")

	r.HandleFunc("/api/employees", h.createEmployee).Methods("POST")
	r.HandleFunc("/api/employees", h.getEmployees).Methods("GET")

	r.HandleFunc("/ws", h.serveWebSocket).Methods("GET")
	r.HandleFunc("/api/events", h.streamEvents).Methods("GET")

	r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.UploadDir)))).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	if h.Hub != nil {
		response["connections"] = h.Hub.Len()
	}
	writeJSON(w, http.StatusOK, response)
}

var successResponse = map[string]bool{"success": true}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the domain error kinds onto status codes. Anything else is
// logged and hidden behind a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validation *domain.ValidationError
		notFound   *domain.NotFoundError
	)
	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": validation.Error()})
	case errors.As(err, &notFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": notFound.Error()})
	default:
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", requestIDFrom(r.Context())),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError("body", "invalid JSON format: %v", err)
	}
	return nil
}
