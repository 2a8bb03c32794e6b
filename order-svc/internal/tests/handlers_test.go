package tests

import (
	"bufio"
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "restaurant-pos/order-svc/internal/api/http"
	"restaurant-pos/order-svc/internal/domain"
	"restaurant-pos/order-svc/internal/metrics"
	"restaurant-pos/order-svc/internal/mocks"
	"restaurant-pos/order-svc/internal/notify"
)

func setupTestRouter(t *testing.T, orders *mocks.OrderServiceInterface, catalog *mocks.CatalogServiceInterface, hub *notify.Hub) (http.Handler, *httpapi.Handler) {
	t.Helper()
	handler := httpapi.NewHandler(orders, catalog, hub, nil)
	handler.UploadDir = t.TempDir()
	handler.Heartbeat = time.Hour

	reg := prometheus.NewRegistry()
	return httpapi.NewRouter(handler, nil, metrics.New(reg), reg), handler
}

func TestCreateOrderHandler(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.OrderServiceInterface)
		wantCode  int
		wantBody  string
	}{
		{
			name: "valid request",
			body: `{"table_id":4,"items":[{"id":1,"quantity":2,"price":20.00,"observation":"no onion","selectedAddons":[{"id":3,"price":3.00}]}],"total_price":46.00}`,
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(in domain.NewOrder) bool {
					return *in.TableID == 4 && len(in.Lines) == 1 && in.Lines[0].Observation == "no onion" &&
						len(in.Lines[0].AddOns) == 1 && in.Total().Equal(decimal.NewFromInt(46))
				}), mock.MatchedBy(func(d *decimal.Decimal) bool { return d != nil && d.Equal(decimal.NewFromInt(46)) })).
					Return(&domain.Order{ID: 11, CreatedAt: createdAt, TotalPrice: decimal.NewFromInt(46)}, nil).Once()
			},
			wantCode: http.StatusCreated,
			wantBody: `{"id":11,"created_at":"2026-03-14T12:00:00Z","total_price":46}`,
		},
		{
			name:      "invalid JSON",
			body:      `{invalid}`,
			setupMock: func(m *mocks.OrderServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "validation error",
			body: `{"table_id":4,"items":[]}`,
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("Create", mock.Anything, mock.Anything, (*decimal.Decimal)(nil)).
					Return(nil, domain.NewValidationError("items", "order has no lines")).Once()
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"items: order has no lines"}`,
		},
		{
			name: "persistence error is hidden",
			body: `{"table_id":4,"items":[{"id":1,"quantity":1,"price":5}]}`,
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("Create", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, &domain.PersistenceError{Op: "commit create order", Err: assert.AnError}).Once()
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderServiceInterface(t)
			testCase.setupMock(orders)
			router, _ := setupTestRouter(t, orders, mocks.NewCatalogServiceInterface(t), nil)

			req := httptest.NewRequest("POST", "/api/orders", bytes.NewBufferString(testCase.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
			if testCase.wantBody != "" {
				assert.JSONEq(t, testCase.wantBody, w.Body.String())
			}
		})
	}
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		body      string
		setupMock func(*mocks.OrderServiceInterface)
		wantCode  int
	}{
		{
			name: "advance",
			id:   "5",
			body: `{"status":"preparing"}`,
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("UpdateStatus", mock.Anything, 5, domain.StatusPreparing).Return(nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "unknown status",
			id:        "5",
			body:      `{"status":"cooking"}`,
			setupMock: func(m *mocks.OrderServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "bad id",
			id:        "abc",
			body:      `{"status":"ready"}`,
			setupMock: func(m *mocks.OrderServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "illegal transition",
			id:   "5",
			body: `{"status":"paid"}`,
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("UpdateStatus", mock.Anything, 5, domain.StatusPaid).
					Return(domain.NewValidationError("status", "cannot move order from pending to paid")).Once()
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "not found",
			id:   "999",
			body: `{"status":"preparing"}`,
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("UpdateStatus", mock.Anything, 999, domain.StatusPreparing).
					Return(&domain.NotFoundError{Resource: "order", ID: 999}).Once()
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderServiceInterface(t)
			testCase.setupMock(orders)
			router, _ := setupTestRouter(t, orders, mocks.NewCatalogServiceInterface(t), nil)

			req := httptest.NewRequest("PATCH", "/api/orders/"+testCase.id, bytes.NewBufferString(testCase.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusOK {
				assert.JSONEq(t, `{"success":true}`, w.Body.String())
			}
		})
	}
}

func TestTableHandlers(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		setupMock func(*mocks.OrderServiceInterface)
		wantCode  int
		wantBody  string
	}{
		{
			name:   "open orders",
			method: "GET",
			path:   "/api/tables/4/orders",
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("ListOpenForTable", mock.Anything, 4).Return([]domain.Order{}, nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `[]`,
		},
		{
			name:   "open orders unknown table",
			method: "GET",
			path:   "/api/tables/77/orders",
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("ListOpenForTable", mock.Anything, 77).Return(nil, &domain.NotFoundError{Resource: "table", ID: 77}).Once()
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"table 77 not found"}`,
		},
		{
			name:   "close",
			method: "POST",
			path:   "/api/tables/4/close",
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("CloseTable", mock.Anything, 4).Return(nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `{"success":true}`,
		},
		{
			name:   "delete order",
			method: "DELETE",
			path:   "/api/orders/8",
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("Delete", mock.Anything, 8).Return(nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `{"success":true}`,
		},
		{
			name:   "list orders",
			method: "GET",
			path:   "/api/orders",
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("List", mock.Anything).Return([]domain.Order{{ID: 1, Status: domain.StatusPending, Items: []domain.OrderLine{}}}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderServiceInterface(t)
			testCase.setupMock(orders)
			router, _ := setupTestRouter(t, orders, mocks.NewCatalogServiceInterface(t), nil)

			req := httptest.NewRequest(testCase.method, testCase.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantBody != "" {
				assert.JSONEq(t, testCase.wantBody, w.Body.String())
			}
		})
	}
}

func TestCatalogHandlers(t *testing.T) {
	catalog := mocks.NewCatalogServiceInterface(t)
	router, _ := setupTestRouter(t, mocks.NewOrderServiceInterface(t), catalog, nil)

	catalog.On("CreateTable", mock.Anything, mock.AnythingOfType("*domain.DiningTable")).
		Return(domain.NewValidationError("", "Table already exists")).Once()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/api/tables", strings.NewReader(`{"number":4}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Table already exists"}`, w.Body.String())

	catalog.On("ListTables", mock.Anything).Return([]domain.DiningTable{
		{ID: 1, Number: 4, Status: domain.TableOccupied},
	}, nil).Once()
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/tables", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"number":4,"status":"occupied"}]`, w.Body.String())

	catalog.On("CreateItem", mock.Anything, mock.MatchedBy(func(item *domain.MenuItem) bool {
		return item.Name == "Pastel" && item.Price.Equal(decimal.RequireFromString("9.5"))
	})).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.MenuItem).ID = 3
	}).Once()
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/api/items", strings.NewReader(`{"name":"Pastel","price":9.5,"category":"dish"}`)))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":3`)

	catalog.On("DeleteAddOn", mock.Anything, 2).Return(&domain.NotFoundError{Resource: "addon", ID: 2}).Once()
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/addons/2", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	catalog.On("TableQRCode", mock.Anything, 1).Return([]byte("\x89PNG"), nil).Once()
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/tables/1/qrcode", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

func TestUploadItemImageHandler(t *testing.T) {
	catalog := mocks.NewCatalogServiceInterface(t)
	router, handler := setupTestRouter(t, mocks.NewOrderServiceInterface(t), catalog, nil)

	newUpload := func(contentType string) *http.Request {
		body := &bytes.Buffer{}
		mw := multipart.NewWriter(body)
		header := make(map[string][]string)
		header["Content-Disposition"] = []string{`form-data; name="image"; filename="pastel.png"`}
		header["Content-Type"] = []string{contentType}
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, _ = part.Write([]byte("\x89PNG fake"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest("POST", "/api/items/3/image", body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		return req
	}

	catalog.On("UpdateItemImage", mock.Anything, 3, "/uploads/item_3_pastel.png").Return(nil).Once()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, newUpload("image/png"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/uploads/item_3_pastel.png")

	stored, err := os.ReadFile(filepath.Join(handler.UploadDir, "item_3_pastel.png"))
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG fake", string(stored))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, newUpload("application/pdf"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	router, _ := setupTestRouter(t, mocks.NewOrderServiceInterface(t), mocks.NewCatalogServiceInterface(t), notify.NewHub(nil, nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "order-svc", body["service"])
	assert.Equal(t, float64(0), body["connections"])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `pos_http_request_duration_seconds_count{code="200",method="GET",route="/health"} 1`)
}

func TestWebSocketReceivesBroadcast(t *testing.T) {
	hub := notify.NewHub(nil, nil)
	router, _ := setupTestRouter(t, mocks.NewOrderServiceInterface(t), mocks.NewCatalogServiceInterface(t), hub)
	srv := httptest.NewServer(router)
	defer srv.Close()

	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer ws.Close()

	require.Eventually(t, func() bool { return hub.Len() == 1 }, 2*time.Second, 10*time.Millisecond)
	hub.Broadcast(domain.OrderUpdatedEvent(9, domain.StatusReady))

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	var event domain.Event
	require.NoError(t, ws.ReadJSON(&event))
	assert.Equal(t, domain.EventOrderUpdated, event.Type)
	assert.Equal(t, 9, event.ID)
	assert.Equal(t, domain.StatusReady, event.Status)

	require.NoError(t, ws.Close())
	assert.Eventually(t, func() bool { return hub.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestEventStreamReceivesBroadcast(t *testing.T) {
	hub := notify.NewHub(nil, nil)
	router, _ := setupTestRouter(t, mocks.NewOrderServiceInterface(t), mocks.NewCatalogServiceInterface(t), hub)
	srv := httptest.NewServer(router)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/events")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "retry: 2000\n", line)

	require.Eventually(t, func() bool { return hub.Len() == 1 }, 2*time.Second, 10*time.Millisecond)
	hub.Broadcast(domain.TableUpdatedEvent(4))

	for {
		line, err = reader.ReadString('\n')
		require.NoError(t, err)
		if strings.HasPrefix(line, "data: ") {
			break
		}
	}
	assert.JSONEq(t, `{"type":"TABLE_UPDATED","id":4}`, strings.TrimSpace(strings.TrimPrefix(line, "data: ")))
}

func TestRealtimeUnavailableWithoutHub(t *testing.T) {
	router, _ := setupTestRouter(t, mocks.NewOrderServiceInterface(t), mocks.NewCatalogServiceInterface(t), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/events", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
