package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-console/internal/audit"
	"github.com/BruksfildServices01/salon-console/internal/backend"
	"github.com/BruksfildServices01/salon-console/internal/config"
	"github.com/BruksfildServices01/salon-console/internal/media"
	"github.com/BruksfildServices01/salon-console/internal/remote"
	"github.com/BruksfildServices01/salon-console/internal/state"
	"github.com/BruksfildServices01/salon-console/internal/timezone"
	"github.com/BruksfildServices01/salon-console/internal/workspace"
)

const scheduleJSON = `{
  "06-04-2025": {
    "availability": {"start_time": "09:00:00", "end_time": "17:00:00"},
    "bookings": [
      {"booking_id": 1, "scheduled_start": "10:00:00", "scheduled_end": "10:30:00", "status": "PENDING",
       "customer": {"name": "Jane"}, "services": [{"service_name": "Cut", "price": 30, "duration_minutes": 30}]},
      {"booking_id": 2, "scheduled_start": "12:00:00", "scheduled_end": "12:30:00", "status": "CANCELLED",
       "customer": {"name": "Ann"}, "services": [{"service_name": "Color", "price": 80, "duration_minutes": 30}]}
    ]
  }
}`

const ordersJSON = `{
  "orders": [
    {"order_code": "A1", "salon_id": 7, "salon_name": "Downtown", "product_id": 3, "quantity": 1, "purchase_price": "10.00", "total": "30", "order_date": "2025-05-01T10:00:00Z"},
    {"order_code": "A1", "salon_id": 7, "salon_name": "Downtown", "product_id": 3, "quantity": 2, "purchase_price": "10", "total": "30", "order_date": "2025-05-01T10:00:00Z"},
    {"order_code": "B2", "salon_id": 8, "salon_name": "Uptown", "product_id": 4, "quantity": 1, "purchase_price": "5", "total": "5", "order_date": "2025-06-01T10:00:00Z"}
  ],
  "pagination": {"current_page": 1, "total_pages": 1}
}`

type backendLog struct {
	mu       sync.Mutex
	requests []string
	bodies   map[string]string
	auth     string
}

func (l *backendLog) record(r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	l.mu.Lock()
	defer l.mu.Unlock()
	key := r.Method + " " + r.URL.Path
	l.requests = append(l.requests, key+"?"+r.URL.RawQuery)
	l.bodies[key] = string(body)
	l.auth = r.Header.Get("Authorization")
}

func fakeBackend(t *testing.T) (*httptest.Server, *backendLog) {
	t.Helper()
	log := &backendLog{bodies: map[string]string{}}

	reply := func(status int, body string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			log.record(r)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = io.WriteString(w, body)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /user/stylist/getSalon", reply(200, `{"salon":{"salon_id":7,"name":"Downtown"}}`))
	mux.HandleFunc("GET /user/stylist/weeklySchedule", reply(200, scheduleJSON))
	mux.HandleFunc("GET /unavailability", reply(200, `{"unavailability":[]}`))
	mux.HandleFunc("DELETE /unavailability", reply(200, `{"message":"deleted"}`))
	mux.HandleFunc("POST /products", reply(409, `{"message":"SKU already exists"}`))
	mux.HandleFunc("POST /products/customer/view-orders", reply(200, ordersJSON))
	mux.HandleFunc("GET /admin/analytics/demographics", reply(200, `{"data":{"female":12}}`))
	mux.HandleFunc("GET /admin/analytics/user-engagement", reply(500, `{"error":"analytics offline"}`))
	mux.HandleFunc("GET /salons/browse", reply(200, `{"salons":[{"salon_id":7,"name":"Downtown"}]}`))
	mux.HandleFunc("GET /salons/7/stylists", reply(200, `[{"employee_id":9,"name":"Sam"}]`))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, log
}

func newServer(t *testing.T) (*gin.Engine, *backendLog) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv, log := fakeBackend(t)
	api := backend.New(remote.New(remote.Options{BaseURL: srv.URL, Timeout: 5 * time.Second}, zap.NewNop()), nil)
	now := time.Date(2025, 6, 4, 8, 0, 0, 0, time.UTC)

	dispatcher := audit.NewDispatcher(audit.NewZapSink(nil), nil)
	t.Cleanup(dispatcher.Close)

	r := gin.New()
	RegisterRoutes(r, Deps{
		Config:      &config.Config{JWTSecret: testSecret},
		Logger:      zap.NewNop(),
		API:         api,
		Registry:    workspace.NewRegistry(api, timezone.FixedClock(now), time.Hour, nil),
		Auditor:     dispatcher,
		Accumulator: state.NewMemoryAccumulator(),
		Resolver:    media.PassThrough{},
	})
	return r, log
}

const testSecret = "shared-secret"

func signedBearer(t *testing.T, key string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return "Bearer " + tok
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	return signedBearer(t, testSecret, jwt.MapClaims{"sub": "42", "role": role, "salon_id": 7})
}

func (l *backendLog) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.requests)
}

func call(r http.Handler, method, path, auth, body string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthAndAuth(t *testing.T) {
	r, _ := newServer(t)

	assert.Equal(t, http.StatusOK, call(r, http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodGet, "/api/stylist/schedule", "", "").Code)
	assert.Equal(t, http.StatusForbidden, call(r, http.MethodGet, "/api/stylist/schedule", bearer(t, "customer"), "").Code)
	assert.Equal(t, http.StatusForbidden, call(r, http.MethodGet, "/api/admin/dashboard", bearer(t, "stylist"), "").Code)
}

func TestStylistSchedule(t *testing.T) {
	r, log := newServer(t)
	auth := bearer(t, "employee")

	w := call(r, http.MethodGet, "/api/stylist/schedule", auth, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Contains(t, log.requests, "GET /user/stylist/weeklySchedule?end_date=06-11-2025&start_date=06-04-2025")
	assert.Equal(t, auth, log.auth)
	body := w.Body.String()
	assert.Contains(t, body, `"start_time":"10:00 AM"`)
	assert.Contains(t, body, `"status":"pending"`)
	assert.Contains(t, body, `"can_navigate_next":true`)

	w = call(r, http.MethodGet, "/api/stylist/schedule/cancelled", auth, "")
	assert.Contains(t, w.Body.String(), `"total":1`)

	w = call(r, http.MethodPost, "/api/stylist/schedule/previous", auth, "")
	assert.Contains(t, w.Body.String(), `"moved":false`)

	w = call(r, http.MethodPost, "/api/stylist/schedule/view", auth, `{"view":"month"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(r, http.MethodPost, "/api/stylist/schedule/view", auth, `{"view":"week"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"week_start":"06-01-2025"`)
	assert.Contains(t, log.requests, "GET /user/stylist/weeklySchedule?end_date=06-14-2025&start_date=06-01-2025")
}

func TestScheduleStateIsPerSession(t *testing.T) {
	r, log := newServer(t)
	victim := bearer(t, "stylist")

	w := call(r, http.MethodGet, "/api/stylist/schedule", victim, "")
	require.Equal(t, http.StatusOK, w.Code)
	before := log.count()

	t.Run("Forged Token Is Rejected", func(t *testing.T) {
		forged := signedBearer(t, "attacker-key", jwt.MapClaims{"sub": "42", "role": "stylist", "salon_id": 7})

		for _, path := range []string{"/api/stylist/schedule/cancelled", "/api/stylist/audit-logs"} {
			w := call(r, http.MethodGet, path, forged, "")
			assert.Equal(t, http.StatusUnauthorized, w.Code, path)
			assert.NotContains(t, w.Body.String(), "Ann", path)
		}
		w := call(r, http.MethodPost, "/api/stylist/schedule/next", forged, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, before, log.count())
	})

	t.Run("Other Session Fetches Its Own Page", func(t *testing.T) {
		other := signedBearer(t, testSecret, jwt.MapClaims{"sub": "42", "role": "stylist", "iat": 1})

		w := call(r, http.MethodGet, "/api/stylist/schedule/cancelled", other, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Greater(t, log.count(), before)
		assert.Equal(t, other, log.auth)
	})
}

func TestPanels(t *testing.T) {
	r, log := newServer(t)
	auth := bearer(t, "stylist")

	t.Run("Duplicate Product", func(t *testing.T) {
		w := call(r, http.MethodPost, "/api/products", auth, `{"name":"Shampoo","price":12.5,"stock_quantity":2,"sku":"SH-1"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `"error_code":"duplicate_key"`)
		assert.Contains(t, w.Body.String(), `"modal_open":true`)
	})

	t.Run("Invalid Product Never Reaches Backend", func(t *testing.T) {
		before := len(log.requests)
		w := call(r, http.MethodPost, "/api/products", auth, `{"name":"","price":0}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"validation_failed"`)
		assert.Len(t, log.requests, before)
	})

	t.Run("Unavailability Delete Needs Confirmation", func(t *testing.T) {
		slot := `{"weekday":1,"start_time":"09:00:00","end_time":"10:00:00"}`

		w := call(r, http.MethodDelete, "/api/stylist/unavailability", auth, slot)
		assert.Equal(t, http.StatusPreconditionRequired, w.Code)

		w = call(r, http.MethodDelete, "/api/stylist/unavailability", auth, slot, "X-Confirm", "true")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.JSONEq(t, slot, log.bodies["DELETE /unavailability"])
	})

	t.Run("Bad Slot", func(t *testing.T) {
		w := call(r, http.MethodDelete, "/api/stylist/unavailability", auth, `{"weekday":9,"start_time":"09:00","end_time":"10:00"}`, "X-Confirm", "true")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error_code":"invalid_slot","message":"weekday must be at most 6"}`, w.Body.String())
	})

	t.Run("Bad Path Id", func(t *testing.T) {
		w := call(r, http.MethodPatch, "/api/stylist/services/abc", auth, `{"name":"Cut"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error_code":"invalid_id","message":"invalid request parameter"}`, w.Body.String())
	})
}

func TestOrdersGalleryAdmin(t *testing.T) {
	r, _ := newServer(t)

	w := call(r, http.MethodGet, "/api/orders", bearer(t, "customer"), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := w.Body.String()
	assert.Contains(t, body, `"quantity":3`)
	assert.Less(t, strings.Index(body, `"order_code":"B2"`), strings.Index(body, `"order_code":"A1"`))
	assert.Contains(t, body, `"salon_name":"Uptown"`)

	w = call(r, http.MethodGet, "/api/salons/7/stylists", bearer(t, "customer"), "")
	assert.Contains(t, w.Body.String(), `"total":1`)

	w = call(r, http.MethodGet, "/api/gallery?salon_id=7", bearer(t, "customer"), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(r, http.MethodGet, "/api/admin/dashboard", bearer(t, "admin"), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"error":"analytics offline"`)
	assert.Contains(t, w.Body.String(), `"female":12`)

	w = call(r, http.MethodGet, "/api/stylist/audit-logs", bearer(t, "stylist"), "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
