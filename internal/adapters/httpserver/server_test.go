package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaldez/fitpulse/internal/usecase"
)

func testHandler() http.Handler {
	return New(Config{
		Nutrition:   &usecase.NutritionUC{},
		AdminEmails: map[string]struct{}{"admin@example.com": {}},
		AdminSecret: []byte("test-secret"),
	})
}

func doGet(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doGet(t, testHandler(), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestBMITool(t *testing.T) {
	rec := doGet(t, testHandler(), "/api/tools/bmi?height_cm=175&weight_kg=56.7")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.InDelta(t, 18.51, body["bmi"].(float64), 0.001)
	assert.Equal(t, "Normal weight", body["category"])
}

func TestBMIToolRejectsNonPositive(t *testing.T) {
	rec := doGet(t, testHandler(), "/api/tools/bmi?height_cm=0&weight_kg=-2")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "height_cm")
	assert.Contains(t, body.Errors, "weight_kg")
}

func TestCaloriesTool(t *testing.T) {
	rec := doGet(t, testHandler(), "/api/tools/calories?gender=male&age=30&weight_kg=80&height_cm=180&activity_level=sedentary")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.InDelta(t, 2136.0, body["daily_calories"], 0.001)
}

func TestCaloriesToolValidation(t *testing.T) {
	rec := doGet(t, testHandler(), "/api/tools/calories?gender=unknown")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMissingUserIDHeader(t *testing.T) {
	rec := doGet(t, testHandler(), "/api/cart")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminRouteRequiresCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminCookieRoundtrip(t *testing.T) {
	s := &Server{
		adminAllowed: map[string]struct{}{"admin@example.com": {}},
		adminSecret:  []byte("test-secret"),
	}

	expires := time.Now().Add(time.Hour).Unix()
	value := fmt.Sprintf("admin@example.com|%d|%s", expires, s.signAdmin("admin@example.com", expires))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: adminCookie, Value: value})
	email, ok := s.adminEmail(req)
	assert.True(t, ok)
	assert.Equal(t, "admin@example.com", email)
}

func TestAdminCookieTampered(t *testing.T) {
	s := &Server{
		adminAllowed: map[string]struct{}{"admin@example.com": {}},
		adminSecret:  []byte("test-secret"),
	}

	expires := time.Now().Add(time.Hour).Unix()
	value := fmt.Sprintf("other@example.com|%d|%s", expires, s.signAdmin("admin@example.com", expires))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: adminCookie, Value: value})
	_, ok := s.adminEmail(req)
	assert.False(t, ok)
}

func TestAdminCookieExpired(t *testing.T) {
	s := &Server{
		adminAllowed: map[string]struct{}{"admin@example.com": {}},
		adminSecret:  []byte("test-secret"),
	}

	expires := time.Now().Add(-time.Minute).Unix()
	value := fmt.Sprintf("admin@example.com|%d|%s", expires, s.signAdmin("admin@example.com", expires))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: adminCookie, Value: value})
	_, ok := s.adminEmail(req)
	assert.False(t, ok)
}

func TestRateLimitPerIP(t *testing.T) {
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}), RateLimit(1))

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, first)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, first)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// a different client gets its own window
	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit(t *testing.T) {
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}), RateLimit(2))

	for i := 0; i < 2; i++ {
		rec := doGet(t, h, "/")
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	rec := doGet(t, h, "/")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
