package v1

import (
	"io"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/complaint_analytics/internal/config"
	"github.com/shenikar/complaint_analytics/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(keys ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{APIKeys: keys}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	router := newAuthRouter("valid-key")

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	router := newAuthRouter("valid-key")

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestAPIKeyAuthMiddleware_ValidKeys(t *testing.T) {
	router := newAuthRouter("first-key", "second-key")

	tests := []struct {
		name    string
		headers map[string]string
	}{
		{name: "header", headers: map[string]string{"X-API-Key": "second-key"}},
		{name: "bearer", headers: map[string]string{"Authorization": "Bearer first-key"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := makeRequest(router, "GET", "/test", nil, tt.headers)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestAPIKeyAuthMiddleware_NoConfiguredKeys(t *testing.T) {
	router := newAuthRouter()

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": ""})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "anything"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDHeader))
	})

	t.Run("propagates incoming id", func(t *testing.T) {
		w := makeRequest(router, "GET", "/test", nil, map[string]string{RequestIDHeader: "req-42"})
		assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "req-42", w.Body.String())
	})

	t.Run("generates id", func(t *testing.T) {
		w := makeRequest(router, "GET", "/test", nil)
		rid := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(rid)
		assert.NoError(t, err)
		assert.Equal(t, rid, w.Body.String())
	})
}

func TestNewRouter_ServiceEndpoints(t *testing.T) {
	handler, deps, _ := newTestHandler(t)
	router := NewRouter(handler)
	tenantID := uuid.New()

	deps.sla.EXPECT().ActiveSLA(gomock.Any(), tenantID).Return([]models.ComplaintSLA{}, nil).Times(1)

	w := makeRequest(router, "GET", tenantURL(tenantID, "/sla/complaints"), nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	w = makeRequest(router, "GET", "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",route="/api/v1/tenants/:tenant_id/sla/complaints",status="200"}`)

	w = makeRequest(router, "GET", "/api/v1/system/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewRouter_CORS(t *testing.T) {
	handler, _, _ := newTestHandler(t)
	router := NewRouter(handler)

	w := makeRequest(router, "OPTIONS", "/api/v1/system/health", nil, map[string]string{
		"Origin":                        "http://dashboard.local",
		"Access-Control-Request-Method": "GET",
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewRouter_RestrictedCORS(t *testing.T) {
	handler, _, _ := newTestHandler(t)
	handler.cfg.CORSAllowedOrigins = []string{"http://dashboard.local"}
	router := NewRouter(handler)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil, map[string]string{"Origin": "http://dashboard.local"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://dashboard.local", w.Header().Get("Access-Control-Allow-Origin"))

	w = makeRequest(router, "GET", "/api/v1/system/health", nil, map[string]string{"Origin": "http://evil.local"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
