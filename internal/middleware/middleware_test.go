package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teczka-budowlanca/backend/internal/pkg/apperrors"
	"github.com/teczka-budowlanca/backend/internal/pkg/identity"
)

type stubVerifier struct {
	identity *identity.Identity
	err      error
}

func (s *stubVerifier) Verify(_ context.Context, _ string) (*identity.Identity, error) {
	return s.identity, s.err
}

func newAuthRouter(verifier identity.Verifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	authMiddleware := NewAuthMiddleware(verifier)
	router.GET("/protected", authMiddleware.RequireAuth(), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return router
}

func TestRequireAuth_ValidToken(t *testing.T) {
	router := newAuthRouter(&stubVerifier{identity: &identity.Identity{UserID: "user-1", Email: "jan@example.com"}})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	router := newAuthRouter(&stubVerifier{identity: &identity.Identity{UserID: "user-1"}})

	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_003")
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	router := newAuthRouter(&stubVerifier{err: apperrors.ErrTokenExpired})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_002")
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	router := newAuthRouter(&stubVerifier{err: apperrors.ErrTokenInvalid})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_001")
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{name: "note not found", err: apperrors.ErrNoteNotFound, expectedStatus: 404, expectedCode: "RES_001"},
		{name: "wrapped not found", err: fmt.Errorf("get note error: %w", apperrors.ErrNoteNotFound), expectedStatus: 404, expectedCode: "RES_001"},
		{name: "validation failed", err: apperrors.NewValidationError("Missing required fields: content"), expectedStatus: 400, expectedCode: "VAL_001"},
		{name: "bad request", err: apperrors.ErrBadRequest, expectedStatus: 400, expectedCode: "VAL_002"},
		{name: "token expired", err: apperrors.ErrTokenExpired, expectedStatus: 401, expectedCode: "AUTH_002"},
		{name: "unauthorized", err: apperrors.ErrUnauthorized, expectedStatus: 401, expectedCode: "AUTH_003"},
		{name: "assistant unavailable", err: apperrors.ErrAssistantUnavailable, expectedStatus: 502, expectedCode: "SRV_003"},
		{name: "not implemented", err: apperrors.ErrNotImplemented, expectedStatus: 501, expectedCode: "SRV_004"},
		{name: "unknown error", err: fmt.Errorf("connection refused"), expectedStatus: 500, expectedCode: "SRV_001"},
	}

	gin.SetMode(gin.TestMode)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)

			HandleAPIError(c, tc.err)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedCode)
		})
	}
}

func TestHandleAPIError_SurfacesCustomMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", nil)

	HandleAPIError(c, apperrors.NewValidationError("Missing required fields: content, sectionId"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields: content, sectionId")
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestID_PreservesIncoming(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "incoming-id")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "incoming-id", w.Header().Get(RequestIDHeader))
}

func TestCORS_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest("OPTIONS", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetrics_CountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	registry := prometheus.NewRegistry()
	metrics, err := NewMetricsMiddleware(registry)
	require.NoError(t, err)

	router := gin.New()
	router.Use(metrics.Handler())
	router.GET("/api/notes/:noteId", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest("GET", "/api/notes/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	count := testutil.ToFloat64(metrics.requestCount.WithLabelValues("GET", "/api/notes/:noteId", "200"))
	assert.Equal(t, float64(1), count)
}

func TestMetrics_DuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := NewMetricsMiddleware(registry)
	require.NoError(t, err)

	_, err = NewMetricsMiddleware(registry)
	assert.Error(t, err)
}
