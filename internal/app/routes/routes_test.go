package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/teczka-budowlanca/backend/internal/app/controllers"
	serviceMocks "github.com/teczka-budowlanca/backend/internal/app/services/mocks"
	"github.com/teczka-budowlanca/backend/internal/middleware"
	"github.com/teczka-budowlanca/backend/internal/pkg/apperrors"
	"github.com/teczka-budowlanca/backend/internal/pkg/identity"
)

type deniedVerifier struct{}

func (deniedVerifier) Verify(_ context.Context, _ string) (*identity.Identity, error) {
	return nil, apperrors.ErrTokenInvalid
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRouter(
		router,
		controllers.NewNoteController(new(serviceMocks.MockNoteService)),
		controllers.NewAssistantController(new(serviceMocks.MockChecklistService)),
		middleware.NewAuthMiddleware(deniedVerifier{}),
	)
	return router
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), "timestamp")
}

func TestUnknownRoute(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/api/unknown", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Route not found")
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	router := newTestRouter()

	paths := []struct {
		method string
		path   string
	}{
		{"POST", "/api/notes"},
		{"GET", "/api/notes/note-1"},
		{"GET", "/api/projects/p/sections/s/notes"},
		{"POST", "/api/ai/inspection-checklist"},
	}

	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", p.method, p.path)
	}
}
