package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/teczka-budowlanca/backend/internal/app/controllers"
	"github.com/teczka-budowlanca/backend/internal/app/models/dto"
	"github.com/teczka-budowlanca/backend/internal/middleware"
)

// SetupRouter configures all application routes. There is exactly one route
// tree; notes are reachable only through it.
func SetupRouter(
	router *gin.Engine,
	noteController *controllers.NoteController,
	assistantController *controllers.AssistantController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Liveness endpoint, no auth
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"service":   "teczka-budowlanca-api",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := router.Group("/api")
	api.Use(authMiddleware.RequireAuth())

	// Note routes
	notes := api.Group("/notes")
	{
		notes.POST("", noteController.CreateNote)
		notes.GET("/:noteId", noteController.GetNoteByID)
		notes.PUT("/:noteId", noteController.UpdateNote)
		notes.DELETE("/:noteId", noteController.DeleteNote)
		notes.POST("/:noteId/images", noteController.UploadImage)
		notes.POST("/:noteId/audio", noteController.UploadAudio)
	}

	// Section-scoped note listing
	api.GET("/projects/:projectId/sections/:sectionId/notes", noteController.GetNotesBySection)

	// Assistant routes
	ai := api.Group("/ai")
	{
		ai.POST("/inspection-checklist", assistantController.GenerateInspectionChecklist)
		ai.POST("/questions", assistantController.GenerateContractorQuestions)
	}

	// Unknown paths get the same envelope as every other error
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Route not found").
				WithDetails(c.Request.Method+" "+c.Request.URL.Path)))
	})
}

// SetupMetrics exposes the prometheus scrape endpoint.
func SetupMetrics(router *gin.Engine, registry *prometheus.Registry) {
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
}
