// Package api contains the HTTP handlers for the permit workflow service
package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"permit-workflow/backend/internal/repository"
	"permit-workflow/backend/internal/services"
	"permit-workflow/backend/pkg/models"
)

// ServiceName and Version identify the API in the health and root responses.
const (
	ServiceName = "AI Permit Workflow API"
	Version     = "1.0.0"
)

// Logger is the logging surface the handlers need.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// Handler holds the dependencies for the REST API.
type Handler struct {
	store     repository.WorkflowStore
	analytics *services.AnalyticsService
	logger    Logger
}

// NewHandler creates a new Handler with required dependencies.
func NewHandler(store repository.WorkflowStore, analytics *services.AnalyticsService, logger Logger) *Handler {
	return &Handler{
		store:     store,
		analytics: analytics,
		logger:    logger,
	}
}

// RegisterRoutes mounts every API route on the echo instance.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/", h.HandleRoot)
	e.GET("/api/health", h.HandleHealth)
	e.POST("/api/workflows/save", h.SaveWorkflow)
	e.GET("/api/workflows/analytics", h.GetAnalytics)
	e.POST("/api/ai/suggestions", h.GetSuggestions)
	e.GET("/api/workflows", h.ListWorkflows)
}

// HandleRoot describes the service and its endpoints.
// (GET /)
func (h *Handler) HandleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message": ServiceName,
		"status":  "running",
		"endpoints": []string{
			"/api/health",
			"/api/workflows/save",
			"/api/workflows/analytics",
			"/api/ai/suggestions",
			"/api/workflows",
		},
	})
}

// HandleHealth returns basic health status (always returns 200 OK).
// (GET /api/health)
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Message:   ServiceName + " is running",
		Version:   Version,
	})
}
