package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"permit-workflow/backend/internal/repository"
	"permit-workflow/backend/pkg/models"
)

// SaveWorkflow stores a workflow submitted by the extension.
// (POST /api/workflows/save)
func (h *Handler) SaveWorkflow(c echo.Context) error {
	var envelope map[string]any
	if err := c.Bind(&envelope); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error": "Invalid request data",
		})
	}

	id, err := h.store.Insert(c.Request().Context(), envelope)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, map[string]any{
				"error": "Invalid request data",
			})
		}
		h.logger.Error("failed to save workflow", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"error":   "Failed to save workflow",
			"details": err.Error(),
		})
	}

	if doc, ok := envelope["workflow"].(map[string]any); ok {
		workflow := models.Workflow(doc)
		h.logger.Info("workflow saved",
			"workflow_id", id,
			"name", workflow.Name(),
			"domain", workflow.Domain(),
		)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":     true,
		"workflow_id": id,
		"message":     "Workflow saved successfully",
	})
}

// GetAnalytics returns aggregate statistics, optionally filtered by the
// domain query parameter.
// (GET /api/workflows/analytics)
func (h *Handler) GetAnalytics(c echo.Context) error {
	domain := c.QueryParam("domain")

	analytics, err := h.analytics.Compute(c.Request().Context(), domain)
	if err != nil {
		h.logger.Error("failed to compute analytics", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"error":   "Failed to get analytics",
			"details": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, analytics)
}

// ListWorkflows returns every stored workflow.
// (GET /api/workflows)
func (h *Handler) ListWorkflows(c echo.Context) error {
	workflows, err := h.store.ListAll(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list workflows", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"error":   "Failed to get workflows",
			"details": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"workflows": workflows,
		"count":     len(workflows),
	})
}
