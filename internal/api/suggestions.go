package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"permit-workflow/backend/internal/services"
)

// suggestionRequest is the body of a field-suggestion lookup. Domain is
// accepted for forward compatibility but suggestions are currently selected
// by field type alone.
type suggestionRequest struct {
	Domain        string `json:"domain"`
	FieldSelector string `json:"field_selector"`
}

// GetSuggestions classifies a form-field selector and returns example values
// for it.
// (POST /api/ai/suggestions)
func (h *Handler) GetSuggestions(c echo.Context) error {
	var req suggestionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"error":       "Failed to get suggestions",
			"suggestions": []string{},
		})
	}

	result := services.Suggest(req.FieldSelector)
	h.logger.Debug("field classified",
		"field_selector", req.FieldSelector,
		"field_type", result.FieldType,
	)

	return c.JSON(http.StatusOK, result)
}
