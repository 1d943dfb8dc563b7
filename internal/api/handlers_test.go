package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"permit-workflow/backend/internal/repository"
	"permit-workflow/backend/internal/services"
)

// NoOpLogger for testing
type NoOpLogger struct{}

func (l *NoOpLogger) Debug(msg string, args ...any) {}
func (l *NoOpLogger) Info(msg string, args ...any)  {}
func (l *NoOpLogger) Error(msg string, args ...any) {}

func newTestServer() *echo.Echo {
	store := repository.NewMemoryWorkflowStore()
	handler := NewHandler(store, services.NewAnalyticsService(store), &NoOpLogger{})

	e := echo.New()
	RegisterRoutes(e, handler)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestHandleRoot(t *testing.T) {
	e := newTestServer()

	rec, body := doJSON(t, e, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ServiceName, body["message"])
	assert.Equal(t, "running", body["status"])
	assert.Len(t, body["endpoints"], 5)
}

func TestHandleHealth(t *testing.T) {
	e := newTestServer()

	rec, body := doJSON(t, e, http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, Version, body["version"])
	assert.NotEmpty(t, body["timestamp"])
	assert.NotEmpty(t, body["message"])
}

func TestSaveWorkflow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		e := newTestServer()

		rec, body := doJSON(t, e, http.MethodPost, "/api/workflows/save",
			`{"workflow": {"name": "Test", "steps": [{"selector": "#a"}], "metadata": {"domain": "x.gov"}}}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "1", body["workflow_id"])
		assert.Equal(t, "Workflow saved successfully", body["message"])
	})

	t.Run("missing workflow key", func(t *testing.T) {
		e := newTestServer()

		rec, body := doJSON(t, e, http.MethodPost, "/api/workflows/save", `{"source": "test"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request data", body["error"])
	})

	t.Run("malformed body", func(t *testing.T) {
		e := newTestServer()

		rec, body := doJSON(t, e, http.MethodPost, "/api/workflows/save", `{not json`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request data", body["error"])
	})

	t.Run("sequential ids across requests", func(t *testing.T) {
		e := newTestServer()

		for i := 1; i <= 3; i++ {
			_, body := doJSON(t, e, http.MethodPost, "/api/workflows/save", `{"workflow": {}}`)
			assert.Equal(t, strconv.Itoa(i), body["workflow_id"])
		}
	})
}

func TestListWorkflows(t *testing.T) {
	e := newTestServer()

	rec, body := doJSON(t, e, http.MethodGet, "/api/workflows", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(0), body["count"])
	assert.NotNil(t, body["workflows"])

	doJSON(t, e, http.MethodPost, "/api/workflows/save",
		`{"workflow": {"name": "A", "custom": "field"}, "source": "test_client"}`)

	_, body = doJSON(t, e, http.MethodGet, "/api/workflows", "")
	assert.Equal(t, float64(1), body["count"])

	workflows, ok := body["workflows"].([]any)
	require.True(t, ok)
	require.Len(t, workflows, 1)

	stored, ok := workflows[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "A", stored["name"])
	assert.Equal(t, "field", stored["custom"])
	assert.Equal(t, "1", stored["id"])
	assert.Equal(t, "test_client", stored["source"])
	assert.NotEmpty(t, stored["saved_at"])
}

func TestGetAnalytics(t *testing.T) {
	e := newTestServer()

	save := func(domain string, steps int) {
		t.Helper()
		stepJSON := make([]string, steps)
		for i := range stepJSON {
			stepJSON[i] = `{}`
		}
		body := `{"workflow": {"steps": [` + strings.Join(stepJSON, ",") + `], "metadata": {"domain": "` + domain + `"}}}`
		rec, _ := doJSON(t, e, http.MethodPost, "/api/workflows/save", body)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	save("a.gov", 2)
	save("a.gov", 4)
	save("b.gov", 6)

	t.Run("unfiltered", func(t *testing.T) {
		rec, body := doJSON(t, e, http.MethodGet, "/api/workflows/analytics", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(3), body["total_workflows"])
		assert.Equal(t, float64(2), body["unique_domains"])
		assert.Equal(t, float64(4), body["avg_steps"])
		assert.Len(t, body["recent_activity"], 3)
	})

	t.Run("filtered by domain", func(t *testing.T) {
		rec, body := doJSON(t, e, http.MethodGet, "/api/workflows/analytics?domain=a.gov", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(2), body["total_workflows"])
		assert.Equal(t, float64(1), body["unique_domains"])
		assert.Equal(t, float64(3), body["avg_steps"])
	})
}

func TestGetSuggestions(t *testing.T) {
	e := newTestServer()

	t.Run("classified selector", func(t *testing.T) {
		rec, body := doJSON(t, e, http.MethodPost, "/api/ai/suggestions",
			`{"domain": "x.gov", "field_selector": "input#contactEmail"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "email", body["field_type"])
		assert.Equal(t, 0.85, body["confidence"])
		assert.Equal(t, "pattern_analysis", body["source"])
		assert.Equal(t, []any{"user@example.com", "contact@domain.com"}, body["suggestions"])
	})

	t.Run("unclassified selector gets empty suggestions", func(t *testing.T) {
		rec, body := doJSON(t, e, http.MethodPost, "/api/ai/suggestions",
			`{"field_selector": "xyz"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "other", body["field_type"])
		suggestions, ok := body["suggestions"].([]any)
		require.True(t, ok)
		assert.Empty(t, suggestions)
	})
}
