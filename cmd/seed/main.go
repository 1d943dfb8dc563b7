package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"

	"permit-workflow/backend/internal/logging"
)

// sampleWorkflows are demo recordings covering a few domains and step counts
// so analytics and the extension UI have something to show during
// development. The store is process memory only, so seeding goes through the
// running server's public API.
var sampleWorkflows = []map[string]any{
	{
		"workflow": map[string]any{
			"name": "Building Permit Application",
			"steps": []any{
				map[string]any{"selector": "input#applicantName", "value": "John Smith"},
				map[string]any{"selector": "input#propertyAddress", "value": "123 Main Street"},
				map[string]any{"selector": "select#permitType", "value": "Building Permit"},
			},
			"metadata": map[string]any{"domain": "permits.miamidade.gov"},
		},
	},
	{
		"workflow": map[string]any{
			"name": "Electrical Permit Renewal",
			"steps": []any{
				map[string]any{"selector": "input#ownerName", "value": "Jane Doe"},
				map[string]any{"selector": "input#contactEmail", "value": "user@example.com"},
			},
			"metadata": map[string]any{"domain": "permits.miamidade.gov"},
		},
	},
	{
		"workflow": map[string]any{
			"name": "Plumbing Inspection Request",
			"steps": []any{
				map[string]any{"selector": "input#applicantPhone", "value": "(305) 555-0123"},
			},
			"metadata": map[string]any{"domain": "aca.broward.org"},
		},
		"source": "seed_script",
	},
}

func main() {
	logger := logging.NewDevelopmentLogger()
	defer logger.Sync()

	serverURL := flag.String("server", "http://localhost:5001", "Base URL of the running server")
	flag.Parse()

	for _, envelope := range sampleWorkflows {
		id, err := saveWorkflow(*serverURL, envelope)
		if err != nil {
			log.Fatalf("Failed to seed workflow: %v", err)
		}
		logger.Info("Seeded workflow", "workflow_id", id)
	}

	logger.Info("Seeding complete", "count", len(sampleWorkflows))
}

func saveWorkflow(serverURL string, envelope map[string]any) (string, error) {
	body, err := json.Marshal(envelope)
	if err != nil {
		return "", fmt.Errorf("failed to marshal workflow: %w", err)
	}

	resp, err := http.Post(serverURL+"/api/workflows/save", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	var result struct {
		WorkflowID string `json:"workflow_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}

	return result.WorkflowID, nil
}
