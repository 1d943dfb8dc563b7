package repository

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"permit-workflow/backend/pkg/models"
)

// MemoryWorkflowStore is an in-memory, goroutine-safe implementation of the
// WorkflowStore interface. Contents live for the process lifetime only;
// durability is deliberately out of scope.
type MemoryWorkflowStore struct {
	mu        sync.RWMutex
	workflows []models.Workflow
}

// NewMemoryWorkflowStore creates a new, empty MemoryWorkflowStore.
func NewMemoryWorkflowStore() *MemoryWorkflowStore {
	return &MemoryWorkflowStore{
		workflows: make([]models.Workflow, 0),
	}
}

// Ensure MemoryWorkflowStore implements the interface.
var _ WorkflowStore = (*MemoryWorkflowStore)(nil)

// Insert validates the envelope and appends the workflow. The count read and
// the append happen under one lock so assigned ids stay a dense "1".."N"
// sequence even under concurrent submissions.
func (s *MemoryWorkflowStore) Insert(ctx context.Context, envelope map[string]any) (string, error) {
	if envelope == nil {
		return "", fmt.Errorf("%w: empty request body", ErrInvalidInput)
	}
	raw, ok := envelope["workflow"]
	if !ok {
		return "", fmt.Errorf("%w: missing workflow", ErrInvalidInput)
	}
	doc, ok := raw.(map[string]any)
	if !ok || doc == nil {
		return "", fmt.Errorf("%w: workflow must be an object", ErrInvalidInput)
	}

	source := models.DefaultSource
	if submitted, ok := envelope["source"].(string); ok && submitted != "" {
		source = submitted
	}

	workflow := models.Workflow(doc)

	s.mu.Lock()
	defer s.mu.Unlock()

	id := strconv.Itoa(len(s.workflows) + 1)
	workflow["id"] = id
	workflow["saved_at"] = time.Now().UTC().Format(time.RFC3339)
	workflow["source"] = source
	s.workflows = append(s.workflows, workflow)

	return id, nil
}

// ListAll returns the stored workflows in insertion order. The slice is
// shared with the store; the collection is append-only so callers see a
// consistent snapshot and must not mutate entries.
func (s *MemoryWorkflowStore) ListAll(ctx context.Context) ([]models.Workflow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.workflows, nil
}

// FilterByDomain returns the workflows recorded for domain, in insertion
// order. Workflows without a metadata.domain count as "unknown".
func (s *MemoryWorkflowStore) FilterByDomain(ctx context.Context, domain string) ([]models.Workflow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Workflow, 0)
	for _, workflow := range s.workflows {
		if workflow.Domain() == domain {
			result = append(result, workflow)
		}
	}

	return result, nil
}
