package repository

import (
	"context"
	"errors"

	"permit-workflow/backend/pkg/models"
)

// ErrInvalidInput signals a malformed or incomplete submission envelope.
// The API boundary maps it to a 400 response.
var ErrInvalidInput = errors.New("invalid input")

// WorkflowStore is an interface for storing and retrieving workflow
// recordings. The collection is append-only: there is no update or delete,
// and a workflow's fields never change after insertion.
type WorkflowStore interface {
	// Insert validates the submission envelope, assigns the next id,
	// stamps saved_at and source, and appends the workflow. Returns the
	// assigned id.
	Insert(ctx context.Context, envelope map[string]any) (string, error)
	// ListAll returns every stored workflow in insertion order.
	ListAll(ctx context.Context) ([]models.Workflow, error)
	// FilterByDomain returns the workflows whose metadata.domain equals
	// domain, in insertion order.
	FilterByDomain(ctx context.Context, domain string) ([]models.Workflow, error)
}
