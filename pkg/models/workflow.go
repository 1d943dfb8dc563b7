// Package models defines the domain models for the permit workflow service
package models

// Defaults applied when a submitted workflow omits a field. The stored
// document is left exactly as submitted; defaults apply at read time only,
// except for Source which is stamped at insertion.
const (
	DefaultName   = "Unnamed Workflow"
	DefaultDomain = "unknown"
	DefaultSource = "chrome_extension"
)

// Workflow is a submitted recording of a form-filling session. The shape is
// caller-defined: the extension sends arbitrary step records and metadata, so
// the document stays a string-keyed map and round-trips unchanged through the
// API. Accessors below read the handful of keys the service interprets.
type Workflow map[string]any

// ID returns the store-assigned identifier, or "" before insertion.
func (w Workflow) ID() string {
	id, _ := w["id"].(string)
	return id
}

// Name returns the display name, defaulting to DefaultName when absent.
func (w Workflow) Name() string {
	if name, ok := w["name"].(string); ok && name != "" {
		return name
	}
	return DefaultName
}

// Metadata returns the metadata mapping, or nil when absent.
func (w Workflow) Metadata() map[string]any {
	meta, _ := w["metadata"].(map[string]any)
	return meta
}

// Domain returns metadata.domain, defaulting to DefaultDomain when absent.
func (w Workflow) Domain() string {
	if domain, ok := w.Metadata()["domain"].(string); ok && domain != "" {
		return domain
	}
	return DefaultDomain
}

// StepCount returns the number of recorded steps.
func (w Workflow) StepCount() int {
	steps, _ := w["steps"].([]any)
	return len(steps)
}

// SavedAt returns the insertion timestamp, or "unknown" before insertion.
func (w Workflow) SavedAt() string {
	if savedAt, ok := w["saved_at"].(string); ok && savedAt != "" {
		return savedAt
	}
	return "unknown"
}

// Source returns the submitting client identifier.
func (w Workflow) Source() string {
	source, _ := w["source"].(string)
	return source
}
