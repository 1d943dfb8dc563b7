package models

// DomainCount is one entry of the popular-domains ranking.
type DomainCount struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

// ActivityEntry is a projected view of a recently saved workflow.
type ActivityEntry struct {
	Name      string `json:"name"`
	Domain    string `json:"domain"`
	Steps     int    `json:"steps"`
	CreatedAt string `json:"created_at"`
}

// Analytics is the aggregate snapshot computed over the current store
// contents, optionally restricted to a single domain.
type Analytics struct {
	TotalWorkflows int             `json:"total_workflows"`
	UniqueDomains  int             `json:"unique_domains"`
	AvgSteps       float64         `json:"avg_steps"`
	PopularDomains []DomainCount   `json:"popular_domains"`
	RecentActivity []ActivityEntry `json:"recent_activity"`
}

// FieldType is the closed set of form-field categories the classifier emits.
type FieldType string

const (
	FieldTypeName    FieldType = "name"
	FieldTypeAddress FieldType = "address"
	FieldTypePhone   FieldType = "phone"
	FieldTypeEmail   FieldType = "email"
	FieldTypePermit  FieldType = "permit"
	FieldTypeOther   FieldType = "other"
)

// SuggestionResult carries example values for a classified field selector.
// Confidence and Source are fixed by the pattern-analysis provider.
type SuggestionResult struct {
	Suggestions []string  `json:"suggestions"`
	Confidence  float64   `json:"confidence"`
	Source      string    `json:"source"`
	FieldType   FieldType `json:"field_type"`
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	Version   string `json:"version"`
}
