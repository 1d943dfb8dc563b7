package services

import (
	"strings"

	"permit-workflow/backend/pkg/models"
)

// Fixed metadata returned with every suggestion lookup.
const (
	SuggestionConfidence = 0.85
	SuggestionSource     = "pattern_analysis"
)

// fieldRules are tested in order; the first rule with a keyword appearing in
// the lower-cased selector wins. A selector matching both "name" and "permit"
// therefore classifies as name.
var fieldRules = []struct {
	fieldType models.FieldType
	keywords  []string
}{
	{models.FieldTypeName, []string{"name", "applicant", "owner"}},
	{models.FieldTypeAddress, []string{"address", "street", "property"}},
	{models.FieldTypePhone, []string{"phone", "tel", "mobile"}},
	{models.FieldTypeEmail, []string{"email", "mail"}},
	{models.FieldTypePermit, []string{"permit", "type", "category"}},
}

// suggestionExamples maps each field type to its fixed example values.
var suggestionExamples = map[models.FieldType][]string{
	models.FieldTypeAddress: {"123 Main Street", "456 Oak Avenue", "789 Pine Boulevard"},
	models.FieldTypeName:    {"John Smith", "Jane Doe", "Robert Johnson"},
	models.FieldTypePhone:   {"(555) 123-4567", "555-987-6543", "(305) 555-0123"},
	models.FieldTypeEmail:   {"user@example.com", "contact@domain.com"},
	models.FieldTypePermit:  {"Building Permit", "Electrical Permit", "Plumbing Permit"},
}

// ClassifyField maps a form-field selector to a field type by substring
// matching against the ordered keyword rules. Selectors matching no rule,
// including the empty string, classify as other.
func ClassifyField(selector string) models.FieldType {
	lowered := strings.ToLower(selector)
	for _, rule := range fieldRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.fieldType
			}
		}
	}
	return models.FieldTypeOther
}

// SuggestionsFor returns the example values for a field type. Unknown or
// other field types get an empty list, never nil.
func SuggestionsFor(fieldType models.FieldType) []string {
	if examples, ok := suggestionExamples[fieldType]; ok {
		return examples
	}
	return []string{}
}

// Suggest classifies a selector and bundles the matching examples with the
// fixed provider metadata.
func Suggest(selector string) *models.SuggestionResult {
	fieldType := ClassifyField(selector)
	return &models.SuggestionResult{
		Suggestions: SuggestionsFor(fieldType),
		Confidence:  SuggestionConfidence,
		Source:      SuggestionSource,
		FieldType:   fieldType,
	}
}
