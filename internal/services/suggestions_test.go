package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"permit-workflow/backend/pkg/models"
)

func TestClassifyField(t *testing.T) {
	tests := []struct {
		selector string
		want     models.FieldType
	}{
		{"input#ownerName", models.FieldTypeName},
		{"input#applicant_first", models.FieldTypeName},
		{"txtAddress1", models.FieldTypeAddress},
		{"#property-location", models.FieldTypeAddress},
		{"input#telNumber", models.FieldTypePhone},
		{"mobileContact", models.FieldTypePhone},
		{"input#email", models.FieldTypeEmail},
		{"mailingContact", models.FieldTypeEmail},
		{"select#permitCategory", models.FieldTypePermit},
		{"workType", models.FieldTypePermit},
		{"xyz", models.FieldTypeOther},
		{"", models.FieldTypeOther},
		// name rules outrank permit rules
		{"input#permitOwnerName", models.FieldTypeName},
		// case insensitive
		{"INPUT#OWNERNAME", models.FieldTypeName},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyField(tt.selector))
		})
	}
}

func TestSuggestionsFor(t *testing.T) {
	assert.Equal(t,
		[]string{"user@example.com", "contact@domain.com"},
		SuggestionsFor(models.FieldTypeEmail),
	)
	assert.Equal(t,
		[]string{"Building Permit", "Electrical Permit", "Plumbing Permit"},
		SuggestionsFor(models.FieldTypePermit),
	)

	other := SuggestionsFor(models.FieldTypeOther)
	assert.NotNil(t, other)
	assert.Empty(t, other)
}

func TestSuggest(t *testing.T) {
	result := Suggest("input#contactEmail")

	assert.Equal(t, models.FieldTypeEmail, result.FieldType)
	assert.Equal(t, []string{"user@example.com", "contact@domain.com"}, result.Suggestions)
	assert.Equal(t, 0.85, result.Confidence)
	assert.Equal(t, "pattern_analysis", result.Source)
}
