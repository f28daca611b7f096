package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"admissions-skill/internal/locale"
	"admissions-skill/internal/models"
)

func TestFormatterFormat(t *testing.T) {
	f := NewFormatter(locale.Get(locale.USLocale))

	tests := []struct {
		name     string
		attr     models.Attribute
		rawName  string
		result   *models.LookupResult
		validate func(t *testing.T, got Message)
	}{
		{
			name:    "absent record uses no-university template with raw name",
			attr:    models.AttributeTuition,
			rawName: "brwn university",
			result:  nil,
			validate: func(t *testing.T, got Message) {
				assert.False(t, got.SSML)
				assert.Equal(t, "Hmm. I couldn't find data for brwn university.", got.Text)
			},
		},
		{
			name:    "blank attribute uses attribute-specific no-data template",
			attr:    models.AttributeFinancialAid,
			rawName: "Reed College",
			result:  &models.LookupResult{UniversityName: "Reed College"},
			validate: func(t *testing.T, got Message) {
				assert.False(t, got.SSML)
				assert.Equal(t, "No information available for financial aid packages in Reed College.", got.Text)
			},
		},
		{
			name:    "value is formatted with canonical name and marked up",
			attr:    models.AttributeApplicationFee,
			rawName: "reed",
			result:  &models.LookupResult{UniversityName: "Reed College", Value: "75"},
			validate: func(t *testing.T, got Message) {
				assert.True(t, got.SSML)
				assert.Contains(t, got.Text, "Application fee for Reed College is")
				assert.Contains(t, got.Text, `<say-as interpret-as="unit">75</say-as>`)
				// Currency insertion is a tuition-only behavior.
				assert.NotContains(t, got.Text, "$75")
			},
		},
		{
			name:    "tuition value gains currency symbol before markup",
			attr:    models.AttributeTuition,
			rawName: "brown",
			result:  &models.LookupResult{UniversityName: "Brown University", Value: "58,404 per year"},
			validate: func(t *testing.T, got Message) {
				assert.True(t, got.SSML)
				assert.Contains(t, got.Text, `<say-as interpret-as="unit">$58,404</say-as>`)
			},
		},
		{
			name:    "admission rate value is substituted verbatim",
			attr:    models.AttributeAdmissionRate,
			rawName: "stanford",
			result:  &models.LookupResult{UniversityName: "Stanford University", Value: "5%"},
			validate: func(t *testing.T, got Message) {
				assert.True(t, got.SSML)
				assert.Contains(t, got.Text, "Admission rate in Stanford University is")
				assert.Contains(t, got.Text, `<say-as interpret-as="unit">5%</say-as>`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, f.Format(tt.attr, tt.rawName, tt.result))
		})
	}
}
