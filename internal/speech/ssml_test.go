package speech

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkupNumbers(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		validate func(t *testing.T, got string)
	}{
		{
			name:    "wraps grouped number once",
			message: "Tuition cost for Harvard College is 45,000.",
			validate: func(t *testing.T, got string) {
				assert.Equal(t, 1, strings.Count(got, `<say-as interpret-as="unit">45,000</say-as>`))
				assert.True(t, strings.HasPrefix(got, "<speak>"))
				assert.True(t, strings.HasSuffix(got, "</speak>"))
			},
		},
		{
			name:    "wraps percent token",
			message: "Admission rate in Stanford University is 4.08%.",
			validate: func(t *testing.T, got string) {
				assert.Contains(t, got, `<say-as interpret-as="unit">4.08%</say-as>`)
			},
		},
		{
			name:    "wraps currency token",
			message: "Tuition cost for Reed College is $56,340 per year.",
			validate: func(t *testing.T, got string) {
				assert.Contains(t, got, `<say-as interpret-as="unit">$56,340</say-as>`)
			},
		},
		{
			name:    "distinct tokens each wrapped",
			message: "Fee is 75 and tuition is 45,000 total.",
			validate: func(t *testing.T, got string) {
				assert.Contains(t, got, `<say-as interpret-as="unit">75</say-as>`)
				assert.Contains(t, got, `<say-as interpret-as="unit">45,000</say-as>`)
			},
		},
		{
			name:    "repeated literal replaced in one pass",
			message: "Fee is 75 here and 75 there.",
			validate: func(t *testing.T, got string) {
				assert.Equal(t, 2, strings.Count(got, `<say-as interpret-as="unit">75</say-as>`))
			},
		},
		{
			name:    "no numbers leaves text untouched inside wrapper",
			message: "Ok.",
			validate: func(t *testing.T, got string) {
				assert.Equal(t, "<speak>Ok.</speak>", got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, MarkupNumbers(tt.message))
		})
	}
}

func TestInsertCurrencySymbol(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "prefixes trailing-whitespace number",
			message: "Tuition cost for Brown University is 58,404 per year.",
			want:    "Tuition cost for Brown University is $58,404 per year.",
		},
		{
			name:    "skips number already prefixed",
			message: "Tuition cost is $58,404 per year.",
			want:    "Tuition cost is $58,404 per year.",
		},
		{
			name:    "number at end of sentence is not prefixed",
			message: "Tuition cost for Brown University is 58,404.",
			want:    "Tuition cost for Brown University is 58,404.",
		},
		{
			name:    "no numbers",
			message: "Ok.",
			want:    "Ok.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InsertCurrencySymbol(tt.message))
		})
	}
}
