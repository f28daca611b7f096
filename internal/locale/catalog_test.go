package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name       string
		locale     string
		wantLocale string
	}{
		{name: "US locale", locale: USLocale, wantLocale: "en-US"},
		{name: "GB locale", locale: GBLocale, wantLocale: "en-GB"},
		{name: "unknown locale falls back to English with tag kept", locale: "de-DE", wantLocale: "de-DE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Get(tt.locale)
			assert.Equal(t, tt.wantLocale, res.Locale)
			assert.NotEmpty(t, res.WelcomeMessage)
			assert.NotEmpty(t, res.ShutdownMessage)
			assert.NotEmpty(t, res.HelpMessage)
			assert.Len(t, res.SampleMessages, 4)
		})
	}
}

func TestResourceTemplates(t *testing.T) {
	res := Get(USLocale)

	assert.Contains(t, res.WelcomeMessage, "Admission info")
	assert.Contains(t, res.ApplicationFeeMessage, "%s")
	assert.Contains(t, res.TuitionMessage, "%s")
	assert.Contains(t, res.FinancialAidMessage, "%s")
	assert.Contains(t, res.AdmissionRateMessage, "%s")
	assert.Contains(t, res.NoUniversityFound, "%s")
}
