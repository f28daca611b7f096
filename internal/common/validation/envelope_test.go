package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnvelope(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantValid bool
		wantErr   bool
	}{
		{
			name: "launch request",
			raw: `{
				"version": "1.0",
				"session": {"new": true, "sessionId": "s-1"},
				"request": {"type": "LaunchRequest", "locale": "en-US"}
			}`,
			wantValid: true,
		},
		{
			name: "intent request with slots and attributes",
			raw: `{
				"session": {"attributes": {"LOCALE": "en-US", "last_search": "brown"}},
				"request": {
					"type": "IntentRequest",
					"intent": {"name": "SearchForTuition", "slots": {"universityName": {"name": "universityName", "value": "brown"}}}
				}
			}`,
			wantValid: true,
		},
		{
			name:      "null session attributes accepted",
			raw:       `{"session": {"attributes": null}, "request": {"type": "SessionEndedRequest"}}`,
			wantValid: true,
		},
		{
			name:      "missing request rejected",
			raw:       `{"version": "1.0", "session": {}}`,
			wantValid: false,
		},
		{
			name:      "unknown request type rejected",
			raw:       `{"request": {"type": "PurchaseRequest"}}`,
			wantValid: false,
		},
		{
			name:      "request missing type rejected",
			raw:       `{"request": {"locale": "en-US"}}`,
			wantValid: false,
		},
		{
			name:    "malformed json is an error",
			raw:     `{"request": `,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateEnvelope([]byte(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.Valid)
			if !tt.wantValid {
				assert.NotEmpty(t, result.Errors)
			}
		})
	}
}
