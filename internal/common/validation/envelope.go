// Package validation checks inbound platform envelopes against a JSON schema
// before they reach the intent router.
package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

const envelopeSchema = `{
	"type": "object",
	"required": ["request"],
	"properties": {
		"version": {"type": "string"},
		"session": {
			"type": "object",
			"properties": {
				"new": {"type": "boolean"},
				"sessionId": {"type": "string"},
				"attributes": {"type": ["object", "null"]}
			}
		},
		"request": {
			"type": "object",
			"required": ["type"],
			"properties": {
				"type": {
					"type": "string",
					"enum": ["LaunchRequest", "IntentRequest", "SessionEndedRequest"]
				},
				"requestId": {"type": "string"},
				"locale": {"type": "string"},
				"intent": {
					"type": "object",
					"properties": {
						"name": {"type": "string"},
						"slots": {"type": "object"}
					}
				}
			}
		}
	}
}`

var envelopeLoader = gojsonschema.NewStringLoader(envelopeSchema)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidateEnvelope validates a raw request envelope document. The returned
// error covers malformed JSON or schema machinery failures; schema violations
// come back inside the result.
func ValidateEnvelope(raw []byte) (*ValidationResult, error) {
	res, err := gojsonschema.Validate(envelopeLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("validate envelope: %w", err)
	}

	result := &ValidationResult{Valid: res.Valid()}
	for _, e := range res.Errors() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   e.Field(),
			Message: e.Description(),
		})
	}
	return result, nil
}
