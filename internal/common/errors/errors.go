// Package errors provides standardized error handling for the skill and its
// change-feed companion.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeEnvelopeInvalid ErrorCode = "ENVELOPE_INVALID"

	ErrCodeSearchCredentialsMissing ErrorCode = "SEARCH_CREDENTIALS_MISSING"
	ErrCodeSearchQueryFailed        ErrorCode = "SEARCH_QUERY_FAILED"

	ErrCodeStoreGetFailed ErrorCode = "STORE_GET_FAILED"

	ErrCodeSyncWriteFailed  ErrorCode = "SYNC_WRITE_FAILED"
	ErrCodeSyncDeleteFailed ErrorCode = "SYNC_DELETE_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewEnvelopeInvalidError creates a non-retryable request envelope error.
func NewEnvelopeInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeEnvelopeInvalid,
		Message:   "Request envelope failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchCredentialsMissingError creates a non-retryable configuration
// error for an unsigned search call.
func NewSearchCredentialsMissingError() *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchCredentialsMissing,
		Message:   "Search index credentials are not configured",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchQueryFailedError creates a retryable search index error.
func NewSearchQueryFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchQueryFailed,
		Message:   "Search index query error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewStoreGetFailedError creates a retryable key-value store error.
func NewStoreGetFailedError(universityName string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreGetFailed,
		Message:   "Key-value store read error",
		Details:   fmt.Sprintf("universityName: %s, error: %s", universityName, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSyncWriteFailedError creates a retryable index upsert error.
func NewSyncWriteFailedError(documentID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSyncWriteFailed,
		Message:   "Search index upsert error",
		Details:   fmt.Sprintf("documentId: %s, error: %s", documentID, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSyncDeleteFailedError creates a retryable index delete error.
func NewSyncDeleteFailedError(documentID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSyncDeleteFailed,
		Message:   "Search index delete error",
		Details:   fmt.Sprintf("documentId: %s, error: %s", documentID, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// IsRetryable reports whether err carries a retryable StandardError. Neither
// function retries on its own; the flag is informational for operators.
func IsRetryable(err error) bool {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Retryable
	}
	return false
}
