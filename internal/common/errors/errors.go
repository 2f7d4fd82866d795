// internal/common/errors/errors.go

// Package errors defines the error taxonomy of the inventory assistant and its
// mapping onto BPMN errors for the workflow worker.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInputInvalid ErrorCode = "INPUT_INVALID"

	ErrCodeOracleUnavailable ErrorCode = "ORACLE_UNAVAILABLE"
	ErrCodeOracleMalformed   ErrorCode = "ORACLE_MALFORMED"

	ErrCodeDataUnavailable ErrorCode = "DATA_UNAVAILABLE"

	ErrCodeSlotMissing      ErrorCode = "SLOT_MISSING"
	ErrCodeSupplierNotFound ErrorCode = "SUPPLIER_NOT_FOUND"

	ErrCodeNotificationNotConfigured ErrorCode = "NOTIFICATION_NOT_CONFIGURED"
	ErrCodeNotificationSendFailed    ErrorCode = "NOTIFICATION_SEND_FAILED"

	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"
	ErrCodeInternal      ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// WithMetadata returns the error with key set in its metadata.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// CodeOf extracts the ErrorCode from any error in the chain, or INTERNAL_ERROR.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ErrCodeInternal
}

func newError(code ErrorCode, message, details string, retryable bool, cause error) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// ==========================
// 2. Error Constructors
// ==========================

func NewInputInvalidError(details string) *StandardError {
	return newError(ErrCodeInputInvalid, "Invalid request input", details, false, nil)
}

// NewOracleUnavailableError covers timeouts, transport errors and non-2xx replies.
func NewOracleUnavailableError(provider string, err error) *StandardError {
	return newError(ErrCodeOracleUnavailable,
		fmt.Sprintf("Oracle '%s' unavailable", provider), errString(err), true, err)
}

func NewOracleMalformedError(provider, details string) *StandardError {
	return newError(ErrCodeOracleMalformed,
		fmt.Sprintf("Oracle '%s' returned a malformed answer", provider), details, false, nil)
}

func NewDataUnavailableError(operation string, err error) *StandardError {
	return newError(ErrCodeDataUnavailable,
		fmt.Sprintf("Data operation '%s' failed", operation), errString(err), true, err)
}

func NewSlotMissingError(field string) *StandardError {
	return newError(ErrCodeSlotMissing, "Required slot missing",
		fmt.Sprintf("field: %s", field), false, nil)
}

func NewSupplierNotFoundError(name string) *StandardError {
	return newError(ErrCodeSupplierNotFound, "Supplier not found or has no contact channel",
		fmt.Sprintf("supplier: %s", name), false, nil)
}

func NewNotificationNotConfiguredError(channel string) *StandardError {
	return newError(ErrCodeNotificationNotConfigured,
		fmt.Sprintf("No %s transport configured", channel), "", false, nil)
}

func NewNotificationSendFailedError(channel string, err error) *StandardError {
	return newError(ErrCodeNotificationSendFailed,
		fmt.Sprintf("Sending %s notification failed", channel), errString(err), true, err)
}

func NewConfigInvalidError(details string) *StandardError {
	return newError(ErrCodeConfigInvalid, "Invalid configuration", details, false, nil)
}

func NewInternalError(err error) *StandardError {
	return newError(ErrCodeInternal, "Unexpected error", errString(err), false, err)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// ==========================
// 3. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

// GetRetryCount returns how many job retries a code deserves in the workflow engine.
// The request pipeline itself never retries.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeDataUnavailable, ErrCodeNotificationSendFailed:
		return 2
	case ErrCodeOracleUnavailable:
		return 1
	default:
		return 0
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}
	return &BPMNError{
		Code:      string(stdErr.Code),
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

// GetErrorCategory groups codes for dashboards.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.HasPrefix(codeStr, "ORACLE"):
		return "ORACLE"
	case strings.HasPrefix(codeStr, "NOTIFICATION"):
		return "NOTIFICATION"
	case strings.HasPrefix(codeStr, "DATA"):
		return "DATA"
	case code == ErrCodeSlotMissing || code == ErrCodeSupplierNotFound:
		return "SLOT_FILLING"
	case strings.Contains(codeStr, "INVALID"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
