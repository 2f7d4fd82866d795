// internal/common/errors/errors_test.go
package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	cause := context.DeadlineExceeded
	err := fmt.Errorf("classify: %w", NewOracleUnavailableError("ollama", cause))

	assert.Equal(t, ErrCodeOracleUnavailable, CodeOf(err))
	assert.True(t, stderrors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, ErrCodeInternal, CodeOf(stderrors.New("plain")))
}

func TestConvertToBPMNError(t *testing.T) {
	tests := []struct {
		name        string
		err         *StandardError
		wantRetries int
	}{
		{"data unavailable retries", NewDataUnavailableError("low_stock", assert.AnError), 2},
		{"send failure retries", NewNotificationSendFailedError("email", assert.AnError), 2},
		{"oracle retries once", NewOracleUnavailableError("genai", assert.AnError), 1},
		{"invalid input never retries", NewInputInvalidError("bad json"), 0},
		{"not configured never retries", NewNotificationNotConfiguredError("sms"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bpmn := ConvertToBPMNError(tt.err)
			assert.Equal(t, string(tt.err.Code), bpmn.Code)
			assert.Equal(t, tt.wantRetries, bpmn.Retries)

			vars := bpmn.ToErrorVariables()
			assert.Equal(t, string(tt.err.Code), vars["originalErrorCode"])
			assert.Equal(t, tt.err.Message, vars["errorMessage"])
		})
	}
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "ORACLE", GetErrorCategory(ErrCodeOracleMalformed))
	assert.Equal(t, "NOTIFICATION", GetErrorCategory(ErrCodeNotificationSendFailed))
	assert.Equal(t, "DATA", GetErrorCategory(ErrCodeDataUnavailable))
	assert.Equal(t, "SLOT_FILLING", GetErrorCategory(ErrCodeSupplierNotFound))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeConfigInvalid))
	assert.Equal(t, "OTHER", GetErrorCategory(ErrCodeInternal))
}

func TestStandardError_WithMetadata(t *testing.T) {
	err := NewSlotMissingError("supplier").WithMetadata("intent", "SUPPLIER_DEMAND")
	assert.Equal(t, "SUPPLIER_DEMAND", err.Metadata["intent"])
	assert.Contains(t, err.Error(), "SLOT_MISSING")
}
