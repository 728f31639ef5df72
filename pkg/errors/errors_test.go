package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Creation(t *testing.T) {
	cause := errors.New("underlying error")

	err := NewValidationError("test validation error", cause)

	assert.Equal(t, ErrorTypeValidation, err.Type)
	assert.Equal(t, "test validation error", err.Message)
	assert.Equal(t, cause, err.Cause)
	assert.NotNil(t, err.Context)
}

func TestDomainError_WithContext(t *testing.T) {
	err := NewProcessError("test error", nil)

	err = err.WithContext("command", "sleep")
	err = err.WithContext("pgid", 12345)

	assert.Equal(t, "sleep", err.Context["command"])
	assert.Equal(t, 12345, err.Context["pgid"])
}

func TestDomainError_ErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		error    *DomainError
		expected string
	}{
		{
			name:     "error without cause",
			error:    NewValidationError("test message", nil),
			expected: "validation: test message",
		},
		{
			name:     "error with cause",
			error:    NewProcessError("test message", errors.New("cause")),
			expected: "process: test message: cause",
		},
		{
			name:     "not found without cause",
			error:    NewNotFoundError("ls: Command not found", nil),
			expected: "not_found: ls: Command not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.error.Error())
		})
	}
}

func TestDomainError_TypeChecking(t *testing.T) {
	validationErr := NewValidationError("validation error", nil)
	processErr := NewProcessError("process error", nil)
	signalErr := NewSignalError("signal error", nil)

	assert.True(t, IsValidationError(validationErr))
	assert.False(t, IsValidationError(processErr))

	assert.True(t, IsProcessError(processErr))
	assert.False(t, IsProcessError(signalErr))

	assert.True(t, IsSignalError(signalErr))
	assert.False(t, IsSignalError(validationErr))

	// Plain errors match no domain type
	wrappedErr := errors.New("wrapped")
	assert.False(t, IsValidationError(wrappedErr))
	assert.False(t, IsProcessError(wrappedErr))
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewIOError("io failure", cause)

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, cause))
}

func TestDomainError_TypeCheckingThroughWrapping(t *testing.T) {
	inner := NewNotFoundError("missing", nil)
	outer := fmt.Errorf("launch failed: %w", inner)

	assert.True(t, IsNotFoundError(outer))
	assert.False(t, IsProcessError(outer))
}
