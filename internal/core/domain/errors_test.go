package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrTransport", ErrTransport},
		{"ErrOperationInFlight", ErrOperationInFlight},
		{"ErrNotConfigured", ErrNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: []string{FieldName, FieldIngredients}}
	assert.Equal(t, "required: name, ingredients", err.Error())

	empty := &ValidationError{}
	assert.Equal(t, "invalid input", empty.Error())
}

func TestValidationError_IsInvalidInput(t *testing.T) {
	var err error = &ValidationError{Fields: []string{FieldName}}
	wrapped := fmt.Errorf("submit: %w", err)

	assert.True(t, errors.Is(wrapped, ErrInvalidInput))
	assert.False(t, errors.Is(wrapped, ErrTransport))

	var verr *ValidationError
	assert.True(t, errors.As(wrapped, &verr))
	assert.Equal(t, []string{FieldName}, verr.Fields)
}

func TestTransportError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *TransportError
		want string
	}{
		{
			name: "status only",
			err:  &TransportError{Op: "list", Method: "GET", URL: "http://x/api", StatusCode: 500},
			want: "list: GET http://x/api: status 500",
		},
		{
			name: "cause only",
			err:  &TransportError{Op: "delete", Method: "DELETE", URL: "http://x/api/1", Err: errors.New("refused")},
			want: "delete: DELETE http://x/api/1: refused",
		},
		{
			name: "status and cause",
			err: &TransportError{
				Op: "create", Method: "POST", URL: "http://x/api", StatusCode: 200, Err: errors.New("bad json"),
			},
			want: "create: POST http://x/api: status 200: bad json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestTransportError_IsAndUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	var err error = &TransportError{Op: "update", Err: cause}

	assert.True(t, errors.Is(err, ErrTransport))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrInvalidInput))
}
