// Copyright (c) 2026 Tagdex. All rights reserved.
// Author: an.phamduy.dev@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamduyan/tagdex/internal/platform/apperr"
)

/*
TestInternal verifies the fixed client-safe message and that the cause is
preserved for logging but excluded from the message.
*/
func TestInternal(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.5:5432: connection refused")
	err := apperr.Internal(cause)

	assert.Equal(t, "INTERNAL_ERROR", err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.Equal(t, "Internal server error", err.Error())
	assert.NotContains(t, err.Error(), "10.0.0.5")
	assert.ErrorIs(t, err, cause)
}

/*
TestConstructors checks code and status mapping for the 4xx constructors.
*/
func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     *apperr.AppError
		code    string
		status  int
		message string
	}{
		{"not_found", apperr.NotFound("Tag"), "NOT_FOUND", http.StatusNotFound, "Tag not found"},
		{"conflict", apperr.Conflict("Tag already exists"), "CONFLICT", http.StatusConflict, "Tag already exists"},
		{"validation", apperr.ValidationError("Validation failed"), "VALIDATION_ERROR", http.StatusBadRequest, "Validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.message, tt.err.Message)
		})
	}
}

/*
TestAs verifies that AppError extraction traverses wrapped chains.
*/
func TestAs(t *testing.T) {
	inner := apperr.NotFound("Tag")
	wrapped := fmt.Errorf("service: %w", inner)

	got := apperr.As(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, "NOT_FOUND", got.Code)

	assert.True(t, apperr.IsAppError(wrapped))
	assert.False(t, apperr.IsAppError(errors.New("plain")))
	assert.Nil(t, apperr.As(errors.New("plain")))
}
