package github

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-github/v66/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorResponse(statusCode int, message string) *github.ErrorResponse {
	return &github.ErrorResponse{
		Response: &http.Response{StatusCode: statusCode},
		Message:  message,
	}
}

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name: "error with resource",
			err: &APIError{
				Type:     ErrorTypeAuth,
				Message:  "invalid token",
				Resource: "repository test/repo",
			},
			expected: "authentication error for repository test/repo: invalid token",
		},
		{
			name: "error without resource",
			err: &APIError{
				Type:    ErrorTypeValidation,
				Message: "validation failed",
			},
			expected: "validation error: validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestWrapAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name            string
		statusCode      int
		message         string
		expectedType    ErrorType
		messageContains string
	}{
		{
			name:            "401 maps to auth",
			statusCode:      http.StatusUnauthorized,
			message:         "Bad credentials",
			expectedType:    ErrorTypeAuth,
			messageContains: "authentication failed",
		},
		{
			name:            "403 rate limit",
			statusCode:      http.StatusForbidden,
			message:         "API rate limit exceeded for user",
			expectedType:    ErrorTypeRateLimit,
			messageContains: "rate limit",
		},
		{
			name:            "403 permission",
			statusCode:      http.StatusForbidden,
			message:         "Must have admin rights",
			expectedType:    ErrorTypePermission,
			messageContains: "insufficient permissions",
		},
		{
			name:            "404 not found",
			statusCode:      http.StatusNotFound,
			message:         "Not Found",
			expectedType:    ErrorTypeNotFound,
			messageContains: "repository not found",
		},
		{
			name:            "409 conflict",
			statusCode:      http.StatusConflict,
			message:         "name already exists on this account",
			expectedType:    ErrorTypeConflict,
			messageContains: "already exists",
		},
		{
			name:            "422 validation",
			statusCode:      http.StatusUnprocessableEntity,
			message:         "Validation Failed",
			expectedType:    ErrorTypeValidation,
			messageContains: "validation failed",
		},
		{
			name:            "502 network",
			statusCode:      http.StatusBadGateway,
			message:         "Bad Gateway",
			expectedType:    ErrorTypeNetwork,
			messageContains: "temporarily unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapAPIError(errorResponse(tt.statusCode, tt.message), "repository owner/name")

			assert.Equal(t, tt.expectedType, err.Type)
			assert.Contains(t, strings.ToLower(err.Message), tt.messageContains)
		})
	}
}

func TestWrapAPIError404ResourceHints(t *testing.T) {
	tests := []struct {
		resource        string
		messageContains string
	}{
		{resource: "repository owner/name", messageContains: "repository not found"},
		{resource: "authenticated user", messageContains: "user not found"},
		{resource: "license wtfpl", messageContains: "license"},
		{resource: "gitignore template Fortran", messageContains: "gitignore"},
		{resource: "something else", messageContains: "resource not found"},
	}

	for _, tt := range tests {
		t.Run(tt.resource, func(t *testing.T) {
			err := WrapAPIError(errorResponse(http.StatusNotFound, "Not Found"), tt.resource)
			assert.Contains(t, strings.ToLower(err.Message), tt.messageContains)
		})
	}
}

func TestWrapAPIError422FieldDetails(t *testing.T) {
	ghErr := errorResponse(http.StatusUnprocessableEntity, "Validation Failed")
	ghErr.Errors = []github.Error{
		{Field: "name", Message: "name already exists on this account"},
	}

	err := WrapAPIError(ghErr, "repository myrepo")

	assert.Equal(t, ErrorTypeValidation, err.Type)
	assert.Equal(t, "name", err.Field)
	assert.Contains(t, err.Message, "name already exists")
}

func TestWrapAPIErrorNil(t *testing.T) {
	assert.Nil(t, WrapAPIError(nil, "anything"))
}

func TestWrapAPIErrorPassthrough(t *testing.T) {
	original := &APIError{Type: ErrorTypeAuth, Message: "bad token"}

	wrapped := WrapAPIError(original, "repository x")
	require.Same(t, original, wrapped)
	assert.Equal(t, "repository x", wrapped.Resource)
}

func TestWrapAPIErrorRateLimit(t *testing.T) {
	rateErr := &github.RateLimitError{
		Rate:    github.Rate{Remaining: 0},
		Message: "API rate limit exceeded",
	}

	err := WrapAPIError(rateErr, "repository list")
	assert.Equal(t, ErrorTypeRateLimit, err.Type)
}

func TestWrapAPIErrorNetwork(t *testing.T) {
	err := WrapAPIError(fmt.Errorf("dial tcp 140.82.121.3:443: i/o timeout"), "repository list")
	assert.Equal(t, ErrorTypeNetwork, err.Type)
}

func TestWrapAPIErrorUnknown(t *testing.T) {
	err := WrapAPIError(errors.New("something odd"), "repository x")
	assert.Equal(t, ErrorTypeUnknown, err.Type)
}

func TestAPIErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &APIError{Type: ErrorTypeUnknown, Message: "wrapped", Cause: cause}

	assert.True(t, errors.Is(err, cause))
}

func TestValidationErrorFormat(t *testing.T) {
	withValue := &ValidationError{Field: "name", Value: "bad name", Message: "invalid"}
	assert.Contains(t, withValue.Error(), "bad name")

	withoutValue := &ValidationError{Field: "name", Message: "required"}
	assert.NotContains(t, withoutValue.Error(), "value:")
}
