package github

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v66/github"
)

// ErrorType represents different categories of GitHub API errors
type ErrorType string

const (
	ErrorTypeAuth       ErrorType = "authentication"
	ErrorTypePermission ErrorType = "permission"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeRateLimit  ErrorType = "rate_limit"
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeConflict   ErrorType = "conflict"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// APIError represents a structured error from GitHub operations. Every
// command treats these as fatal: the error is reported to the user and the
// command exits non-zero, there is no automatic retry.
type APIError struct {
	Type     ErrorType `json:"type"`
	Message  string    `json:"message"`
	Cause    error     `json:"-"`
	Resource string    `json:"resource,omitempty"`
	Field    string    `json:"field,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s error for %s: %s", e.Type, e.Resource, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *APIError) Unwrap() error {
	return e.Cause
}

// WrapAPIError wraps a GitHub API error into our structured error type
func WrapAPIError(err error, resource string) *APIError {
	if err == nil {
		return nil
	}

	if apiErr, ok := err.(*APIError); ok {
		if apiErr.Resource == "" {
			apiErr.Resource = resource
		}
		return apiErr
	}

	if ghErr, ok := err.(*github.ErrorResponse); ok {
		return parseErrorResponse(ghErr, resource)
	}

	if rateErr, ok := err.(*github.RateLimitError); ok {
		return &APIError{
			Type:     ErrorTypeRateLimit,
			Message:  fmt.Sprintf("GitHub API rate limit exceeded, resets at %v", rateErr.Rate.Reset.Time),
			Cause:    err,
			Resource: resource,
		}
	}

	if isNetworkError(err) {
		return &APIError{
			Type:     ErrorTypeNetwork,
			Message:  "network error talking to GitHub, check your connection and try again",
			Cause:    err,
			Resource: resource,
		}
	}

	return &APIError{
		Type:     ErrorTypeUnknown,
		Message:  err.Error(),
		Cause:    err,
		Resource: resource,
	}
}

// parseErrorResponse maps GitHub HTTP status codes onto the documented
// user-facing messages.
func parseErrorResponse(ghErr *github.ErrorResponse, resource string) *APIError {
	apiErr := &APIError{
		Resource: resource,
		Cause:    ghErr,
	}

	switch ghErr.Response.StatusCode {
	case http.StatusUnauthorized:
		apiErr.Type = ErrorTypeAuth
		apiErr.Message = "authentication failed, check your GitHub token (run 'repo setup' to reconfigure)"

	case http.StatusForbidden:
		if strings.Contains(strings.ToLower(ghErr.Message), "rate limit") {
			apiErr.Type = ErrorTypeRateLimit
			apiErr.Message = "GitHub API rate limit exceeded, wait before retrying"
		} else {
			apiErr.Type = ErrorTypePermission
			apiErr.Message = "insufficient permissions, your token may be missing the 'repo' or 'delete_repo' scope"
		}

	case http.StatusNotFound:
		apiErr.Type = ErrorTypeNotFound
		switch {
		case strings.Contains(resource, "repository"):
			apiErr.Message = "repository not found, check the name and your access permissions"
		case strings.Contains(resource, "user"):
			apiErr.Message = "user not found, verify the username is correct"
		case strings.Contains(resource, "license"):
			apiErr.Message = "unknown license key, see https://api.github.com/licenses for valid keys"
		case strings.Contains(resource, "gitignore"):
			apiErr.Message = "unknown gitignore template, see https://api.github.com/gitignore/templates"
		default:
			apiErr.Message = "resource not found"
		}

	case http.StatusConflict:
		apiErr.Type = ErrorTypeConflict
		apiErr.Message = "resource conflict"
		if strings.Contains(ghErr.Message, "already exists") {
			apiErr.Message = "a resource with that name already exists"
		}

	case http.StatusUnprocessableEntity:
		apiErr.Type = ErrorTypeValidation
		apiErr.Message = "validation failed"
		if len(ghErr.Errors) > 0 {
			var details []string
			for _, e := range ghErr.Errors {
				if e.Field != "" {
					details = append(details, fmt.Sprintf("%s: %s", e.Field, e.Message))
					if apiErr.Field == "" {
						apiErr.Field = e.Field
					}
				} else if e.Message != "" {
					details = append(details, e.Message)
				}
			}
			if len(details) > 0 {
				apiErr.Message = fmt.Sprintf("validation failed: %s", strings.Join(details, "; "))
			}
		}

	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		apiErr.Type = ErrorTypeNetwork
		apiErr.Message = "GitHub API is temporarily unavailable, try again later"

	default:
		apiErr.Type = ErrorTypeUnknown
		apiErr.Message = ghErr.Message
	}

	return apiErr
}

// isNetworkError checks if an error is a network-related error
func isNetworkError(err error) bool {
	errStr := strings.ToLower(err.Error())
	networkKeywords := []string{
		"connection refused",
		"connection reset",
		"connection timeout",
		"network is unreachable",
		"no such host",
		"timeout",
		"dial tcp",
		"i/o timeout",
	}

	for _, keyword := range networkKeywords {
		if strings.Contains(errStr, keyword) {
			return true
		}
	}
	return false
}

// ValidationError represents a local input validation error
type ValidationError struct {
	Field   string `json:"field"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("validation error for field '%s' (value: %s): %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}
