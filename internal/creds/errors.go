package creds

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"
)

// ErrorType represents different types of credential storage errors
type ErrorType string

const (
	ErrorTypeMissingCredentials ErrorType = "missing_credentials"
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypePermissionDenied   ErrorType = "permission_denied"
	ErrorTypeCredentialsAccess  ErrorType = "credentials_access"
)

// Error represents a structured credential error with troubleshooting guidance
type Error struct {
	Type                 ErrorType `json:"type"`
	Message              string    `json:"message"`
	OriginalError        error     `json:"-"`
	TroubleshootingSteps []string  `json:"troubleshooting_steps"`
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the original error for error unwrapping
func (e *Error) Unwrap() error {
	return e.OriginalError
}

// GetTroubleshootingMessage returns a formatted troubleshooting message
func (e *Error) GetTroubleshootingMessage() string {
	if len(e.TroubleshootingSteps) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\nTroubleshooting steps:\n")
	for i, step := range e.TroubleshootingSteps {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
	}
	return sb.String()
}

// ClassifyError analyzes a filesystem error and returns a structured Error
func ClassifyError(err error) *Error {
	if err == nil {
		return nil
	}

	var credErr *Error
	if errors.As(err, &credErr) {
		return credErr
	}

	if isPermissionError(err) {
		return &Error{
			Type:          ErrorTypePermissionDenied,
			Message:       "permission denied accessing the credential file",
			OriginalError: err,
			TroubleshootingSteps: []string{
				"Check file permissions on the ~/.repo directory",
				"Ensure you have write access to your home directory",
				"Check if the directory is owned by another user",
			},
		}
	}

	return &Error{
		Type:          ErrorTypeCredentialsAccess,
		Message:       fmt.Sprintf("unable to access credential storage: %v", err),
		OriginalError: err,
		TroubleshootingSteps: []string{
			"Check that the ~/.repo directory exists and is accessible",
			"Verify file system permissions",
			"Ensure sufficient disk space is available",
		},
	}
}

// isPermissionError checks if the error indicates denied filesystem access
func isPermissionError(err error) bool {
	if errors.Is(err, os.ErrPermission) {
		return true
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && (errno == syscall.EACCES || errno == syscall.EPERM) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "permission denied")
}
