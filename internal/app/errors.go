package app

import (
	"errors"
	"fmt"
)

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// DiscoveryFailed indicates the project scan or config load failed.
	DiscoveryFailed AppErrorType = iota
	// AnswersFailed indicates answers could not be collected or decoded.
	AnswersFailed
	// ResolveFailed indicates the repository URL or deployment type could not be resolved.
	ResolveFailed
	// PlanFailed indicates the planner rejected the configuration.
	PlanFailed
	// GenerateFailed indicates materialization failed.
	GenerateFailed
	// ValidationFailed indicates invalid options.
	ValidationFailed
	// ConfigWriteFailed indicates the configuration file could not be written.
	ConfigWriteFailed
)

// String returns the error type name.
func (t AppErrorType) String() string {
	switch t {
	case DiscoveryFailed:
		return "DiscoveryFailed"
	case AnswersFailed:
		return "AnswersFailed"
	case ResolveFailed:
		return "ResolveFailed"
	case PlanFailed:
		return "PlanFailed"
	case GenerateFailed:
		return "GenerateFailed"
	case ValidationFailed:
		return "ValidationFailed"
	case ConfigWriteFailed:
		return "ConfigWriteFailed"
	default:
		return "Unknown"
	}
}

// AppError represents an application-layer error.
type AppError struct {
	Type    AppErrorType
	Message string
	Cause   error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// ErrorType returns the AppErrorType of err and whether err is an AppError.
func ErrorType(err error) (AppErrorType, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type, true
	}
	return 0, false
}
