package generator

import "fmt"

// GeneratorErrorType categorizes generator errors.
type GeneratorErrorType int

const (
	// GeneratorWriteFailed indicates a file write operation failed.
	GeneratorWriteFailed GeneratorErrorType = iota
	// GeneratorProcessFailed indicates template rendering failed.
	GeneratorProcessFailed
	// GeneratorPathError indicates an absolute or traversing destination.
	GeneratorPathError
	// GeneratorSourceFailed indicates the template could not be read from its source.
	GeneratorSourceFailed
	// GeneratorInvalidOptions indicates missing or inconsistent options.
	GeneratorInvalidOptions
)

// GeneratorError represents generator-specific errors.
type GeneratorError struct {
	Type    GeneratorErrorType
	Message string
	// File is the plan destination related to the error (if applicable).
	File  string
	Cause error
}

// Error implements the error interface.
func (e *GeneratorError) Error() string {
	if e.File != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (file: %s): %v", e.Message, e.File, e.Cause)
		}
		return fmt.Sprintf("%s (file: %s)", e.Message, e.File)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

func newGeneratorError(typ GeneratorErrorType, message, file string, cause error) *GeneratorError {
	return &GeneratorError{
		Type:    typ,
		Message: message,
		File:    file,
		Cause:   cause,
	}
}
