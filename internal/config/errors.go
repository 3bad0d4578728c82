package config

import "fmt"

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType int

const (
	// ConfigNotFound indicates the configuration file was not found.
	ConfigNotFound ConfigErrorType = iota
	// ConfigInvalid indicates the configuration file could not be read or decoded.
	ConfigInvalid
	// ConfigValidationFailed indicates a decoded value is out of range.
	ConfigValidationFailed
)

// ConfigError represents a configuration-related error.
type ConfigError struct {
	Type    ConfigErrorType
	Message string
	// File is the configuration file path, empty for in-memory values.
	File string
	// Field is the dotted YAML key that failed validation.
	Field string
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	where := "configuration"
	if e.File != "" {
		where = e.File
	}
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", where, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", where, msg)
}

// Unwrap returns the underlying cause error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

func newConfigError(typ ConfigErrorType, file, message string, cause error) *ConfigError {
	return &ConfigError{Type: typ, File: file, Message: message, Cause: cause}
}

func newFieldError(field, message string) *ConfigError {
	return &ConfigError{Type: ConfigValidationFailed, Field: field, Message: message}
}
