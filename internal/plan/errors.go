package plan

import (
	"errors"
	"fmt"
)

// PlanErrorType categorizes planning errors.
type PlanErrorType int

const (
	// ConfigurationError indicates a configuration the planner cannot plan for.
	ConfigurationError PlanErrorType = iota
)

// PlanError represents a planning failure. No partial plan accompanies it.
type PlanError struct {
	Type    PlanErrorType
	Message string
	// Value is the offending configuration value, if any.
	Value string
}

// Error implements the error interface.
func (e *PlanError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("configuration error: %s: %q", e.Message, e.Value)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func newConfigurationError(message, value string) *PlanError {
	return &PlanError{Type: ConfigurationError, Message: message, Value: value}
}

// IsConfigurationError reports whether err is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var pErr *PlanError
	return errors.As(err, &pErr) && pErr.Type == ConfigurationError
}
