package pipeline

import (
	"errors"
	"fmt"
)

// ResolveErrorType categorizes resolution errors.
type ResolveErrorType int

const (
	// UnresolvableDeploymentType indicates no marker was found and no type was chosen.
	UnresolvableDeploymentType ResolveErrorType = iota
	// MissingIdentity indicates the repository identity was not supplied.
	MissingIdentity
)

// ResolveError represents a configuration resolution failure.
type ResolveError struct {
	Type    ResolveErrorType
	Message string
	// Value is the offending input, if any.
	Value string
}

// Error implements the error interface.
func (e *ResolveError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %q", e.Message, e.Value)
	}
	return e.Message
}

func newResolveError(typ ResolveErrorType, message, value string) *ResolveError {
	return &ResolveError{Type: typ, Message: message, Value: value}
}

// IsUnresolvable reports whether err means the deployment type could not be determined.
func IsUnresolvable(err error) bool {
	var rErr *ResolveError
	return errors.As(err, &rErr) && rErr.Type == UnresolvableDeploymentType
}
