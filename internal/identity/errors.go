package identity

import (
	"errors"
	"fmt"
)

// IdentityErrorType categorizes identity errors.
type IdentityErrorType int

const (
	// MalformedRepositoryURL indicates the URL path has fewer than two usable segments.
	MalformedRepositoryURL IdentityErrorType = iota
)

// IdentityError reports a remote URL that cannot be turned into owner/name.
type IdentityError struct {
	Type IdentityErrorType
	// URL is the offending input, as given.
	URL     string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *IdentityError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed repository url %q: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed repository url %q: %s", e.URL, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *IdentityError) Unwrap() error {
	return e.Cause
}

func newMalformedError(raw, message string, cause error) *IdentityError {
	return &IdentityError{
		Type:    MalformedRepositoryURL,
		URL:     raw,
		Message: message,
		Cause:   cause,
	}
}

// IsMalformedURL reports whether err is a MalformedRepositoryURL error.
func IsMalformedURL(err error) bool {
	var idErr *IdentityError
	return errors.As(err, &idErr) && idErr.Type == MalformedRepositoryURL
}
