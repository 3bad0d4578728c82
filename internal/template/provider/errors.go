package provider

import "fmt"

// ProviderErrorType represents the type of provider error.
type ProviderErrorType int

const (
	// TemplateNotFound indicates the source has no template with the given ID.
	TemplateNotFound ProviderErrorType = iota
	// InvalidTemplatePath indicates an absolute or traversing template ID.
	InvalidTemplatePath
	// ReadFailed indicates the template exists but could not be read.
	ReadFailed
)

// String returns the string representation of the error type.
func (t ProviderErrorType) String() string {
	switch t {
	case TemplateNotFound:
		return "TemplateNotFound"
	case InvalidTemplatePath:
		return "InvalidTemplatePath"
	case ReadFailed:
		return "ReadFailed"
	default:
		return "Unknown"
	}
}

// ProviderError represents a template source error.
type ProviderError struct {
	Type ProviderErrorType
	// Source is the source name (e.g., "embedded", "dir").
	Source     string
	TemplateID string
	Cause      error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s source error [%s] for template '%s': %v",
			e.Source, e.Type.String(), e.TemplateID, e.Cause)
	}
	return fmt.Sprintf("%s source error [%s] for template '%s'",
		e.Source, e.Type.String(), e.TemplateID)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewProviderError creates a new ProviderError.
func NewProviderError(typ ProviderErrorType, source, templateID string, cause error) *ProviderError {
	return &ProviderError{
		Type:       typ,
		Source:     source,
		TemplateID: templateID,
		Cause:      cause,
	}
}
