// Package provider serves pipeline template content by template ID.
package provider

import (
	"errors"
	"io/fs"
	"path"
	"strings"

	"github.com/tacogips/pipegen/internal/debug"
)

// Source abstracts where template content comes from.
type Source interface {
	// Read returns the raw content of a template.
	// templateID is slash-separated and relative to the source root.
	Read(templateID string) ([]byte, error)

	// Name returns the source name (e.g., "embedded", "dir").
	Name() string
}

// NewSource returns a DirSource for dir, or the embedded default pack when dir is empty.
func NewSource(dir string) Source {
	if dir == "" {
		debug.Debug("[provider] Using embedded template pack")
		return NewEmbeddedSource()
	}
	debug.Debug("[provider] Using template directory: %s", dir)
	return NewDirSource(dir)
}

// validateTemplateID rejects IDs that could escape the source root.
func validateTemplateID(source, templateID string) error {
	if templateID == "" || strings.HasPrefix(templateID, "/") || strings.Contains(templateID, "\\") {
		return NewProviderError(InvalidTemplatePath, source, templateID, nil)
	}
	for _, seg := range strings.Split(templateID, "/") {
		if seg == ".." {
			return NewProviderError(InvalidTemplatePath, source, templateID, errors.New("path traversal"))
		}
	}
	if !fs.ValidPath(path.Clean(templateID)) {
		return NewProviderError(InvalidTemplatePath, source, templateID, nil)
	}
	return nil
}

// readFS reads templateID from fsys, mapping errors to ProviderError.
func readFS(fsys fs.FS, source, templateID string) ([]byte, error) {
	if err := validateTemplateID(source, templateID); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(fsys, path.Clean(templateID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewProviderError(TemplateNotFound, source, templateID, nil)
		}
		return nil, NewProviderError(ReadFailed, source, templateID, err)
	}
	debug.Debug("[provider] %s: read %s (%d bytes)", source, templateID, len(data))
	return data, nil
}

// IsNotFound reports whether err is a TemplateNotFound ProviderError.
func IsNotFound(err error) bool {
	var perr *ProviderError
	return errors.As(err, &perr) && perr.Type == TemplateNotFound
}
