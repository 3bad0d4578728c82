package provider

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var templatesFS embed.FS

// EmbeddedSource serves the default template pack compiled into the binary.
type EmbeddedSource struct {
	fsys fs.FS
}

// NewEmbeddedSource creates a new EmbeddedSource.
func NewEmbeddedSource() *EmbeddedSource {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}
	return &EmbeddedSource{fsys: sub}
}

// Name returns the source name.
func (s *EmbeddedSource) Name() string {
	return "embedded"
}

// Read returns the embedded template content.
func (s *EmbeddedSource) Read(templateID string) ([]byte, error) {
	return readFS(s.fsys, s.Name(), templateID)
}
