package provider

import (
	"os"
)

// DirSource serves templates from a directory on disk.
type DirSource struct {
	// Root is the template directory; IDs are resolved beneath it.
	Root string
}

// NewDirSource creates a new DirSource rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Root: dir}
}

// Name returns the source name.
func (s *DirSource) Name() string {
	return "dir"
}

// Read returns the template content from disk.
func (s *DirSource) Read(templateID string) ([]byte, error) {
	return readFS(os.DirFS(s.Root), s.Name(), templateID)
}
