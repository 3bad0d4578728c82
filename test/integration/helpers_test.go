package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/tacogips/pipegen/internal/git"
)

// copyFixtureToTemp copies a fixture project into a fresh temp directory
// named after the fixture and returns its path.
func copyFixtureToTemp(t *testing.T, fixtureName string) string {
	t.Helper()

	fixtureDir, err := filepath.Abs(filepath.Join("../fixtures/projects", fixtureName))
	if err != nil {
		t.Fatalf("failed to get fixture path: %v", err)
	}

	destDir := filepath.Join(t.TempDir(), fixtureName)
	err = filepath.Walk(fixtureDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(fixtureDir, path)
		if err != nil {
			return err
		}
		destPath := filepath.Join(destDir, relPath)

		if info.IsDir() {
			return os.MkdirAll(destPath, 0755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(destPath, data, 0644)
	})
	if err != nil {
		t.Fatalf("failed to copy fixture: %v", err)
	}
	return destDir
}

// remoteRunner answers "git config --get remote.origin.url" with url.
type remoteRunner string

func (r remoteRunner) Run(ctx context.Context, dir, name string, args ...string) (git.Result, error) {
	if r == "" {
		return git.Result{ExitCode: 1}, nil
	}
	return git.Result{Stdout: string(r) + "\n"}, nil
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func boolPtr(b bool) *bool { return &b }
