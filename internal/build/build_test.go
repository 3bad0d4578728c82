package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionFallsBackToEmbeddedFile(t *testing.T) {
	old := version
	t.Cleanup(func() { version = old })

	version = "dev"
	assert.Equal(t, "0.1.0", Version())

	version = ""
	assert.Equal(t, "0.1.0", Version())
}

func TestSet(t *testing.T) {
	oldV, oldC, oldD := version, gitCommit, buildDate
	t.Cleanup(func() { version, gitCommit, buildDate = oldV, oldC, oldD })

	Set("1.2.3", "abc123", "2026-01-01")
	info := Current()
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc123", info.Commit)
	assert.Equal(t, "2026-01-01", info.BuildDate)

	// empty values keep what is there
	Set("", "", "")
	assert.Equal(t, "1.2.3", Current().Version)
}
