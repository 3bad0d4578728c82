package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/pipegen/internal/config"
)

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipegen", "config.yaml")

	require.NoError(t, InitConfig(path, false))

	cfg, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(config.DefaultConfig(), cfg); diff != "" {
		t.Errorf("written config mismatch (-want +got):\n%s", diff)
	}
}

func TestInitConfig_KeepsExistingUnlessForced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("templates:\n  concurrency: 2\n"), 0o644))

	err := InitConfig(path, false)
	typ, ok := ErrorType(err)
	require.True(t, ok)
	assert.Equal(t, ValidationFailed, typ)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "templates:\n  concurrency: 2\n", string(data))

	require.NoError(t, InitConfig(path, true))
	cfg, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Templates.Concurrency)
}

func TestInitConfig_EmptyPath(t *testing.T) {
	typ, ok := ErrorType(InitConfig("", false))
	require.True(t, ok)
	assert.Equal(t, ValidationFailed, typ)
}
