package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "aws-sdk-", cfg.Docs.PackagePrefix)
	assert.Equal(t, "docs/module-graph.json", cfg.Docs.MarkerPath)
	assert.Equal(t, 0, cfg.Batch.Workers)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "stubgen.toml")
	content := "[docs]\npackage_prefix = \"acme-sdk-\"\n\n[batch]\nworkers = 4\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := LoadFromFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, "acme-sdk-", cfg.Docs.PackagePrefix)
	assert.Equal(t, 4, cfg.Batch.Workers)
	// Unset keys fall back to defaults
	assert.Equal(t, "docs/module-graph.json", cfg.Docs.MarkerPath)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
