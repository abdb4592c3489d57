package xconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadParsesOMDBKey(t *testing.T) {
	path := writeConfig(t, `
[api_keys]
omdb = "secret123"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret123", cfg.APIKeys.OMDB)
}

func TestLoadAllowsMissingOMDBKey(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.APIKeys.OMDB)
}

func TestLoadFailsOnMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.Error(t, err)
}

func TestLoadFailsOnMalformedTOML(t *testing.T) {
	path := writeConfig(t, "this is not valid toml [[[")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadHonorsEnvOverride(t *testing.T) {
	path := writeConfig(t, `
[api_keys]
omdb = "from-file"
`)
	t.Setenv("XSEED_API_KEYS_OMDB", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIKeys.OMDB)
}
