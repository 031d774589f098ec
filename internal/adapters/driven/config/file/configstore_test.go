package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	_, err := NewConfigStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewConfigStore_DefaultDirFromEnv(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(EnvHome, tmpDir)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestDefaultDir_Home(t *testing.T) {
	t.Setenv(EnvHome, "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	dir, err := DefaultDir()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".recipes"), dir)
}

func TestConfigStore_SetPersistsAcrossInstances(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("api.base_url", "http://backend:9000/api"))
	require.NoError(t, store.Set("api.timeout_seconds", 30))
	require.NoError(t, store.Set("api.rate_limit", 2.5))
	require.NoError(t, store.Set("server.rate_limit", 40.0))

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "http://backend:9000/api", reopened.GetString("api.base_url"))
	assert.Equal(t, 30, reopened.GetInt("api.timeout_seconds"))
	assert.Equal(t, 2.5, reopened.GetFloat("api.rate_limit"))
	assert.Equal(t, 40.0, reopened.GetFloat("server.rate_limit"))
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("server.addr", ":9000"))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[server]")
	assert.Contains(t, string(data), "addr = ")
	assert.Contains(t, string(data), ":9000")
}

func TestConfigStore_LoadHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[api]
base_url = "http://localhost:1234/api"
timeout_seconds = 5
rate_limit = 3

[server]
storage = "sqlite"
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:1234/api", store.GetString("api.base_url"))
	assert.Equal(t, 5, store.GetInt("api.timeout_seconds"))
	assert.Equal(t, 3.0, store.GetFloat("api.rate_limit"))
	assert.Equal(t, "sqlite", store.GetString("server.storage"))
	assert.False(t, store.GetBool("server.storage"))
}

func TestConfigStore_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("[api\nbroken"), 0600))

	_, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Save())

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_MissingKeys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("missing"))
	assert.Zero(t, store.GetInt("missing"))
	assert.Zero(t, store.GetFloat("missing"))
	assert.False(t, store.GetBool("missing"))
}

func TestFlattenAndNestMap(t *testing.T) {
	flat := map[string]any{
		"api.base_url": "http://x",
		"server.addr":  ":1",
		"server.path":  "/api",
		"top":          true,
	}

	nested := nestMap(flat)

	assert.Equal(t, map[string]any{
		"api":    map[string]any{"base_url": "http://x"},
		"server": map[string]any{"addr": ":1", "path": "/api"},
		"top":    true,
	}, nested)
	assert.Equal(t, flat, flattenMap(nested, ""))
}
