package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/recipe-book/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/recipe-book/internal/core/domain"
)

func TestServeCmd_Flags(t *testing.T) {
	for _, name := range []string{"addr", "path", "storage", "data-dir"} {
		assert.NotNil(t, serveCmd.Flags().Lookup(name), name)
	}
	assert.Contains(t, serveCmd.Long, "/metrics")
}

// executeCancelled runs the command with an already cancelled context so
// servers shut down as soon as they start.
func executeCancelled(t *testing.T, args ...string) (string, error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	setContext(rootCmd, ctx)
	defer setContext(rootCmd, context.Background())
	return execute(t, args...)
}

// setContext sets ctx on cmd and every subcommand. Cobra only hands the
// root context to subcommands that have none yet.
func setContext(cmd *cobra.Command, ctx context.Context) {
	cmd.SetContext(ctx)
	for _, c := range cmd.Commands() {
		setContext(c, ctx)
	}
}

func TestServeCmd_MemoryStorage(t *testing.T) {
	setupTestServices(t)

	out, err := executeCancelled(t, "serve", "--addr", "127.0.0.1:0", "--path", "/recipes")

	require.NoError(t, err)
	assert.Contains(t, out, "127.0.0.1:0/recipes")
	assert.Contains(t, out, "memory storage")
}

func TestServeCmd_SQLiteStorage(t *testing.T) {
	setupTestServices(t)
	dir := t.TempDir()

	out, err := executeCancelled(t, "serve", "--addr", "127.0.0.1:0", "--storage", "sqlite", "--data-dir", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "sqlite storage")
	_, statErr := os.Stat(filepath.Join(dir, sqlite.DBFile))
	assert.NoError(t, statErr)
}

func TestServeCmd_InvalidStorage(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "serve", "--storage", "redis")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage")
}

func TestServeCmd_InvalidAddr(t *testing.T) {
	setupTestServices(t)

	_, err := executeCancelled(t, "serve", "--addr", "not-an-address")

	assert.Error(t, err)
}

func TestNewCatalogue(t *testing.T) {
	c, closer, err := NewCatalogue(domain.ServerSettings{Storage: domain.StorageMemory})
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.NoError(t, closer.Close())

	_, _, err = NewCatalogue(domain.ServerSettings{Storage: "redis"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewHTTPRecipeBook_InvalidURL(t *testing.T) {
	_, err := NewHTTPRecipeBook(domain.APISettings{BaseURL: "::not a url"})

	assert.Error(t, err)
}
