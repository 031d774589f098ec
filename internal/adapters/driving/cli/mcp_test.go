package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPCmd_Structure(t *testing.T) {
	assert.Equal(t, "mcp", mcpCmd.Use)
	assert.Equal(t, "serve", mcpServeCmd.Use)
	assert.Contains(t, mcpServeCmd.Long, "list_recipes")

	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_HelpOutput(t *testing.T) {
	out, err := execute(t, "mcp", "serve", "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "Model Context Protocol")
	assert.Contains(t, out, "--port")
}

func TestMCPServeCmd_BookNotConfigured(t *testing.T) {
	old := newBook
	newBook = nil
	defer func() { newBook = old }()

	_, err := execute(t, "mcp", "serve")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
