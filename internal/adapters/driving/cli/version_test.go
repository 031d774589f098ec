package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
	assert.Equal(t, "Print the version number", versionCmd.Short)
}

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "recipes version test-version-1.0.0")
}

func TestConfigure_SetsVersion(t *testing.T) {
	originalVersion := version
	defer func() { version = originalVersion }()

	Configure(Config{Version: "1.2.3"})

	assert.Equal(t, "1.2.3", version)
}
