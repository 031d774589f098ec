package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/recipe-book/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/recipe-book/internal/core/domain"
	"github.com/custodia-labs/recipe-book/internal/core/services"
)

func withSettings(t *testing.T) *services.SettingsService {
	t.Helper()
	s := services.NewSettingsService(memory.NewConfigStore())
	old := settingsService
	settingsService = s
	t.Cleanup(func() { settingsService = old })
	return s
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxVal     int
		defaultVal int
		expected   int
	}{
		{"empty input returns default", "", 5, 1, 1},
		{"valid choice within range", "3", 5, 1, 3},
		{"choice below minimum returns default", "0", 5, 1, 1},
		{"choice above maximum returns default", "6", 5, 2, 2},
		{"non-numeric returns default", "abc", 5, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseChoice(tt.input, tt.maxVal, tt.defaultVal))
		})
	}
}

func TestDescribeRate(t *testing.T) {
	assert.Equal(t, "unlimited", describeRate(0))
	assert.Equal(t, "2.5 req/s", describeRate(2.5))
	assert.Equal(t, "50 req/s", describeRate(50))
}

func TestSettingsShow(t *testing.T) {
	withSettings(t)

	out, err := execute(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[API]")
	assert.Contains(t, out, domain.DefaultAPIBaseURL)
	assert.Contains(t, out, "Rate limit: unlimited")
	assert.Contains(t, out, "[Server]")
	assert.Contains(t, out, "burst 100")
}

func TestSettingsShow_NotConfigured(t *testing.T) {
	old := settingsService
	settingsService = nil
	defer func() { settingsService = old }()

	_, err := execute(t, "settings")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestSettingsSet(t *testing.T) {
	s := withSettings(t)

	out, err := execute(t, "settings", "set", "api.base_url", "http://example.com/recipes")

	require.NoError(t, err)
	assert.Contains(t, out, "Set api.base_url = http://example.com/recipes")
	got, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/recipes", got.API.BaseURL)
}

func TestSettingsSet_InvalidKey(t *testing.T) {
	withSettings(t)

	_, err := execute(t, "settings", "set", "nope", "1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "valid keys")
}

func TestSettingsSet_InvalidValue(t *testing.T) {
	withSettings(t)

	_, err := execute(t, "settings", "set", "server.storage", "redis")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsWizard(t *testing.T) {
	s := withSettings(t)

	// One answer per key in display order; storage is a numbered choice.
	answers := []string{
		"http://kitchen:9000/api", // api.base_url
		"",                        // api.timeout_seconds
		"",                        // api.rate_limit
		"",                        // server.addr
		"",                        // server.path
		"2",                       // server.storage
		"",                        // server.data_dir
		"",                        // server.rate_limit
		"",                        // server.rate_burst
	}
	rootCmd.SetIn(strings.NewReader(strings.Join(answers, "\n") + "\n"))

	out, err := execute(t, "settings", "wizard")

	require.NoError(t, err)
	assert.Contains(t, out, "Settings saved.")
	got, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, "http://kitchen:9000/api", got.API.BaseURL)
	assert.Equal(t, domain.StorageSQLite, got.Server.Storage)
	assert.Equal(t, domain.DefaultAPITimeout, got.API.Timeout)
}
