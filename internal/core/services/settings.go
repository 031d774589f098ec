package services

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/recipe-book/internal/core/domain"
	"github.com/custodia-labs/recipe-book/internal/core/ports/driven"
	"github.com/custodia-labs/recipe-book/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyAPIBaseURL      = "api.base_url"
	KeyAPITimeout      = "api.timeout_seconds"
	KeyAPIRateLimit    = "api.rate_limit"
	KeyServerAddr      = "server.addr"
	KeyServerPath      = "server.path"
	KeyServerStorage   = "server.storage"
	KeyServerDataDir   = "server.data_dir"
	KeyServerRateLimit = "server.rate_limit"
	KeyServerRateBurst = "server.rate_burst"
)

var settingKeys = []string{
	KeyAPIBaseURL,
	KeyAPITimeout,
	KeyAPIRateLimit,
	KeyServerAddr,
	KeyServerPath,
	KeyServerStorage,
	KeyServerDataDir,
	KeyServerRateLimit,
	KeyServerRateBurst,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Missing or invalid stored values fall
// back to defaults.
func (s *SettingsService) Get() (domain.Settings, error) {
	if s.configStore == nil {
		return domain.Settings{}, domain.ErrNotConfigured
	}
	defaults := domain.DefaultSettings()

	return domain.Settings{
		API: domain.APISettings{
			BaseURL:   s.getString(KeyAPIBaseURL, defaults.API.BaseURL),
			Timeout:   time.Duration(s.getInt(KeyAPITimeout, int(defaults.API.Timeout/time.Second))) * time.Second,
			RateLimit: s.getFloat(KeyAPIRateLimit, defaults.API.RateLimit),
		},
		Server: domain.ServerSettings{
			Addr:      s.getString(KeyServerAddr, defaults.Server.Addr),
			Path:      s.getString(KeyServerPath, defaults.Server.Path),
			Storage:   s.getStorage(defaults.Server.Storage),
			DataDir:   s.getString(KeyServerDataDir, defaults.Server.DataDir),
			RateLimit: s.getFloat(KeyServerRateLimit, defaults.Server.RateLimit),
			RateBurst: s.getInt(KeyServerRateBurst, defaults.Server.RateBurst),
		},
	}, nil
}

// Set parses and stores a single setting.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return domain.ErrNotConfigured
	}
	parsed, err := parseSetting(key, strings.TrimSpace(value))
	if err != nil {
		return err
	}
	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised setting keys in display order.
func (s *SettingsService) Keys() []string {
	return append([]string(nil), settingKeys...)
}

// Value returns the effective value of a key formatted for display.
func (s *SettingsService) Value(key string) (string, error) {
	settings, err := s.Get()
	if err != nil {
		return "", err
	}
	switch key {
	case KeyAPIBaseURL:
		return settings.API.BaseURL, nil
	case KeyAPITimeout:
		return strconv.Itoa(int(settings.API.Timeout / time.Second)), nil
	case KeyAPIRateLimit:
		return formatFloat(settings.API.RateLimit), nil
	case KeyServerAddr:
		return settings.Server.Addr, nil
	case KeyServerPath:
		return settings.Server.Path, nil
	case KeyServerStorage:
		return settings.Server.Storage.String(), nil
	case KeyServerDataDir:
		return settings.Server.DataDir, nil
	case KeyServerRateLimit:
		return formatFloat(settings.Server.RateLimit), nil
	case KeyServerRateBurst:
		return strconv.Itoa(settings.Server.RateBurst), nil
	default:
		return "", fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Path returns the location of the settings file.
func (s *SettingsService) Path() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

func parseSetting(key, value string) (any, error) {
	invalid := func(reason string) error {
		return fmt.Errorf("%s: %s: %w", key, reason, domain.ErrInvalidInput)
	}

	switch key {
	case KeyAPIBaseURL:
		u, err := url.Parse(value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, invalid("must be an absolute URL")
		}
		return value, nil
	case KeyAPITimeout, KeyServerRateBurst:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return nil, invalid("must be a positive integer")
		}
		return n, nil
	case KeyAPIRateLimit:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return nil, invalid("must be a non-negative number")
		}
		return f, nil
	case KeyServerRateLimit:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return nil, invalid("must be a positive number")
		}
		return f, nil
	case KeyServerAddr:
		if value == "" {
			return nil, invalid("must not be empty")
		}
		return value, nil
	case KeyServerPath:
		if !strings.HasPrefix(value, "/") {
			return nil, invalid("must start with /")
		}
		return value, nil
	case KeyServerStorage:
		kind := domain.StorageKind(value)
		if !kind.IsValid() {
			return nil, invalid("must be memory or sqlite")
		}
		return value, nil
	case KeyServerDataDir:
		return value, nil
	default:
		return nil, fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	val := s.configStore.GetFloat(key)
	if val < 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getStorage(defaultVal domain.StorageKind) domain.StorageKind {
	val := s.configStore.GetString(KeyServerStorage)
	if val == "" {
		return defaultVal
	}
	kind := domain.StorageKind(val)
	if !kind.IsValid() {
		return defaultVal
	}
	return kind
}
