package domain

import "time"

const unknownDescription = "Unknown"

// StorageKind selects the reference server's recipe store.
type StorageKind string

// Available storage kinds.
const (
	// StorageMemory keeps recipes in process memory. Data is lost on exit.
	StorageMemory StorageKind = "memory"

	// StorageSQLite persists recipes to a SQLite database.
	StorageSQLite StorageKind = "sqlite"
)

// IsValid returns true if the storage kind is recognised.
func (k StorageKind) IsValid() bool {
	switch k {
	case StorageMemory, StorageSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k StorageKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the storage kind.
func (k StorageKind) Description() string {
	switch k {
	case StorageMemory:
		return "Memory (not persisted)"
	case StorageSQLite:
		return "SQLite (persisted to data directory)"
	default:
		return unknownDescription
	}
}

// APISettings configures the client's connection to the recipe backend.
type APISettings struct {
	// BaseURL is the collection URL. Update and delete append /{id}.
	BaseURL string

	// Timeout bounds a single HTTP request.
	Timeout time.Duration

	// RateLimit throttles outgoing requests per second. Zero disables throttling.
	RateLimit float64
}

// ServerSettings configures the reference recipe server.
type ServerSettings struct {
	// Addr is the listen address, e.g. ":8787".
	Addr string

	// Path is the collection path, e.g. "/api".
	Path string

	// Storage selects the recipe store.
	Storage StorageKind

	// DataDir holds the SQLite database when Storage is StorageSQLite.
	// Empty means the default location under the config directory.
	DataDir string

	// RateLimit is the sustained requests per second accepted by the server.
	RateLimit float64

	// RateBurst is the token bucket size.
	RateBurst int
}

// Settings aggregates all configurable options.
type Settings struct {
	API    APISettings
	Server ServerSettings
}

// Default setting values.
const (
	DefaultAPIBaseURL      = "http://localhost:8787/api"
	DefaultAPITimeout      = 10 * time.Second
	DefaultServerAddr      = ":8787"
	DefaultServerPath      = "/api"
	DefaultServerRateLimit = 50
	DefaultServerRateBurst = 100
)

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		API: APISettings{
			BaseURL: DefaultAPIBaseURL,
			Timeout: DefaultAPITimeout,
		},
		Server: ServerSettings{
			Addr:      DefaultServerAddr,
			Path:      DefaultServerPath,
			Storage:   StorageMemory,
			RateLimit: DefaultServerRateLimit,
			RateBurst: DefaultServerRateBurst,
		},
	}
}

// AllStorageKinds returns all available storage kinds.
func AllStorageKinds() []StorageKind {
	return []StorageKind{StorageMemory, StorageSQLite}
}
