package config

import (
	"fmt"
	"time"
)

// Default client settings applied when the merged configuration leaves a
// knob unset.
const (
	// DefaultMaxCommitEntries bounds one commit batch.
	DefaultMaxCommitEntries = 25

	// DefaultSyncInterval is the fallback background sync period.
	DefaultSyncInterval = 5 * time.Minute

	// DefaultRequestTimeout is the fallback outbound request timeout.
	DefaultRequestTimeout = 15 * time.Second
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used by the client for payload integrity
	// headers.
	HashKey string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the base URL of the sync server.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientCommit holds commit batching settings.
type ClientCommit struct {
	// MaxEntries caps the number of pending entries gathered into a single
	// commit batch.
	MaxEntries int
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the background commit job runs.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Commit contains commit batching settings.
	Commit ClientCommit
	// Workers contains background job settings.
	Workers ClientWorkers
	// LogPath is the client log file path; empty means stdout.
	LogPath string
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills in defaults for unset knobs, and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
		},
		Adapter: ClientAdapter{
			ServerURL:      cfg.Client.ServerURL,
			RequestTimeout: cfg.Client.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Client.DBPath},
		},
		Commit: ClientCommit{
			MaxEntries: cfg.Client.MaxCommitEntries,
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
		LogPath: cfg.Client.LogPath,
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Commit.MaxEntries <= 0 {
		cfg.Commit.MaxEntries = DefaultMaxCommitEntries
	}
	if cfg.Workers.SyncInterval <= 0 {
		cfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
}
