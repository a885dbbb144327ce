package config

import (
	"fmt"
	"time"
)

// Recognized configuration values and validation bounds. The period bounds
// apply to the poll period, the device sampling period, and the logging
// sampling period alike.
const (
	AlgorithmNone     = "none"
	AlgorithmPaillier = "paillier"

	DepthFull       = "full"
	DepthValuesOnly = "values_only"

	MinPeriod = 50 * time.Millisecond
	MaxPeriod = 10 * time.Second

	MinStreamFrequency = 1
	MaxStreamFrequency = 50
)

// EncryptionMode is the single tagged variant the rest of the client
// branches on, selected once from the (algorithm, depth) configuration pair
// instead of being re-derived at every call site.
type EncryptionMode int

const (
	// EncryptionOff disables channel encryption entirely.
	EncryptionOff EncryptionMode = iota
	// EncryptionFull means the whole snapshot arrives as ciphertext chunks.
	EncryptionFull
	// EncryptionValuesOnly means the snapshot structure is plaintext and
	// only individual tag values are ciphertext.
	EncryptionValuesOnly
)

func (m EncryptionMode) String() string {
	switch m {
	case EncryptionFull:
		return "full"
	case EncryptionValuesOnly:
		return "values_only"
	default:
		return "off"
	}
}

// ClientSession holds the target identity settings.
type ClientSession struct {
	// TargetID is the device identifier; empty forces manager mode.
	TargetID string
	// Mode is the requested operating mode string.
	Mode string
}

// ClientEncryption holds the validated encryption settings.
type ClientEncryption struct {
	// Algorithm is one of the recognized algorithm names.
	Algorithm string
	// KeyBits is the local key length; power of two.
	KeyBits int
	// Depth is one of the recognized depth names.
	Depth string
}

// Mode collapses the (algorithm, depth) pair into one [EncryptionMode].
func (e ClientEncryption) Mode() EncryptionMode {
	if e.Algorithm == AlgorithmNone || e.Algorithm == "" {
		return EncryptionOff
	}
	if e.Depth == DepthValuesOnly {
		return EncryptionValuesOnly
	}
	return EncryptionFull
}

// ClientPolling holds the validated refresh schedule.
type ClientPolling struct {
	// Period is the background poll period.
	Period time.Duration
	// SamplingPeriod is the device internal sampling period.
	SamplingPeriod time.Duration
	// StreamFrequency is the device stream rate in hertz.
	StreamFrequency int
}

// ClientLogging holds the validated logging session settings.
type ClientLogging struct {
	// Enabled requests a logging session on control startup.
	Enabled bool
	// SamplingPeriod is the logging sampling period.
	SamplingPeriod time.Duration
	// SessionDir is where descriptor files are written.
	SessionDir string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the master's base HTTP address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the sqlite connection string for the session catalog.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Session contains target identity settings.
	Session ClientSession
	// Encryption contains channel encryption settings.
	Encryption ClientEncryption
	// Polling contains refresh schedule settings.
	Polling ClientPolling
	// Logging contains logging session settings.
	Logging ClientLogging
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, applies defaults for unset values, and
// fails fast if the resulting [ClientConfig] violates any construction
// invariant.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.Validate()
}

// NewClientConfig maps a merged [StructuredConfig] onto the client view and
// applies defaults. It does not validate; call [ClientConfig.Validate].
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		Session: ClientSession{
			TargetID: cfg.Session.TargetID,
			Mode:     cfg.Session.Mode,
		},
		Encryption: ClientEncryption{
			Algorithm: cfg.Encryption.Algorithm,
			KeyBits:   cfg.Encryption.KeyBits,
			Depth:     cfg.Encryption.Depth,
		},
		Polling: ClientPolling{
			Period:          cfg.Polling.Period,
			SamplingPeriod:  cfg.Polling.SamplingPeriod,
			StreamFrequency: cfg.Polling.StreamFrequency,
		},
		Logging: ClientLogging{
			Enabled:        cfg.Logging.Enabled,
			SamplingPeriod: cfg.Logging.SamplingPeriod,
			SessionDir:     cfg.Logging.SessionDir,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
	}

	clientCfg.applyDefaults()
	return clientCfg
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Session.Mode == "" {
		cfg.Session.Mode = "manager"
	}
	if cfg.Encryption.Algorithm == "" {
		cfg.Encryption.Algorithm = AlgorithmNone
	}
	if cfg.Encryption.Depth == "" {
		cfg.Encryption.Depth = DepthFull
	}
	if cfg.Encryption.KeyBits == 0 {
		cfg.Encryption.KeyBits = 1024
	}
	if cfg.Polling.Period == 0 {
		cfg.Polling.Period = time.Second
	}
	if cfg.Polling.SamplingPeriod == 0 {
		cfg.Polling.SamplingPeriod = 100 * time.Millisecond
	}
	if cfg.Logging.SamplingPeriod == 0 {
		cfg.Logging.SamplingPeriod = 200 * time.Millisecond
	}
	if cfg.Logging.SessionDir == "" {
		cfg.Logging.SessionDir = "sessions"
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = "http://localhost:8080"
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 30 * time.Second
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = "telemetry_sessions.db"
	}
}
