package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// telemetry client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON/YAML file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Session identifies the target device and the requested operating mode.
	Session Session `envPrefix:"SESSION_"`

	// Encryption selects the channel encryption algorithm, key length, and
	// encryption depth.
	Encryption Encryption `envPrefix:"ENCRYPTION_"`

	// Polling holds the background refresh period and the device stream
	// parameters.
	Polling Polling `envPrefix:"POLLING_"`

	// Logging holds server-side logging session settings.
	Logging Logging `envPrefix:"LOGGING_"`

	// Adapter holds the master address and outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local session-store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. When non-empty, the file is parsed and merged on top of the
	// values already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// Session identifies the device this client talks to and how.
type Session struct {
	// TargetID is the identifier of the target device on the master.
	// When empty the client always runs in manager mode.
	// Env: SESSION_TARGET_ID
	TargetID string `env:"TARGET_ID"`

	// Mode is the requested operating mode: "manager", "control", or
	// "monitor" (case-insensitive).
	// Env: SESSION_MODE
	Mode string `env:"MODE"`
}

// Encryption selects how the data channel is protected.
type Encryption struct {
	// Algorithm is "none" or "paillier".
	// Env: ENCRYPTION_ALGORITHM
	Algorithm string `env:"ALGORITHM"`

	// KeyBits is the local key length in bits. Must be a power of two.
	// Env: ENCRYPTION_KEY_BITS
	KeyBits int `env:"KEY_BITS"`

	// Depth is "full" (whole snapshot is ciphertext chunks) or
	// "values_only" (structure is plaintext, individual values are
	// ciphertext).
	// Env: ENCRYPTION_DEPTH
	Depth string `env:"DEPTH"`
}

// Polling holds the client refresh schedule and device stream parameters.
//
// The original protocol expressed on/off switches as 0/1 integers; here they
// are Go bools, so out-of-range flag values are unrepresentable by
// construction.
type Polling struct {
	// Period is the background poll period. Valid range [50ms, 10s].
	// Env: POLLING_PERIOD
	Period time.Duration `env:"PERIOD"`

	// SamplingPeriod is the device's internal sampling period, from which
	// the stream frequency is derived when entering control mode.
	// Valid range [50ms, 10s].
	// Env: POLLING_SAMPLING_PERIOD
	SamplingPeriod time.Duration `env:"SAMPLING_PERIOD"`

	// StreamFrequency is the requested device stream rate in hertz,
	// 1..50. Zero means "derive from SamplingPeriod".
	// Env: POLLING_STREAM_FREQUENCY
	StreamFrequency int `env:"STREAM_FREQUENCY"`
}

// Logging holds server-side logging session settings.
type Logging struct {
	// Enabled requests a logging session when entering control mode.
	// Env: LOGGING_ENABLED
	Enabled bool `env:"ENABLED"`

	// SamplingPeriod is the logging sampling period sent to the master
	// (rounded to milliseconds). Valid range [50ms, 10s].
	// Env: LOGGING_SAMPLING_PERIOD
	SamplingPeriod time.Duration `env:"SAMPLING_PERIOD"`

	// SessionDir is the local directory where one human-readable descriptor
	// file per logging session is written.
	// Env: LOGGING_SESSION_DIR
	SessionDir string `env:"SESSION_DIR"`
}

// Adapter holds network settings for the outbound transport layer.
type Adapter struct {
	// HTTPAddress is the base HTTP address of the master.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the bound on every outbound call (e.g. "30s").
	// A timed-out call is treated as a transport failure.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// DB holds the local session-catalog database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local sqlite session catalog.
type DB struct {
	// DSN is the sqlite connection string (a file path).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// GetStructuredConfig loads and merges the raw configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON/YAML file (path resolved from sources 1 and 2)
//
// Returns a populated *StructuredConfig or an error if any source fails to
// load. Validation happens later, on the [ClientConfig] view.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withFile().
		build()
}
