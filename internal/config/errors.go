package config

import "errors"

// Validation errors returned by [ClientConfig.Validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidSessionConfigs indicates an unrecognized operating mode.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidEncryptionConfigs indicates an unrecognized algorithm or
	// depth, or a key length that is not a power of two.
	ErrInvalidEncryptionConfigs = errors.New("invalid encryption configuration")
	// ErrInvalidPollingConfigs indicates a poll period, sampling period, or
	// stream frequency outside the accepted range.
	ErrInvalidPollingConfigs = errors.New("invalid polling configuration")
	// ErrInvalidLoggingConfigs indicates invalid logging session settings.
	ErrInvalidLoggingConfigs = errors.New("invalid logging configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
