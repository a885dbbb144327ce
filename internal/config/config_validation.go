package config

import (
	"fmt"
	"strings"
)

// validModes is the recognized operating mode set, matched case-insensitively.
var validModes = map[string]struct{}{
	"manager": {},
	"control": {},
	"monitor": {},
}

// Validate checks that the final merged [ClientConfig] satisfies all
// construction invariants. It fails fast: a client must never be built from
// an invalid mode, an out-of-range period, or an unrecognized encryption
// setting.
//
// Returns nil if the configuration is valid, or a descriptive error wrapping
// one of the package sentinel errors otherwise.
func (cfg *ClientConfig) Validate() error {
	if _, ok := validModes[strings.ToLower(cfg.Session.Mode)]; !ok {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidSessionConfigs, cfg.Session.Mode)
	}

	if err := cfg.validateEncryption(); err != nil {
		return err
	}
	if err := cfg.validatePolling(); err != nil {
		return err
	}

	if cfg.Logging.SamplingPeriod < MinPeriod || cfg.Logging.SamplingPeriod > MaxPeriod {
		return fmt.Errorf("%w: logging sampling period %v outside [%v, %v]",
			ErrInvalidLoggingConfigs, cfg.Logging.SamplingPeriod, MinPeriod, MaxPeriod)
	}
	if cfg.Logging.SessionDir == "" {
		return fmt.Errorf("%w: empty session directory", ErrInvalidLoggingConfigs)
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validateEncryption() error {
	switch cfg.Encryption.Algorithm {
	case AlgorithmNone, AlgorithmPaillier:
	default:
		return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidEncryptionConfigs, cfg.Encryption.Algorithm)
	}

	switch cfg.Encryption.Depth {
	case DepthFull, DepthValuesOnly:
	default:
		return fmt.Errorf("%w: unknown depth %q", ErrInvalidEncryptionConfigs, cfg.Encryption.Depth)
	}

	if bits := cfg.Encryption.KeyBits; bits <= 0 || bits&(bits-1) != 0 {
		return fmt.Errorf("%w: key length %d is not a power of two", ErrInvalidEncryptionConfigs, bits)
	}

	return nil
}

func (cfg *ClientConfig) validatePolling() error {
	if cfg.Polling.Period < MinPeriod || cfg.Polling.Period > MaxPeriod {
		return fmt.Errorf("%w: polling period %v outside [%v, %v]",
			ErrInvalidPollingConfigs, cfg.Polling.Period, MinPeriod, MaxPeriod)
	}

	if cfg.Polling.SamplingPeriod < MinPeriod || cfg.Polling.SamplingPeriod > MaxPeriod {
		return fmt.Errorf("%w: sampling period %v outside [%v, %v]",
			ErrInvalidPollingConfigs, cfg.Polling.SamplingPeriod, MinPeriod, MaxPeriod)
	}

	if hz := cfg.Polling.StreamFrequency; hz != 0 && (hz < MinStreamFrequency || hz > MaxStreamFrequency) {
		return fmt.Errorf("%w: stream frequency %d outside [%d, %d]",
			ErrInvalidPollingConfigs, hz, MinStreamFrequency, MaxStreamFrequency)
	}

	return nil
}
