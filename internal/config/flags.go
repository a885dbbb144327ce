package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a master address in format [host]:[port] or full URL
//	-t/-target target device identifier
//	-m/-mode operating mode (manager, control, monitor)
//	-d database DSN for the local session catalog
//	-c/-config json or yaml file path with configs
//	-encryption-algorithm channel encryption algorithm (none, paillier)
//	-encryption-key-bits encryption key length in bits
//	-encryption-depth encryption depth (full, values_only)
//	-polling-period background poll period (e.g., "1s", "250ms")
//	-sampling-period device sampling period (e.g., "100ms")
//	-stream-frequency device stream frequency in Hz (1..50)
//	-logging request a server-side logging session
//	-logging-period logging sampling period (e.g., "200ms")
//	-session-dir directory for logging session descriptor files
//	-request-timeout outbound request timeout (e.g., "30s")
func ParseFlags() *StructuredConfig {
	var masterAddress string
	var targetID string
	var mode string
	var databaseDSN string
	var configPath string
	var algorithm string
	var keyBits int
	var depth string
	var pollingPeriod time.Duration
	var samplingPeriod time.Duration
	var streamFrequency int
	var loggingEnabled bool
	var loggingPeriod time.Duration
	var sessionDir string
	var requestTimeout time.Duration

	flag.StringVar(&masterAddress, "a", "", "Master address host:port or URL")
	flag.StringVar(&targetID, "t", "", "Target device identifier")
	flag.StringVar(&targetID, "target", "", "Target device identifier (alias)")
	flag.StringVar(&mode, "m", "", "Operating mode: manager, control, monitor")
	flag.StringVar(&mode, "mode", "", "Operating mode (alias)")
	flag.StringVar(&databaseDSN, "d", "", "Session catalog database DSN")
	flag.StringVar(&configPath, "c", "", "JSON/YAML config file path")
	flag.StringVar(&configPath, "config", "", "JSON/YAML config file path (alias)")
	flag.StringVar(&algorithm, "encryption-algorithm", "", "Encryption algorithm: none, paillier")
	flag.IntVar(&keyBits, "encryption-key-bits", 0, "Encryption key length in bits")
	flag.StringVar(&depth, "encryption-depth", "", "Encryption depth: full, values_only")
	flag.DurationVar(&pollingPeriod, "polling-period", 0, "Background poll period (e.g., 1s)")
	flag.DurationVar(&samplingPeriod, "sampling-period", 0, "Device sampling period (e.g., 100ms)")
	flag.IntVar(&streamFrequency, "stream-frequency", 0, "Device stream frequency in Hz (1..50)")
	flag.BoolVar(&loggingEnabled, "logging", false, "Request a server-side logging session")
	flag.DurationVar(&loggingPeriod, "logging-period", 0, "Logging sampling period (e.g., 200ms)")
	flag.StringVar(&sessionDir, "session-dir", "", "Directory for session descriptor files")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")

	flag.Parse()

	return &StructuredConfig{
		Session: Session{
			TargetID: targetID,
			Mode:     mode,
		},
		Encryption: Encryption{
			Algorithm: algorithm,
			KeyBits:   keyBits,
			Depth:     depth,
		},
		Polling: Polling{
			Period:          pollingPeriod,
			SamplingPeriod:  samplingPeriod,
			StreamFrequency: streamFrequency,
		},
		Logging: Logging{
			Enabled:        loggingEnabled,
			SamplingPeriod: loggingPeriod,
			SessionDir:     sessionDir,
		},
		Adapter: Adapter{
			HTTPAddress:    masterAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		ConfigFilePath: configPath,
	}
}
