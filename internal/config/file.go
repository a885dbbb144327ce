package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] for file decoding. Duration
// fields use the [Duration] wrapper so that values like "250ms" or "30s" work
// in both JSON and YAML.
type StructuredFileConfig struct {
	Session struct {
		TargetID string `json:"target_id" yaml:"target_id"`
		Mode     string `json:"mode" yaml:"mode"`
	} `json:"session,omitempty" yaml:"session"`

	Encryption struct {
		Algorithm string `json:"algorithm" yaml:"algorithm"`
		KeyBits   int    `json:"key_bits" yaml:"key_bits"`
		Depth     string `json:"depth" yaml:"depth"`
	} `json:"encryption,omitempty" yaml:"encryption"`

	Polling struct {
		Period          Duration `json:"period" yaml:"period"`
		SamplingPeriod  Duration `json:"sampling_period" yaml:"sampling_period"`
		StreamFrequency int      `json:"stream_frequency" yaml:"stream_frequency"`
	} `json:"polling,omitempty" yaml:"polling"`

	Logging struct {
		Enabled        bool     `json:"enabled" yaml:"enabled"`
		SamplingPeriod Duration `json:"sampling_period" yaml:"sampling_period"`
		SessionDir     string   `json:"session_dir" yaml:"session_dir"`
	} `json:"logging,omitempty" yaml:"logging"`

	Adapter struct {
		HTTPAddress    string   `json:"address" yaml:"address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db"`
	} `json:"storage,omitempty" yaml:"storage"`
}

// parseFile reads a JSON or YAML config file, chosen by extension
// (.yaml/.yml → YAML, anything else → JSON), and maps it onto a
// [StructuredConfig].
func parseFile(filePath string) (*StructuredConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	cfg := &StructuredConfig{
		Session: Session{
			TargetID: fileCfg.Session.TargetID,
			Mode:     fileCfg.Session.Mode,
		},
		Encryption: Encryption{
			Algorithm: fileCfg.Encryption.Algorithm,
			KeyBits:   fileCfg.Encryption.KeyBits,
			Depth:     fileCfg.Encryption.Depth,
		},
		Polling: Polling{
			Period:          time.Duration(fileCfg.Polling.Period),
			SamplingPeriod:  time.Duration(fileCfg.Polling.SamplingPeriod),
			StreamFrequency: fileCfg.Polling.StreamFrequency,
		},
		Logging: Logging{
			Enabled:        fileCfg.Logging.Enabled,
			SamplingPeriod: time.Duration(fileCfg.Logging.SamplingPeriod),
			SessionDir:     fileCfg.Logging.SessionDir,
		},
		Adapter: Adapter{
			HTTPAddress:    fileCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: fileCfg.Storage.DB.DSN,
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports unmarshaling from
// strings like "1h", "30s" in both JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(n)
		return nil
	}

	tmp, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
