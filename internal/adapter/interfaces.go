package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/master_adapter_mock.go -package=mock

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-secure-telemetry/models"
)

// MasterAdapter is the transport boundary to the remote telemetry master.
// GET routes return decoded structured responses; POST routes send a JSON
// body and return the master's acknowledgment. Implementations must treat
// timeouts and non-2xx statuses as errors wrapping [ErrTransport].
type MasterAdapter interface {
	// ListTargets returns the devices known to the master.
	ListTargets(ctx context.Context) ([]models.Target, error)

	// GetLibraryFile fetches one device library file by name.
	GetLibraryFile(ctx context.Context, file string) ([]byte, error)

	// GetConfig fetches a device's configuration document.
	GetConfig(ctx context.Context, device string) (json.RawMessage, error)

	// FetchSnapshot fetches the current plaintext data snapshot.
	FetchSnapshot(ctx context.Context, device string) (models.Snapshot, error)

	// FetchEncryptedSnapshot fetches the current snapshot as ordered
	// ciphertext chunks.
	FetchEncryptedSnapshot(ctx context.Context, device string) (models.EncryptedSnapshot, error)

	// SendCommand issues one device command.
	SendCommand(ctx context.Context, device, command string) error

	// SetVerbose toggles the master's verbose reporting for the device.
	SetVerbose(ctx context.Context, device string, on bool) error

	// SetStream toggles the device data stream.
	SetStream(ctx context.Context, device string, on bool) error

	// SetFrequency sets the device stream frequency in hertz.
	SetFrequency(ctx context.Context, device string, hertz int) error

	// WriteTag writes one tag record and returns the master's confirmation.
	WriteTag(ctx context.Context, device string, record models.EncryptedTagRecord) (bool, error)

	// WriteTagBatch writes one frame-tagged batch of tag records and
	// returns the master's confirmation.
	WriteTagBatch(ctx context.Context, device string, batch models.TagWriteBatch) (bool, error)

	// ExchangeKey posts the client's public key and returns the master's
	// public key components.
	ExchangeKey(ctx context.Context, device, publicKey string) (models.KeyExchangeResponse, error)

	// ResetDefaults resets the device to its default state.
	ResetDefaults(ctx context.Context, device string) error

	// EnableLogging starts server-side logging at the given sampling period
	// in milliseconds and returns the master's acknowledgment.
	EnableLogging(ctx context.Context, device string, periodMS int64) (models.LoggingAck, error)

	// DisableLogging stops server-side logging for the device.
	DisableLogging(ctx context.Context, device string) error

	// ListLoggingSessions lists the logging sessions the master holds for
	// the device.
	ListLoggingSessions(ctx context.Context, device string) ([]models.LoggingSessionInfo, error)

	// FetchLoggingData fetches the recorded data of one logging session.
	FetchLoggingData(ctx context.Context, device, key string) (json.RawMessage, error)
}
