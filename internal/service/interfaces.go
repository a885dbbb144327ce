package service

import (
	"context"

	"github.com/MKhiriev/go-secure-telemetry/models"
)

// CryptoChannel owns all encryption-related session state and transforms
// tag reads and writes across the possibly-encrypted boundary. Its behavior
// is selected once from the encryption configuration, not re-checked at
// call sites.
type CryptoChannel interface {
	// Negotiate performs the one-time key exchange with the master. It is
	// a no-op when encryption is off. A malformed response or transport
	// error is fatal to session startup.
	Negotiate(ctx context.Context) error

	// EncryptTag prepares one outbound tag write, encrypting name and
	// value independently when the channel is encrypted.
	EncryptTag(name, value string) (models.EncryptedTagRecord, error)

	// Snapshot fetches and decodes the current device snapshot. The
	// returned shift is the number of trailing metadata sections the
	// flattening step must drop.
	Snapshot(ctx context.Context) (models.Snapshot, int, error)
}
