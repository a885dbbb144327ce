package store

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-secure-telemetry/models"
)

// SessionStore is the local catalog of logging sessions this client has
// started. Past session keys are kept so recorded data can be retrieved
// from the master after the client restarts.
type SessionStore interface {
	// SaveSession persists one logging session descriptor.
	SaveSession(ctx context.Context, session models.LoggingSession) error

	// Sessions returns the stored sessions for a device, newest first.
	Sessions(ctx context.Context, device string) ([]models.LoggingSession, error)

	// Close releases the underlying database handle.
	Close() error
}
