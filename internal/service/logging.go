package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-secure-telemetry/internal/adapter"
	"github.com/MKhiriev/go-secure-telemetry/internal/config"
	"github.com/MKhiriev/go-secure-telemetry/internal/logger"
	"github.com/MKhiriev/go-secure-telemetry/internal/store"
	"github.com/MKhiriev/go-secure-telemetry/models"
)

// LoggingManager drives the server-side logging session lifecycle. At most
// one session is active per client session; starting a new one supersedes
// the previous (the master's enable call is the source of truth for the old
// session's termination).
type LoggingManager struct {
	master   adapter.MasterAdapter
	sessions store.SessionStore
	device   string
	cfg      config.ClientLogging
	logger   *logger.Logger

	mu     sync.Mutex
	active *models.LoggingSession
}

// NewLoggingManager constructs the logging session manager for one device.
func NewLoggingManager(master adapter.MasterAdapter, sessions store.SessionStore, device string, loggingCfg config.ClientLogging, log *logger.Logger) *LoggingManager {
	return &LoggingManager{
		master:   master,
		sessions: sessions,
		device:   device,
		cfg:      loggingCfg,
		logger:   log,
	}
}

// Start begins (or explicitly disables) server-side logging.
//
// With enabled false it issues the disable call and returns no session.
// Otherwise it requests logging at the configured sampling period; the
// master answers with a session key that must be exactly
// [models.SessionKeyLength] characters. Any other length means the server
// declined: that is an informational outcome, not an error, and no session
// record is created.
//
// On success the session is persisted to the local catalog and one
// human-readable descriptor file is written.
func (m *LoggingManager) Start(ctx context.Context, enabled bool) (*models.LoggingSession, error) {
	if !enabled {
		if err := m.master.DisableLogging(ctx, m.device); err != nil {
			return nil, fmt.Errorf("disable logging: %w", err)
		}
		return nil, nil
	}

	periodMS := m.cfg.SamplingPeriod.Round(time.Millisecond).Milliseconds()
	ack, err := m.master.EnableLogging(ctx, m.device, periodMS)
	if err != nil {
		return nil, fmt.Errorf("enable logging: %w", err)
	}

	if len(ack.SessionKey) != models.SessionKeyLength {
		m.logger.Info().
			Str("device", m.device).
			Int("key_length", len(ack.SessionKey)).
			Msg("master declined logging session")
		return nil, nil
	}

	session := &models.LoggingSession{
		Key:       ack.SessionKey,
		Device:    m.device,
		PeriodMS:  periodMS,
		CreatedAt: time.Now().UTC(),
	}

	// The session already exists server-side; local bookkeeping failures
	// must not lose it.
	if err = m.sessions.SaveSession(ctx, *session); err != nil {
		m.logger.Warn().Err(err).Str("key", session.Key).Msg("failed to persist logging session to catalog")
	}
	if _, err = store.WriteDescriptor(m.cfg.SessionDir, *session); err != nil {
		m.logger.Warn().Err(err).Str("key", session.Key).Msg("failed to write session descriptor")
	}

	m.mu.Lock()
	m.active = session
	m.mu.Unlock()

	m.logger.Info().Str("device", m.device).Str("key", session.Key).Msg("logging session started")
	return session, nil
}

// Stop disables logging on the master and discards the local session
// record. It is idempotent: with no active session it performs no network
// call and returns nil.
func (m *LoggingManager) Stop(ctx context.Context) error {
	m.mu.Lock()
	active := m.active
	m.active = nil
	m.mu.Unlock()

	if active == nil {
		return nil
	}

	if err := m.master.DisableLogging(ctx, m.device); err != nil {
		return fmt.Errorf("disable logging: %w", err)
	}

	m.logger.Info().Str("device", m.device).Str("key", active.Key).Msg("logging session stopped")
	return nil
}

// Active returns the currently active session, or nil.
func (m *LoggingManager) Active() *models.LoggingSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}
