package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-secure-telemetry/internal/adapter"
	"github.com/MKhiriev/go-secure-telemetry/internal/config"
	"github.com/MKhiriev/go-secure-telemetry/internal/crypto"
	"github.com/MKhiriev/go-secure-telemetry/internal/logger"
	"github.com/MKhiriev/go-secure-telemetry/internal/store"
	"github.com/MKhiriev/go-secure-telemetry/models"
)

// Session coordinates one target device's mode, crypto channel, polling,
// and logging state for the connection's lifetime. The operating mode is
// fixed at construction; every privileged operation checks it before
// touching the network.
type Session struct {
	cfg    *config.ClientConfig
	mode   Mode
	device string

	master   adapter.MasterAdapter
	channel  CryptoChannel
	poller   *Poller
	logging  *LoggingManager
	sessions store.SessionStore

	logger *logger.Logger

	mu        sync.Mutex
	frameID   uint8
	frequency int
	running   bool
	closed    bool
}

// NewSession builds a session from a validated client configuration. The
// operating mode is selected here: an empty target identifier forces
// manager mode regardless of the requested mode.
func NewSession(
	cfg *config.ClientConfig,
	master adapter.MasterAdapter,
	system crypto.Cryptosystem,
	sessions store.SessionStore,
	log *logger.Logger,
) (*Session, error) {
	mode, err := SelectMode(cfg.Session.TargetID, cfg.Session.Mode)
	if err != nil {
		return nil, err
	}

	device := cfg.Session.TargetID
	channel := NewCryptoChannel(master, system, device, cfg.Encryption, log)

	return &Session{
		cfg:       cfg,
		mode:      mode,
		device:    device,
		master:    master,
		channel:   channel,
		poller:    NewPoller(channel, cfg.Polling.Period, log),
		logging:   NewLoggingManager(master, sessions, device, cfg.Logging, log),
		sessions:  sessions,
		logger:    log,
		frequency: cfg.Polling.StreamFrequency,
	}, nil
}

// Mode returns the session's operating mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Device returns the target device identifier.
func (s *Session) Device() string {
	return s.device
}

// Start brings the session up according to its mode.
//
// Manager sessions do nothing. Monitor sessions negotiate the channel,
// enable streaming, and start polling. Control sessions additionally reset
// the device to defaults, set the stream frequency derived from the
// sampling period, and start a logging session when requested. A handshake
// failure is fatal: the session does not proceed to streaming or polling.
func (s *Session) Start(ctx context.Context) error {
	if err := s.checkOpen(); err != nil {
		return err
	}

	if s.mode == ModeManager {
		s.logger.Info().Msg("manager session: no device startup")
		return nil
	}

	if err := s.channel.Negotiate(ctx); err != nil {
		return err
	}

	if s.mode == ModeControl {
		if err := s.master.ResetDefaults(ctx, s.device); err != nil {
			return fmt.Errorf("reset defaults: %w", err)
		}
		if err := s.master.SetFrequency(ctx, s.device, s.streamFrequency()); err != nil {
			return fmt.Errorf("set stream frequency: %w", err)
		}
	}

	if err := s.master.SetStream(ctx, s.device, true); err != nil {
		return fmt.Errorf("enable stream: %w", err)
	}

	s.poller.Start(ctx)

	if s.mode == ModeControl && s.cfg.Logging.Enabled {
		if _, err := s.logging.Start(ctx, true); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.running = true
	s.mu.Unlock()

	s.logger.Info().
		Str("device", s.device).
		Str("mode", s.mode.String()).
		Msg("session started")
	return nil
}

// streamFrequency resolves the stream rate: an explicitly configured
// frequency wins, otherwise the rate is derived from the device sampling
// period and clamped into the accepted band.
func (s *Session) streamFrequency() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frequency != 0 {
		return s.frequency
	}

	hz := int(math.Round(1 / s.cfg.Polling.SamplingPeriod.Seconds()))
	if hz < config.MinStreamFrequency {
		hz = config.MinStreamFrequency
	}
	if hz > config.MaxStreamFrequency {
		hz = config.MaxStreamFrequency
	}
	s.frequency = hz
	return hz
}

// ── Tag reads ────────────────────────────────────────────────────────────────

// GetTag returns the named tag's record from the most recently published
// mapping. The mapping may be stale by up to one polling period.
func (s *Session) GetTag(name string) (models.TagRecord, bool) {
	return s.poller.Tag(name)
}

// GetTagValue returns the named tag's current value.
func (s *Session) GetTagValue(name string) (any, bool) {
	rec, ok := s.poller.Tag(name)
	if !ok {
		return nil, false
	}
	return rec.Value(), true
}

// GetAllTags returns the most recently published tag mapping. Callers must
// treat it as read-only.
func (s *Session) GetAllTags() models.TagMapping {
	return s.poller.Mapping()
}

// ── Tag writes ───────────────────────────────────────────────────────────────

// SetTag writes one tag value. Control mode only: in any other mode the
// confirmation is false, the error wraps [ErrWrongMode], and no network
// call is issued. The write's effect may not be visible in reads until a
// subsequent poll tick completes.
func (s *Session) SetTag(ctx context.Context, name string, value any) (bool, error) {
	if err := s.requireControl("set tag"); err != nil {
		return false, err
	}

	record, err := s.channel.EncryptTag(name, stringifyValue(value))
	if err != nil {
		return false, err
	}

	ok, err := s.master.WriteTag(ctx, s.device, record)
	observeWrite(ok, err)
	return ok, err
}

// SetTags writes a batch of tags under one frame id. Tags are encrypted
// individually and sent in name order; the frame counter advances once per
// batch, wrapping at 256.
func (s *Session) SetTags(ctx context.Context, values map[string]any) (bool, error) {
	if err := s.requireControl("set tags"); err != nil {
		return false, err
	}
	if len(values) == 0 {
		return false, fmt.Errorf("%w: empty batch", ErrInvalidArgument)
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	records := make([]models.EncryptedTagRecord, 0, len(names))
	for _, name := range names {
		record, err := s.channel.EncryptTag(name, stringifyValue(values[name]))
		if err != nil {
			return false, err
		}
		records = append(records, record)
	}

	batch := models.TagWriteBatch{FrameID: s.nextFrameID(), Tags: records}
	ok, err := s.master.WriteTagBatch(ctx, s.device, batch)
	observeWrite(ok, err)
	return ok, err
}

// nextFrameID advances the frame counter: next(n) = (n+1) mod 256.
func (s *Session) nextFrameID() uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.frameID
	s.frameID++ // uint8 wraps at 256 by itself
	return id
}

// ── Device control ───────────────────────────────────────────────────────────

// SetTargetStream toggles the device data stream. Monitor sessions may only
// enable it; disabling is a control-mode operation.
func (s *Session) SetTargetStream(ctx context.Context, on bool) error {
	switch s.mode {
	case ModeControl:
	case ModeMonitor:
		if !on {
			return s.wrongMode("disable stream")
		}
	default:
		return s.wrongMode("set stream")
	}

	if err := s.master.SetStream(ctx, s.device, on); err != nil {
		return err
	}
	s.logger.Debug().Bool("on", on).Msg("target stream toggled")
	return nil
}

// SetTargetStreamFrequency sets the device stream rate. The rate must be an
// integer number of hertz in [1, 50]; out-of-range values fail validation
// without a network call. On success the stored frequency is updated and
// the confirmation is true.
func (s *Session) SetTargetStreamFrequency(ctx context.Context, hertz int) (bool, error) {
	if err := s.requireControl("set stream frequency"); err != nil {
		return false, err
	}
	if hertz < config.MinStreamFrequency || hertz > config.MaxStreamFrequency {
		return false, fmt.Errorf("%w: stream frequency %d outside [%d, %d]",
			ErrInvalidArgument, hertz, config.MinStreamFrequency, config.MaxStreamFrequency)
	}

	if err := s.master.SetFrequency(ctx, s.device, hertz); err != nil {
		return false, err
	}

	s.mu.Lock()
	s.frequency = hertz
	s.mu.Unlock()
	return true, nil
}

// StreamFrequency returns the last successfully applied stream rate.
func (s *Session) StreamFrequency() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frequency
}

// SetPollingPeriod changes the background poll period. Control mode only.
func (s *Session) SetPollingPeriod(period time.Duration) error {
	if err := s.requireControl("set polling period"); err != nil {
		return err
	}
	if period < config.MinPeriod || period > config.MaxPeriod {
		return fmt.Errorf("%w: polling period %v outside [%v, %v]",
			ErrInvalidArgument, period, config.MinPeriod, config.MaxPeriod)
	}

	s.poller.SetPeriod(period)
	return nil
}

// SetVerboseMode toggles the master's verbose reporting for the device and
// moves the client log level with it. Not available to manager sessions.
func (s *Session) SetVerboseMode(ctx context.Context, on bool) error {
	if s.mode == ModeManager {
		return s.wrongMode("set verbose mode")
	}

	if err := s.master.SetVerbose(ctx, s.device, on); err != nil {
		return err
	}
	s.logger.SetVerbose(on)
	return nil
}

// SendCommand issues one raw device command. Control mode only.
func (s *Session) SendCommand(ctx context.Context, command string) error {
	if err := s.requireControl("send command"); err != nil {
		return err
	}
	return s.master.SendCommand(ctx, s.device, command)
}

// ── Browse ───────────────────────────────────────────────────────────────────

// ListTargets lists the devices known to the master. Available in every
// mode; it is the one device-independent operation a manager session has.
func (s *Session) ListTargets(ctx context.Context) ([]models.Target, error) {
	return s.master.ListTargets(ctx)
}

// GetLibraryFile fetches one device library file from the master.
func (s *Session) GetLibraryFile(ctx context.Context, file string) ([]byte, error) {
	return s.master.GetLibraryFile(ctx, file)
}

// GetTargetConfig fetches the device's configuration document.
func (s *Session) GetTargetConfig(ctx context.Context) (json.RawMessage, error) {
	if s.mode == ModeManager {
		return nil, s.wrongMode("get target config")
	}
	return s.master.GetConfig(ctx, s.device)
}

// RecordedSessions returns the local catalog of logging sessions started
// for this device, newest first.
func (s *Session) RecordedSessions(ctx context.Context) ([]models.LoggingSession, error) {
	return s.sessions.Sessions(ctx, s.device)
}

// MasterSessions lists the logging sessions the master holds for this
// device.
func (s *Session) MasterSessions(ctx context.Context) ([]models.LoggingSessionInfo, error) {
	if s.mode == ModeManager {
		return nil, s.wrongMode("list logging sessions")
	}
	return s.master.ListLoggingSessions(ctx, s.device)
}

// FetchLoggingData retrieves the recorded data of one logging session from
// the master. Read-only, so monitor sessions may use it too.
func (s *Session) FetchLoggingData(ctx context.Context, key string) (json.RawMessage, error) {
	if s.mode == ModeManager {
		return nil, s.wrongMode("fetch logging data")
	}
	return s.master.FetchLoggingData(ctx, s.device, key)
}

// ── Teardown ─────────────────────────────────────────────────────────────────

// Off disables device streaming and halts polling without tearing down the
// session. Control mode only.
func (s *Session) Off(ctx context.Context) error {
	if err := s.requireControl("off"); err != nil {
		return err
	}

	s.poller.Stop()
	return s.master.SetStream(ctx, s.device, false)
}

// Stop halts the background poller, stops any active logging session, and
// disables device streaming. After Stop returns no further poll tick
// executes. Control mode only; idempotent — a second call is a no-op.
func (s *Session) Stop(ctx context.Context) error {
	if err := s.requireControl("stop"); err != nil {
		return err
	}

	s.mu.Lock()
	wasRunning := s.running
	s.running = false
	s.mu.Unlock()

	if !wasRunning {
		return nil
	}

	s.poller.Stop()

	if err := s.logging.Stop(ctx); err != nil {
		return err
	}
	if err := s.master.SetStream(ctx, s.device, false); err != nil {
		return err
	}

	s.logger.Info().Str("device", s.device).Msg("session stopped")
	return nil
}

// Close releases the session. Control sessions are stopped first; in every
// mode the poller is halted and local resources are released. Idempotent.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	var stopErr error
	if s.mode == ModeControl {
		stopErr = s.Stop(ctx)
	} else {
		s.poller.Stop()
	}

	if err := s.sessions.Close(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to close session catalog")
	}

	s.logger.Info().Str("device", s.device).Msg("session closed")
	return stopErr
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func (s *Session) requireControl(op string) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if s.mode != ModeControl {
		return s.wrongMode(op)
	}
	return nil
}

func (s *Session) wrongMode(op string) error {
	s.logger.Warn().Str("op", op).Str("mode", s.mode.String()).Msg("operation denied by mode")
	return fmt.Errorf("%w: %s requires control mode, session is %s", ErrWrongMode, op, s.mode)
}

func (s *Session) checkOpen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	return nil
}

// stringifyValue renders a tag value for transmission. Numbers keep their
// natural decimal form; everything else falls back to JSON encoding.
func stringifyValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}

func observeWrite(ok bool, err error) {
	result := "confirmed"
	if err != nil {
		result = "error"
	} else if !ok {
		result = "rejected"
	}
	metricTagWrites.WithLabelValues(result).Inc()
}
