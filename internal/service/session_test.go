package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secure-telemetry/internal/config"
	"github.com/MKhiriev/go-secure-telemetry/internal/crypto"
	"github.com/MKhiriev/go-secure-telemetry/internal/logger"
	"github.com/MKhiriev/go-secure-telemetry/internal/mock"
	"github.com/MKhiriev/go-secure-telemetry/models"
)

func sessionConfig(target, mode string) *config.ClientConfig {
	return &config.ClientConfig{
		Session: config.ClientSession{TargetID: target, Mode: mode},
		Encryption: config.ClientEncryption{
			Algorithm: config.AlgorithmNone,
			KeyBits:   256,
			Depth:     config.DepthFull,
		},
		Polling: config.ClientPolling{
			Period:         time.Hour, // keep the poller quiet during tests
			SamplingPeriod: 100 * time.Millisecond,
		},
		Logging: config.ClientLogging{
			SamplingPeriod: 200 * time.Millisecond,
			SessionDir:     "sessions",
		},
	}
}

func newTestSession(t *testing.T, ctrl *gomock.Controller, target, mode string) (*Session, *mock.MockMasterAdapter, *mock.MockSessionStore) {
	t.Helper()
	master := mock.NewMockMasterAdapter(ctrl)
	sessions := mock.NewMockSessionStore(ctrl)

	s, err := NewSession(sessionConfig(target, mode), master, crypto.NewPaillierSystem(), sessions, logger.Nop())
	require.NoError(t, err)
	return s, master, sessions
}

// ── Construction ─────────────────────────────────────────────────────────────

func TestNewSession_EmptyTargetForcesManager(t *testing.T) {
	ctrl := gomock.NewController(t)

	s, _, _ := newTestSession(t, ctrl, "", "control")

	assert.Equal(t, ModeManager, s.Mode())
}

func TestNewSession_UnknownMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	master := mock.NewMockMasterAdapter(ctrl)
	sessions := mock.NewMockSessionStore(ctrl)

	_, err := NewSession(sessionConfig("plc-1", "root"), master, crypto.NewPaillierSystem(), sessions, logger.Nop())

	require.ErrorIs(t, err, ErrInvalidArgument)
}

// ── Mode gating ──────────────────────────────────────────────────────────────

func TestSession_SetTag_DeniedOutsideControl(t *testing.T) {
	for _, mode := range []string{"monitor", "manager"} {
		t.Run(mode, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// no adapter expectations: a denied write must not reach the network
			s, _, _ := newTestSession(t, ctrl, "plc-1", mode)

			ok, err := s.SetTag(context.Background(), "temp", 21.5)

			require.ErrorIs(t, err, ErrWrongMode)
			assert.False(t, ok)
		})
	}
}

func TestSession_SetTag_Control(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, master, _ := newTestSession(t, ctrl, "plc-1", "control")

	master.EXPECT().
		WriteTag(gomock.Any(), "plc-1", models.EncryptedTagRecord{Name: "temp", Value: "21.5"}).
		Return(true, nil)

	ok, err := s.SetTag(context.Background(), "temp", 21.5)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSession_SetTags_BatchFrameCounter(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, master, _ := newTestSession(t, ctrl, "plc-1", "control")

	var frames []uint8
	master.EXPECT().
		WriteTagBatch(gomock.Any(), "plc-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, batch models.TagWriteBatch) (bool, error) {
			frames = append(frames, batch.FrameID)
			// batch order is deterministic: sorted by tag name
			require.Len(t, batch.Tags, 2)
			assert.Equal(t, "pressure", batch.Tags[0].Name)
			assert.Equal(t, "temp", batch.Tags[1].Name)
			return true, nil
		}).
		Times(3)

	values := map[string]any{"temp": 21.5, "pressure": 3}
	for i := 0; i < 3; i++ {
		ok, err := s.SetTags(context.Background(), values)
		require.NoError(t, err)
		require.True(t, ok)
	}

	assert.Equal(t, []uint8{0, 1, 2}, frames, "frame counter advances once per batch")
}

func TestSession_SetTags_EmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, _ := newTestSession(t, ctrl, "plc-1", "control")

	ok, err := s.SetTags(context.Background(), nil)

	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.False(t, ok)
}

func TestSession_FrameCounterWraps(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, _ := newTestSession(t, ctrl, "plc-1", "control")

	s.frameID = 255
	assert.Equal(t, uint8(255), s.nextFrameID())
	assert.Equal(t, uint8(0), s.nextFrameID(), "frame id wraps after 255")
}

// ── Stream control ───────────────────────────────────────────────────────────

func TestSession_SetTargetStream_MonitorMayOnlyEnable(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, master, _ := newTestSession(t, ctrl, "plc-1", "monitor")

	master.EXPECT().SetStream(gomock.Any(), "plc-1", true).Return(nil)
	require.NoError(t, s.SetTargetStream(context.Background(), true))

	err := s.SetTargetStream(context.Background(), false)
	require.ErrorIs(t, err, ErrWrongMode)
}

func TestSession_SetTargetStreamFrequency(t *testing.T) {
	tests := []struct {
		name  string
		hertz int
		valid bool
	}{
		{name: "zero", hertz: 0},
		{name: "above maximum", hertz: 51},
		{name: "negative", hertz: -1},
		{name: "minimum", hertz: 1, valid: true},
		{name: "mid-range", hertz: 25, valid: true},
		{name: "maximum", hertz: 50, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s, master, _ := newTestSession(t, ctrl, "plc-1", "control")

			if tt.valid {
				master.EXPECT().SetFrequency(gomock.Any(), "plc-1", tt.hertz).Return(nil)
			}

			ok, err := s.SetTargetStreamFrequency(context.Background(), tt.hertz)

			if !tt.valid {
				require.ErrorIs(t, err, ErrInvalidArgument)
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tt.hertz, s.StreamFrequency())
		})
	}
}

func TestSession_SetPollingPeriod_Range(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, _ := newTestSession(t, ctrl, "plc-1", "control")

	require.ErrorIs(t, s.SetPollingPeriod(10*time.Millisecond), ErrInvalidArgument)
	require.ErrorIs(t, s.SetPollingPeriod(time.Minute), ErrInvalidArgument)
	require.NoError(t, s.SetPollingPeriod(500*time.Millisecond))
}

func TestSession_SetVerboseMode_DeniedForManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, _ := newTestSession(t, ctrl, "", "manager")

	require.ErrorIs(t, s.SetVerboseMode(context.Background(), true), ErrWrongMode)
}

// ── Startup and teardown ─────────────────────────────────────────────────────

func TestSession_Start_Manager(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no adapter expectations: a manager session touches no device
	s, _, _ := newTestSession(t, ctrl, "", "manager")

	require.NoError(t, s.Start(context.Background()))
	s.poller.Stop()
}

func TestSession_Start_Control(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, master, _ := newTestSession(t, ctrl, "plc-1", "control")

	master.EXPECT().ResetDefaults(gomock.Any(), "plc-1").Return(nil)
	// derived from the 100ms sampling period: 10 Hz
	master.EXPECT().SetFrequency(gomock.Any(), "plc-1", 10).Return(nil)
	master.EXPECT().SetStream(gomock.Any(), "plc-1", true).Return(nil)
	master.EXPECT().FetchSnapshot(gomock.Any(), "plc-1").Return(models.Snapshot{}, nil).AnyTimes()

	require.NoError(t, s.Start(context.Background()))
	defer s.poller.Stop()

	assert.Equal(t, 10, s.StreamFrequency())
}

func TestSession_StopIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, master, _ := newTestSession(t, ctrl, "plc-1", "control")

	master.EXPECT().ResetDefaults(gomock.Any(), "plc-1").Return(nil)
	master.EXPECT().SetFrequency(gomock.Any(), "plc-1", 10).Return(nil)
	master.EXPECT().SetStream(gomock.Any(), "plc-1", true).Return(nil)
	master.EXPECT().FetchSnapshot(gomock.Any(), "plc-1").Return(models.Snapshot{}, nil).AnyTimes()
	// exactly one stream disable, however many times Stop is called
	master.EXPECT().SetStream(gomock.Any(), "plc-1", false).Return(nil).Times(1)

	require.NoError(t, s.Start(context.Background()))

	require.NoError(t, s.Stop(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
}

func TestSession_Stop_DeniedOutsideControl(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, _ := newTestSession(t, ctrl, "plc-1", "monitor")

	require.ErrorIs(t, s.Stop(context.Background()), ErrWrongMode)
}

func TestSession_CloseIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, sessions := newTestSession(t, ctrl, "plc-1", "monitor")

	sessions.EXPECT().Close().Return(nil).Times(1)

	require.NoError(t, s.Close(context.Background()))
	require.NoError(t, s.Close(context.Background()))
}

func TestSession_OperationsAfterClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, sessions := newTestSession(t, ctrl, "plc-1", "control")

	sessions.EXPECT().Close().Return(nil)
	require.NoError(t, s.Close(context.Background()))

	_, err := s.SetTag(context.Background(), "temp", 1)
	require.ErrorIs(t, err, ErrSessionClosed)

	require.ErrorIs(t, s.Start(context.Background()), ErrSessionClosed)
}

// ── Browse ───────────────────────────────────────────────────────────────────

func TestSession_ListTargets_AnyMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, master, _ := newTestSession(t, ctrl, "", "manager")

	targets := []models.Target{{ID: "plc-1"}, {ID: "plc-2"}}
	master.EXPECT().ListTargets(gomock.Any()).Return(targets, nil)

	got, err := s.ListTargets(context.Background())

	require.NoError(t, err)
	assert.Equal(t, targets, got)
}

func TestSession_RecordedSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, sessions := newTestSession(t, ctrl, "plc-1", "monitor")

	stored := []models.LoggingSession{{Key: validSessionKey, Device: "plc-1"}}
	sessions.EXPECT().Sessions(gomock.Any(), "plc-1").Return(stored, nil)

	got, err := s.RecordedSessions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}
