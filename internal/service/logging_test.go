package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secure-telemetry/internal/config"
	"github.com/MKhiriev/go-secure-telemetry/internal/logger"
	"github.com/MKhiriev/go-secure-telemetry/internal/mock"
	"github.com/MKhiriev/go-secure-telemetry/models"
)

const validSessionKey = "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6" // 32 chars

func loggingConfig(dir string) config.ClientLogging {
	return config.ClientLogging{
		Enabled:        true,
		SamplingPeriod: 200 * time.Millisecond,
		SessionDir:     dir,
	}
}

func TestLoggingManager_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	master := mock.NewMockMasterAdapter(ctrl)
	sessions := mock.NewMockSessionStore(ctrl)
	dir := t.TempDir()

	master.EXPECT().
		EnableLogging(gomock.Any(), "plc-1", int64(200)).
		Return(models.LoggingAck{SessionKey: validSessionKey}, nil)
	sessions.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, session models.LoggingSession) error {
			assert.Equal(t, validSessionKey, session.Key)
			assert.Equal(t, "plc-1", session.Device)
			assert.Equal(t, int64(200), session.PeriodMS)
			return nil
		})

	m := NewLoggingManager(master, sessions, "plc-1", loggingConfig(dir), logger.Nop())

	session, err := m.Start(context.Background(), true)

	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, validSessionKey, session.Key)
	assert.Equal(t, session, m.Active())

	// one descriptor file lands in the session directory
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "session_plc-1_"))

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(content), validSessionKey)
}

func TestLoggingManager_Start_ShortKeyMeansDeclined(t *testing.T) {
	ctrl := gomock.NewController(t)
	master := mock.NewMockMasterAdapter(ctrl)
	sessions := mock.NewMockSessionStore(ctrl) // no SaveSession expected
	dir := t.TempDir()

	master.EXPECT().
		EnableLogging(gomock.Any(), "plc-1", int64(200)).
		Return(models.LoggingAck{SessionKey: "not-a-key"}, nil)

	m := NewLoggingManager(master, sessions, "plc-1", loggingConfig(dir), logger.Nop())

	session, err := m.Start(context.Background(), true)

	require.NoError(t, err, "a declined session is not an error")
	assert.Nil(t, session)
	assert.Nil(t, m.Active())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no descriptor for a declined session")
}

func TestLoggingManager_Start_DisabledIssuesDisable(t *testing.T) {
	ctrl := gomock.NewController(t)
	master := mock.NewMockMasterAdapter(ctrl)
	sessions := mock.NewMockSessionStore(ctrl)

	master.EXPECT().DisableLogging(gomock.Any(), "plc-1").Return(nil)

	m := NewLoggingManager(master, sessions, "plc-1", loggingConfig(t.TempDir()), logger.Nop())

	session, err := m.Start(context.Background(), false)

	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestLoggingManager_Start_CatalogFailureDoesNotLoseSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	master := mock.NewMockMasterAdapter(ctrl)
	sessions := mock.NewMockSessionStore(ctrl)

	master.EXPECT().
		EnableLogging(gomock.Any(), "plc-1", int64(200)).
		Return(models.LoggingAck{SessionKey: validSessionKey}, nil)
	sessions.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		Return(errors.New("database is locked"))

	m := NewLoggingManager(master, sessions, "plc-1", loggingConfig(t.TempDir()), logger.Nop())

	session, err := m.Start(context.Background(), true)

	require.NoError(t, err, "the session exists server-side regardless of local bookkeeping")
	require.NotNil(t, session)
	assert.Equal(t, session, m.Active())
}

func TestLoggingManager_Stop(t *testing.T) {
	ctrl := gomock.NewController(t)
	master := mock.NewMockMasterAdapter(ctrl)
	sessions := mock.NewMockSessionStore(ctrl)

	master.EXPECT().
		EnableLogging(gomock.Any(), "plc-1", int64(200)).
		Return(models.LoggingAck{SessionKey: validSessionKey}, nil)
	sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
	master.EXPECT().DisableLogging(gomock.Any(), "plc-1").Return(nil)

	m := NewLoggingManager(master, sessions, "plc-1", loggingConfig(t.TempDir()), logger.Nop())
	_, err := m.Start(context.Background(), true)
	require.NoError(t, err)

	require.NoError(t, m.Stop(context.Background()))
	assert.Nil(t, m.Active())

	// second Stop: no active session, no network call
	require.NoError(t, m.Stop(context.Background()))
}

func TestLoggingManager_Stop_NothingActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	master := mock.NewMockMasterAdapter(ctrl) // no calls expected
	sessions := mock.NewMockSessionStore(ctrl)

	m := NewLoggingManager(master, sessions, "plc-1", loggingConfig(t.TempDir()), logger.Nop())

	require.NoError(t, m.Stop(context.Background()))
}
