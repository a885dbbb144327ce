package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secure-telemetry/models"
)

func TestWriteDescriptor(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sessions")
	session := models.LoggingSession{
		Key:       strings.Repeat("a", models.SessionKeyLength),
		Device:    "plc-1",
		PeriodMS:  200,
		CreatedAt: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
	}

	path, err := WriteDescriptor(dir, session)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), session.Key)
	assert.Contains(t, string(content), "plc-1")
	assert.Contains(t, filepath.Base(path), "20260824T120000")
}

func TestWriteDescriptor_CollisionResistantWithinOneSecond(t *testing.T) {
	dir := t.TempDir()
	session := models.LoggingSession{
		Key:       strings.Repeat("b", models.SessionKeyLength),
		Device:    "plc-1",
		CreatedAt: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
	}

	first, err := WriteDescriptor(dir, session)
	require.NoError(t, err)
	second, err := WriteDescriptor(dir, session)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
