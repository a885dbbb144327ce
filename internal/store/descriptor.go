package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-secure-telemetry/models"
)

// WriteDescriptor writes one human-readable descriptor file for a logging
// session into dir, creating the directory if needed, and returns the file
// path. The name combines the device, a second-granularity timestamp, and a
// random suffix, so two sessions started within the same second cannot
// collide. The file is informational only and is never re-parsed by the
// client.
func WriteDescriptor(dir string, session models.LoggingSession) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create session directory: %w", err)
	}

	name := fmt.Sprintf("session_%s_%s_%s.txt",
		session.Device,
		session.CreatedAt.UTC().Format("20060102T150405"),
		uuid.NewString()[:8],
	)
	path := filepath.Join(dir, name)

	content := fmt.Sprintf(
		"logging session\n"+
			"key:        %s\n"+
			"device:     %s\n"+
			"period_ms:  %d\n"+
			"created_at: %s\n",
		session.Key,
		session.Device,
		session.PeriodMS,
		session.CreatedAt.UTC().Format("2006-01-02 15:04:05 MST"),
	)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write session descriptor: %w", err)
	}

	return path, nil
}
