package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-secure-telemetry/internal/config"
	"github.com/MKhiriev/go-secure-telemetry/internal/logger"
	"github.com/MKhiriev/go-secure-telemetry/migrations"
	"github.com/MKhiriev/go-secure-telemetry/models"
)

const sessionsTable = "logging_sessions"

type sessionSQLiteStore struct {
	db      *sql.DB
	builder sq.StatementBuilderType

	logger *logger.Logger
}

// NewSessionStore opens (or creates) the sqlite session catalog at the
// configured DSN and applies pending schema migrations.
func NewSessionStore(storageCfg config.ClientStorage, log *logger.Logger) (SessionStore, error) {
	db, err := sql.Open("sqlite3", storageCfg.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("open session catalog: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("ping session catalog: %w", err)
	}

	if err = migrations.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate session catalog: %w", err)
	}

	return newSessionSQLiteStore(db, log), nil
}

func newSessionSQLiteStore(db *sql.DB, log *logger.Logger) *sessionSQLiteStore {
	return &sessionSQLiteStore{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  log,
	}
}

// SaveSession implements [SessionStore]. An existing row with the same key
// is replaced; the master is the source of truth for key uniqueness.
func (s *sessionSQLiteStore) SaveSession(ctx context.Context, session models.LoggingSession) error {
	query, args, err := s.builder.
		Replace(sessionsTable).
		Columns("key", "device", "period_ms", "created_at").
		Values(session.Key, session.Device, session.PeriodMS, session.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build save session query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save session %s: %w", session.Key, err)
	}

	s.logger.Debug().Str("key", session.Key).Str("device", session.Device).Msg("logging session persisted")
	return nil
}

// Sessions implements [SessionStore].
func (s *sessionSQLiteStore) Sessions(ctx context.Context, device string) ([]models.LoggingSession, error) {
	query, args, err := s.builder.
		Select("key", "device", "period_ms", "created_at").
		From(sessionsTable).
		Where(sq.Eq{"device": device}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list sessions query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions for %s: %w", device, err)
	}
	defer rows.Close()

	var sessions []models.LoggingSession
	for rows.Next() {
		var session models.LoggingSession
		if err = rows.Scan(&session.Key, &session.Device, &session.PeriodMS, &session.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session rows: %w", err)
	}

	return sessions, nil
}

// Close implements [SessionStore].
func (s *sessionSQLiteStore) Close() error {
	return s.db.Close()
}
