package blob

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// SQLStore keeps blobs in a single key/value table. It works with any
// database/sql driver whose placeholders are positional ($1) or bare (?),
// selected with the dialect argument.
type SQLStore struct {
	db      *sql.DB
	dialect string
}

const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

func NewSQL(db *sql.DB, dialect string) *SQLStore {
	return &SQLStore{db: db, dialect: dialect}
}

func (s *SQLStore) EnsureSchema(ctx context.Context) error {
	ddl := `CREATE TABLE IF NOT EXISTS blobs (
		key TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`
	if s.dialect == DialectPostgres {
		ddl = `CREATE TABLE IF NOT EXISTS blobs (
		key TEXT PRIMARY KEY,
		data BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`
	}
	_, err := s.db.ExecContext(ctx, ddl)
	return err
}

func (s *SQLStore) Read(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT data FROM blobs WHERE key = ?`
	if s.dialect == DialectPostgres {
		query = `SELECT data FROM blobs WHERE key = $1`
	}
	var data []byte
	if err := s.db.QueryRowContext(ctx, query, key).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotExist
		}
		return nil, err
	}
	return data, nil
}

func (s *SQLStore) Write(ctx context.Context, key string, data []byte) error {
	query := `INSERT INTO blobs (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`
	if s.dialect == DialectPostgres {
		query = `INSERT INTO blobs (key, data, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`
	}
	_, err := s.db.ExecContext(ctx, query, key, data, time.Now().UTC())
	return err
}
