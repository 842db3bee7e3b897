package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/osmike/cronpick/internal/domain"
	errs "github.com/osmike/cronpick/internal/error"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS cron_expressions (
	key        TEXT PRIMARY KEY,
	dialect    TEXT NOT NULL,
	expression TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);`

// OpenSQLite opens (and creates if needed) a SQLite database at dsn and
// makes sure the expression table exists.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}
	return db, nil
}

// SQLite keeps the expression of one key in the cron_expressions table.
type SQLite struct {
	db      *sql.DB
	key     string
	dialect domain.Dialect
	timeout time.Duration
}

// NewSQLite returns a host bound to key. db must have been prepared by OpenSQLite.
func NewSQLite(db *sql.DB, key string, dialect domain.Dialect) (*SQLite, error) {
	if key == "" {
		return nil, errs.ErrEmptyKey
	}
	return &SQLite{db: db, key: key, dialect: dialect, timeout: 5 * time.Second}, nil
}

// Value returns the stored expression, or "" if the key has none yet.
func (s *SQLite) Value() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	expr, err := s.Get(ctx)
	if errors.Is(err, errs.ErrExpressionNotFound) {
		return "", nil
	}
	return expr, err
}

// Get returns the stored expression, ErrExpressionNotFound, or
// ErrDialectMismatch when the key was written in another dialect.
func (s *SQLite) Get(ctx context.Context) (string, error) {
	var expr, dialect string
	err := s.db.QueryRowContext(ctx,
		`SELECT expression, dialect FROM cron_expressions WHERE key = ?`, s.key,
	).Scan(&expr, &dialect)
	if errors.Is(err, sql.ErrNoRows) {
		return "", errs.New(errs.ErrExpressionNotFound, s.key)
	}
	if err != nil {
		return "", fmt.Errorf("select expression: %w", err)
	}
	if dialect != string(s.dialect) {
		return "", errs.New(errs.ErrDialectMismatch, fmt.Sprintf("%s is %s, not %s", s.key, dialect, s.dialect))
	}
	return expr, nil
}

func (s *SQLite) SetValue(expr string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cron_expressions (key, dialect, expression, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			dialect = excluded.dialect,
			expression = excluded.expression,
			updated_at = excluded.updated_at`,
		s.key, string(s.dialect), expr, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("upsert expression: %w", err)
	}
	return nil
}

// Entry is one row of the cron_expressions table.
type Entry struct {
	Key        string    `yaml:"key" json:"key"`
	Dialect    string    `yaml:"dialect" json:"dialect"`
	Expression string    `yaml:"expression" json:"expression"`
	UpdatedAt  time.Time `yaml:"updated_at" json:"updated_at"`
}

// ListSQLite returns every stored expression ordered by key.
func ListSQLite(ctx context.Context, db *sql.DB) ([]Entry, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT key, dialect, expression, updated_at FROM cron_expressions ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list expressions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var updated int64
		if err := rows.Scan(&e.Key, &e.Dialect, &e.Expression, &updated); err != nil {
			return nil, fmt.Errorf("scan expression: %w", err)
		}
		e.UpdatedAt = time.Unix(updated, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
