package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	_ "github.com/lib/pq"
)

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func (c PostgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

// PostgresStore keeps every collection in one JSONB table keyed by (collection, id).
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgresStore connects and pings the database.
func OpenPostgresStore(ctx context.Context, cfg PostgresConfig) (*PostgresStore, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return NewPostgresStore(db), nil
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) InitializeTables(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS documents (
		collection TEXT NOT NULL,
		id TEXT NOT NULL,
		body JSONB NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
		PRIMARY KEY (collection, id)
	);

	CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection);
	CREATE INDEX IF NOT EXISTS idx_documents_created_at ON documents(created_at);
	`

	_, err := s.db.ExecContext(ctx, query)
	return err
}

func (s *PostgresStore) GetAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	query := `
	SELECT body
	FROM documents
	WHERE collection = $1
	ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []json.RawMessage{}
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		docs = append(docs, json.RawMessage(body))
	}

	return docs, rows.Err()
}

func (s *PostgresStore) GetByID(ctx context.Context, collection, id string) (json.RawMessage, error) {
	query := `
	SELECT body
	FROM documents
	WHERE collection = $1 AND id = $2
	`

	var body []byte
	err := s.db.QueryRowContext(ctx, query, collection, id).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return json.RawMessage(body), nil
}

func (s *PostgresStore) Create(ctx context.Context, collection, id string, doc json.RawMessage) error {
	if err := validateObject(doc); err != nil {
		return err
	}

	query := `
	INSERT INTO documents (collection, id, body)
	VALUES ($1, $2, $3::jsonb)
	ON CONFLICT (collection, id) DO NOTHING
	`

	result, err := s.db.ExecContext(ctx, query, collection, id, string(doc))
	if err != nil {
		return err
	}
	return expectOneRow(result, ErrAlreadyExists)
}

func (s *PostgresStore) Update(ctx context.Context, collection, id string, patch json.RawMessage) error {
	patch, err := stripID(patch)
	if err != nil {
		return err
	}

	query := `
	UPDATE documents
	SET body = body || $3::jsonb, updated_at = NOW()
	WHERE collection = $1 AND id = $2
	`

	result, err := s.db.ExecContext(ctx, query, collection, id, string(patch))
	if err != nil {
		return err
	}
	return expectOneRow(result, ErrNotFound)
}

// UpdateIf guards the merge with the WHERE clause, so the check and the write are one
// statement. When nothing matched, a second read tells a missing row from a conflict.
func (s *PostgresStore) UpdateIf(ctx context.Context, collection, id, field, want string, patch json.RawMessage) error {
	patch, err := stripID(patch)
	if err != nil {
		return err
	}

	query := `
	UPDATE documents
	SET body = body || $3::jsonb, updated_at = NOW()
	WHERE collection = $1 AND id = $2 AND body->>$4 = $5
	`

	result, err := s.db.ExecContext(ctx, query, collection, id, string(patch), field, want)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected > 0 {
		return nil
	}

	var exists bool
	err = s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM documents WHERE collection = $1 AND id = $2)`,
		collection, id,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return ErrConflict
}

func (s *PostgresStore) Delete(ctx context.Context, collection, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE collection = $1 AND id = $2`, collection, id)
	if err != nil {
		return err
	}
	return expectOneRow(result, ErrNotFound)
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func expectOneRow(result sql.Result, none error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return none
	}
	return nil
}
