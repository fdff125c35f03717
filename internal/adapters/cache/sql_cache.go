package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQLLookupCache is a Postgres-backed LookupCache for deployments that
// already run a database but no Redis. Expiry is lazy: reads filter on
// expires_at, and Sweep deletes what lazy expiry left behind.
type SQLLookupCache struct {
	DB *sql.DB
}

func NewSQLLookupCache(db *sql.DB) *SQLLookupCache {
	return &SQLLookupCache{DB: db}
}

// InitSchema creates the cache table when it does not exist yet.
func (s *SQLLookupCache) InitSchema(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("lookup cache: db is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS lookup_cache (
		cache_key  TEXT PRIMARY KEY,
		payload    BYTEA NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL
	);
	`

	if _, err := s.DB.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("lookup cache: create lookup_cache table: %w", err)
	}
	return nil
}

func (s *SQLLookupCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.DB == nil {
		return nil, false, errors.New("lookup cache: db is nil")
	}

	q := `
	SELECT payload
	FROM lookup_cache
	WHERE cache_key = $1 AND expires_at > NOW();
	`

	var payload []byte
	err := s.DB.QueryRowContext(ctx, q, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("lookup cache: query %q: %w", key, err)
	}
	return payload, true, nil
}

func (s *SQLLookupCache) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if s.DB == nil {
		return errors.New("lookup cache: db is nil")
	}

	q := `
	INSERT INTO lookup_cache (cache_key, payload, expires_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (cache_key) DO UPDATE
	SET payload = EXCLUDED.payload,
		expires_at = EXCLUDED.expires_at;
	`

	if _, err := s.DB.ExecContext(ctx, q, key, value, time.Now().Add(ttl)); err != nil {
		return fmt.Errorf("lookup cache: upsert %q: %w", key, err)
	}
	return nil
}

// Sweep deletes expired rows and reports how many were dropped.
func (s *SQLLookupCache) Sweep(ctx context.Context) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("lookup cache: db is nil")
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM lookup_cache WHERE expires_at <= NOW();`)
	if err != nil {
		return 0, fmt.Errorf("lookup cache: sweep: %w", err)
	}

	dropped, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("lookup cache: sweep rows affected: %w", err)
	}
	return dropped, nil
}
