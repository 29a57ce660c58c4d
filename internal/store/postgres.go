package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// PoolOption configures the connection pool.
type PoolOption func(*pgxpool.Config)

// WithPoolSize sets the maximum number of pooled connections.
func WithPoolSize(n int) PoolOption {
	return func(c *pgxpool.Config) {
		if n > 0 {
			c.MaxConns = int32(n) //nolint:gosec // bounded by config validation
		}
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string, opts ...PoolOption) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// ListCars returns the listings matching q in q's order.
func (s *PostgresStore) ListCars(ctx context.Context, q *CarQuery) ([]domain.Listing, error) {
	dataSQL, _, args := q.ToSQL()

	rows, err := s.pool.Query(ctx, dataSQL, args)
	if err != nil {
		return nil, fmt.Errorf("querying cars: %w", err)
	}

	cars, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Listing])
	if err != nil {
		return nil, fmt.Errorf("scanning cars: %w", err)
	}

	return cars, nil
}

// CountCars returns the number of listings matching q, ignoring pagination.
func (s *PostgresStore) CountCars(ctx context.Context, q *CarQuery) (int, error) {
	_, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args).Scan(&total); err != nil {
		return 0, fmt.Errorf("counting cars: %w", err)
	}

	return total, nil
}

// GetCacheEntry returns the JSON document stored under key, or ErrNotFound.
func (s *PostgresStore) GetCacheEntry(ctx context.Context, key string) (json.RawMessage, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, queryGetCacheEntry, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("cache entry %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting cache entry %q: %w", key, err)
	}

	return json.RawMessage(data), nil
}

// PutCacheEntry upserts the JSON document stored under key.
func (s *PostgresStore) PutCacheEntry(ctx context.Context, key string, data json.RawMessage) error {
	args := pgx.NamedArgs{
		"key":  key,
		"data": []byte(data),
	}

	if _, err := s.pool.Exec(ctx, queryPutCacheEntry, args); err != nil {
		return fmt.Errorf("putting cache entry %q: %w", key, err)
	}

	return nil
}
