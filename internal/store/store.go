// Package store defines the datastore abstraction for hela-notan.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"encoding/json"
	"errors"

	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// web_cache keys.
const (
	KeyAggregates = "aggregates"
	KeySummary    = "summary"
)

// Sort keys accepted by CarQuery.
const (
	SortPrice      = "price"
	SortYear       = "year"
	SortMileage    = "mileage"
	SortHorsepower = "horsepower"
)

// CarQuery defines optional filters for cars_enriched queries. The static
// sanity predicates always apply.
type CarQuery struct {
	ModelKeys []string
	Fuel      string // normalized fuel category, empty for all
	SortBy    string // "price", "year", "mileage", "horsepower"
	Desc      bool
	Limit     int // default 30
	Offset    int
	All       bool // ignore Limit and Offset
}

// Store defines all data access operations for hela-notan.
type Store interface {
	// Cars
	ListCars(ctx context.Context, q *CarQuery) ([]domain.Listing, error)
	CountCars(ctx context.Context, q *CarQuery) (int, error)

	// Web cache
	GetCacheEntry(ctx context.Context, key string) (json.RawMessage, error)
	PutCacheEntry(ctx context.Context, key string, data json.RawMessage) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
