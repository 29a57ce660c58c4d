package store

import (
	"context"
	"encoding/json"
	"fmt"

	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

// AggregatesSource decodes the aggregates cache row for the model store.
type AggregatesSource struct {
	store Store
}

// NewAggregatesSource creates an AggregatesSource reading from s.
func NewAggregatesSource(s Store) *AggregatesSource {
	return &AggregatesSource{store: s}
}

// FetchAggregates reads and decodes the aggregates document.
func (a *AggregatesSource) FetchAggregates(ctx context.Context) (*domain.Aggregates, error) {
	raw, err := a.store.GetCacheEntry(ctx, KeyAggregates)
	if err != nil {
		return nil, err
	}

	agg := &domain.Aggregates{}
	if err := json.Unmarshal(raw, agg); err != nil {
		return nil, fmt.Errorf("decoding aggregates: %w", err)
	}

	return agg, nil
}
