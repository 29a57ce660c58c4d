package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/hela-notan/internal/store"
	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

// CacheHandler serves the precomputed web_cache documents.
type CacheHandler struct {
	store store.Store
}

// NewCacheHandler creates a new CacheHandler.
func NewCacheHandler(s store.Store) *CacheHandler {
	return &CacheHandler{store: s}
}

// --- Input/Output types ---

// GetAggregatesOutput is the raw aggregates document.
type GetAggregatesOutput struct {
	Body json.RawMessage
}

// GetSummaryOutput is the per-model listing summary.
type GetSummaryOutput struct {
	Body map[string]domain.ModelSummary
}

// --- Handlers ---

// GetAggregates returns the aggregates cache row unchanged.
func (h *CacheHandler) GetAggregates(ctx context.Context, _ *struct{}) (*GetAggregatesOutput, error) {
	raw, err := h.entry(ctx, store.KeyAggregates)
	if err != nil {
		return nil, err
	}
	return &GetAggregatesOutput{Body: raw}, nil
}

// GetSummary returns the summary written by the scheduled refresh.
func (h *CacheHandler) GetSummary(ctx context.Context, _ *struct{}) (*GetSummaryOutput, error) {
	raw, err := h.entry(ctx, store.KeySummary)
	if err != nil {
		return nil, err
	}

	var summary map[string]domain.ModelSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, huma.Error500InternalServerError("decoding summary: " + err.Error())
	}
	return &GetSummaryOutput{Body: summary}, nil
}

func (h *CacheHandler) entry(ctx context.Context, key string) (json.RawMessage, error) {
	raw, err := h.store.GetCacheEntry(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound(key + " not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("reading " + key + ": " + err.Error())
	}
	return raw, nil
}

// RegisterCacheRoutes registers cache document endpoints with the Huma API.
func RegisterCacheRoutes(api huma.API, h *CacheHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-aggregates",
		Method:      http.MethodGet,
		Path:        "/api/v1/aggregates",
		Summary:     "Get aggregates",
		Description: "Returns the precomputed aggregates document: regression models, " +
			"prediction curves and model configuration.",
		Tags:   []string{"cache"},
		Errors: []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetAggregates)

	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/api/v1/summary",
		Summary:     "Get listing summary",
		Description: "Returns per-model listing counts, price and mileage averages and year ranges.",
		Tags:        []string{"cache"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetSummary)
}
