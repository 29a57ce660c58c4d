package handlers

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/hela-notan/internal/modelstore"
	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

// intervalZ is the two-sided 95% normal quantile.
const intervalZ = 1.96

// ModelsHandler exposes regression model statistics.
type ModelsHandler struct {
	models ModelSource
}

// NewModelsHandler creates a new ModelsHandler.
func NewModelsHandler(models ModelSource) *ModelsHandler {
	return &ModelsHandler{models: models}
}

// --- Input/Output types ---

// ModelInfo describes one compiled regression model.
type ModelInfo struct {
	Key          string   `json:"key"`
	Label        string   `json:"label"`
	Color        string   `json:"color"`
	FuelOptions  []string `json:"fuelOptions"`
	R2           float64  `json:"r2"`
	RMSE         float64  `json:"rmse"`
	ResidualSE   float64  `json:"residual_se"`
	NSamples     int      `json:"n_samples"`
	Quality      string   `json:"quality"          enum:"excellent,good,moderate"`
	LogTransform bool     `json:"log_transform"`
	Interval     float64  `json:"interval_95"      doc:"Half-width of the 95% prediction interval, in SEK or log units"`
	Features     []string `json:"features,omitempty"`
}

// ListModelsOutput is the response for listing models.
type ListModelsOutput struct {
	Body struct {
		Models    []ModelInfo `json:"models"`
		FetchedAt *time.Time  `json:"fetchedAt,omitempty"`
	}
}

// GetModelInput is the input for getting one model.
type GetModelInput struct {
	Key string `path:"key" doc:"Model key"`
}

// GetModelOutput is the response for getting one model.
type GetModelOutput struct {
	Body struct {
		ModelInfo
		Curves map[string][]domain.CurvePoint `json:"curves,omitempty"`
	}
}

// --- Handlers ---

// ListModels returns every compiled model in key order.
func (h *ModelsHandler) ListModels(ctx context.Context, _ *struct{}) (*ListModelsOutput, error) {
	snap := h.models.Snapshot(ctx)

	resp := &ListModelsOutput{}
	resp.Body.Models = make([]ModelInfo, 0, snap.Len())
	for _, key := range snap.Keys() {
		resp.Body.Models = append(resp.Body.Models, modelInfo(snap, key))
	}
	if !snap.FetchedAt.IsZero() {
		at := snap.FetchedAt.UTC()
		resp.Body.FetchedAt = &at
	}

	return resp, nil
}

// GetModel returns one model with its depreciation curves.
func (h *ModelsHandler) GetModel(ctx context.Context, input *GetModelInput) (*GetModelOutput, error) {
	snap := h.models.Snapshot(ctx)
	if _, ok := snap.Model(input.Key); !ok {
		return nil, huma.Error404NotFound("model not found")
	}

	resp := &GetModelOutput{}
	resp.Body.ModelInfo = modelInfo(snap, input.Key)
	resp.Body.Curves = snap.Curves(input.Key)

	return resp, nil
}

func modelInfo(snap *modelstore.Snapshot, key string) ModelInfo {
	raw, _ := snap.Raw(key)
	meta := snap.ModelConfig(key)
	return ModelInfo{
		Key:          key,
		Label:        meta.Label,
		Color:        meta.Color,
		FuelOptions:  meta.FuelOptions,
		R2:           raw.R2,
		RMSE:         raw.RMSE,
		ResidualSE:   raw.ResidualSE,
		NSamples:     raw.NSamples,
		Quality:      raw.Quality(),
		LogTransform: raw.LogTransform,
		Interval:     math.Round(intervalZ*raw.ResidualSE*1000) / 1000,
		Features:     raw.Features,
	}
}

// RegisterModelRoutes registers model endpoints with the Huma API.
func RegisterModelRoutes(api huma.API, h *ModelsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-models",
		Method:      http.MethodGet,
		Path:        "/api/v1/models",
		Summary:     "List regression models",
		Description: "Returns fit statistics, quality tier and presentation metadata for every model.",
		Tags:        []string{"models"},
	}, h.ListModels)

	huma.Register(api, huma.Operation{
		OperationID: "get-model",
		Method:      http.MethodGet,
		Path:        "/api/v1/models/{key}",
		Summary:     "Get a regression model",
		Description: "Returns one model's statistics and its depreciation curves by fuel.",
		Tags:        []string{"models"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetModel)
}
