package client

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/donaldgifford/hela-notan/internal/api/handlers"
	"github.com/donaldgifford/hela-notan/pkg/tco"
	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

// ModelDetail is one model with its depreciation curves.
type ModelDetail struct {
	handlers.ModelInfo
	Curves map[string][]domain.CurvePoint `json:"curves,omitempty"`
}

// ListModels returns statistics for every regression model.
func (c *Client) ListModels(ctx context.Context) ([]handlers.ModelInfo, error) {
	var resp struct {
		Models []handlers.ModelInfo `json:"models"`
	}
	if err := c.get(ctx, "/api/v1/models", &resp); err != nil {
		return nil, err
	}
	return resp.Models, nil
}

// GetModel returns one model by key.
func (c *Client) GetModel(ctx context.Context, key string) (*ModelDetail, error) {
	var m ModelDetail
	if err := c.get(ctx, "/api/v1/models/"+url.PathEscape(key), &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Predict prices the given attributes.
func (c *Client) Predict(ctx context.Context, req *handlers.PredictRequest) (*handlers.PredictResponse, error) {
	var resp handlers.PredictResponse
	if err := c.post(ctx, "/api/v1/predict", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ComputeTCO prices an ownership scenario.
func (c *Client) ComputeTCO(ctx context.Context, req *handlers.TCORequest) (*tco.Result, error) {
	var res tco.Result
	if err := c.post(ctx, "/api/v1/tco", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DefaultScenario returns the server's default ownership scenario.
func (c *Client) DefaultScenario(ctx context.Context) (*tco.Scenario, error) {
	var s tco.Scenario
	if err := c.get(ctx, "/api/v1/tco/default", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Summary returns per-model listing statistics.
func (c *Client) Summary(ctx context.Context) (map[string]domain.ModelSummary, error) {
	var s map[string]domain.ModelSummary
	if err := c.get(ctx, "/api/v1/summary", &s); err != nil {
		return nil, err
	}
	return s, nil
}

// Aggregates returns the raw aggregates document.
func (c *Client) Aggregates(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/api/v1/aggregates", &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// RefreshSummary triggers the summary job and returns its status.
func (c *Client) RefreshSummary(ctx context.Context) (string, error) {
	return c.trigger(ctx, "/api/v1/summary/refresh")
}

// RefreshModels triggers a regression snapshot refetch.
func (c *Client) RefreshModels(ctx context.Context) (string, error) {
	return c.trigger(ctx, "/api/v1/models/refresh")
}

func (c *Client) trigger(ctx context.Context, path string) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.post(ctx, path, nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}
