package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Refresher runs the jobs the scheduler otherwise runs on a timer.
type Refresher interface {
	RunSummaryRefresh(ctx context.Context) error
	RunModelWarmup(ctx context.Context) error
}

// TriggerHandler handles manual job trigger requests.
type TriggerHandler struct {
	refresher Refresher
}

// NewTriggerHandler creates a new TriggerHandler.
func NewTriggerHandler(r Refresher) *TriggerHandler {
	return &TriggerHandler{refresher: r}
}

// TriggerOutput is the response body for trigger endpoints.
type TriggerOutput struct {
	Body struct {
		Status string `json:"status" example:"summary refresh completed" doc:"Job status"`
	}
}

// RefreshSummary recomputes the per-model listing summary.
func (h *TriggerHandler) RefreshSummary(ctx context.Context, _ *struct{}) (*TriggerOutput, error) {
	if err := h.refresher.RunSummaryRefresh(ctx); err != nil {
		return nil, huma.Error500InternalServerError("summary refresh failed: " + err.Error())
	}

	resp := &TriggerOutput{}
	resp.Body.Status = "summary refresh completed"
	return resp, nil
}

// RefreshModels refetches the regression snapshot.
func (h *TriggerHandler) RefreshModels(ctx context.Context, _ *struct{}) (*TriggerOutput, error) {
	if err := h.refresher.RunModelWarmup(ctx); err != nil {
		return nil, huma.Error500InternalServerError("model refresh failed: " + err.Error())
	}

	resp := &TriggerOutput{}
	resp.Body.Status = "model refresh completed"
	return resp, nil
}

// RegisterTriggerRoutes registers trigger endpoints with the Huma API.
func RegisterTriggerRoutes(api huma.API, h *TriggerHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "refresh-summary",
		Method:      http.MethodPost,
		Path:        "/api/v1/summary/refresh",
		Summary:     "Refresh listing summary",
		Description: "Recomputes per-model listing statistics and stores them in the summary cache row.",
		Tags:        []string{"jobs"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.RefreshSummary)

	huma.Register(api, huma.Operation{
		OperationID: "refresh-models",
		Method:      http.MethodPost,
		Path:        "/api/v1/models/refresh",
		Summary:     "Refresh regression models",
		Description: "Refetches the aggregates cache row and recompiles every regression model.",
		Tags:        []string{"jobs"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.RefreshModels)
}
