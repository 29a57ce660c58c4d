package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/hela-notan/internal/metrics"
	"github.com/donaldgifford/hela-notan/pkg/tco"
	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

// TCOHandler computes ownership-cost scenarios.
type TCOHandler struct {
	models  ModelSource
	calc    *tco.Calculator
	nowFunc func() time.Time
}

// TCOOption configures the TCOHandler.
type TCOOption func(*TCOHandler)

// WithTCONowFunc overrides the clock used to turn model years into ages.
func WithTCONowFunc(f func() time.Time) TCOOption {
	return func(h *TCOHandler) {
		h.nowFunc = f
	}
}

// NewTCOHandler creates a new TCOHandler.
func NewTCOHandler(models ModelSource, calc *tco.Calculator, opts ...TCOOption) *TCOHandler {
	h := &TCOHandler{
		models:  models,
		calc:    calc,
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// --- Input/Output types ---

// TCORequest is a scenario. Omitted fields take the default scenario's
// values; at most one of buy_age_years and model_year fixes the buy age.
type TCORequest struct {
	ModelKey       string `json:"model_key"                 doc:"Model key"                  example:"RAV4"`
	Fuel           string `json:"fuel,omitempty"            doc:"Fuel category"              enum:"Hybrid,PHEV,Diesel,Petrol,Electric,Other"`
	BuyAgeYears    *int   `json:"buy_age_years,omitempty"   doc:"Age at purchase"            minimum:"0" maximum:"100"`
	ModelYear      *int   `json:"model_year,omitempty"      doc:"Model year at purchase"     minimum:"1900"`
	HoldingYears   *int   `json:"holding_years,omitempty"   doc:"Years of ownership"         minimum:"0" maximum:"50"`
	CurrentMileage *int   `json:"current_mileage,omitempty" doc:"Odometer at purchase (mil)" minimum:"0" maximum:"100000"`
	AnnualMileage  *int   `json:"annual_mileage,omitempty"  doc:"Distance per year (mil)"    minimum:"0" maximum:"20000"`
}

// ComputeTCOInput is the input for computing a scenario.
type ComputeTCOInput struct {
	Body TCORequest
}

// ComputeTCOOutput is the response for computing a scenario.
type ComputeTCOOutput struct {
	Body tco.Result
}

// DefaultTCOOutput is the response for the default scenario.
type DefaultTCOOutput struct {
	Body tco.Scenario
}

// --- Handlers ---

// Compute prices the scenario against the current regression snapshot.
func (h *TCOHandler) Compute(ctx context.Context, input *ComputeTCOInput) (*ComputeTCOOutput, error) {
	snap := h.models.Snapshot(ctx)

	s, err := h.scenario(&input.Body, snap.ModelConfig(input.Body.ModelKey))
	if err != nil {
		return nil, err
	}

	m, _ := snap.Model(s.ModelKey)
	curve, _ := snap.Curve(s.ModelKey, s.Fuel)

	res := h.calc.Compute(s, m, curve)
	metrics.TCOComputationsTotal.WithLabelValues(string(res.PriceSource)).Inc()

	return &ComputeTCOOutput{Body: res}, nil
}

// Default returns the scenario the calculator opens with.
func (h *TCOHandler) Default(_ context.Context, _ *struct{}) (*DefaultTCOOutput, error) {
	return &DefaultTCOOutput{Body: tco.DefaultScenario(h.nowFunc())}, nil
}

func (h *TCOHandler) scenario(req *TCORequest, meta domain.ModelMeta) (tco.Scenario, error) {
	if req.ModelKey == "" {
		return tco.Scenario{}, huma.Error422UnprocessableEntity("model_key is required")
	}

	now := h.nowFunc()
	s := tco.DefaultScenario(now)
	s.ModelKey = req.ModelKey

	switch {
	case req.BuyAgeYears != nil && req.ModelYear != nil:
		return tco.Scenario{}, huma.Error422UnprocessableEntity("set either buy_age_years or model_year, not both")
	case req.BuyAgeYears != nil:
		s.BuyAgeYears = *req.BuyAgeYears
	case req.ModelYear != nil:
		s.BuyAgeYears = tco.AgeFromModelYear(*req.ModelYear, now)
	}

	s.Fuel = defaultFuel(meta)
	if req.Fuel != "" {
		fuel, ok := domain.ParseFuel(req.Fuel)
		if !ok {
			return tco.Scenario{}, huma.Error422UnprocessableEntity("unknown fuel " + req.Fuel)
		}
		s.Fuel = fuel
	}

	if req.HoldingYears != nil {
		s.HoldingYears = *req.HoldingYears
	}
	if req.CurrentMileage != nil {
		s.CurrentMileage = *req.CurrentMileage
	}
	if req.AnnualMileage != nil {
		s.AnnualMileage = *req.AnnualMileage
	}

	return s, nil
}

// defaultFuel is the model's first configured fuel option.
func defaultFuel(meta domain.ModelMeta) domain.Fuel {
	for _, opt := range meta.FuelOptions {
		if f, ok := domain.ParseFuel(opt); ok {
			return f
		}
	}
	return domain.FuelPetrol
}

// RegisterTCORoutes registers ownership-cost endpoints with the Huma API.
func RegisterTCORoutes(api huma.API, h *TCOHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "compute-tco",
		Method:      http.MethodPost,
		Path:        "/api/v1/tco",
		Summary:     "Compute total cost of ownership",
		Description: "Prices a buy-hold-sell scenario from the depreciation curve or regression " +
			"and adds service, repair, insurance, tax and energy costs.",
		Tags:   []string{"tco"},
		Errors: []int{http.StatusUnprocessableEntity},
	}, h.Compute)

	huma.Register(api, huma.Operation{
		OperationID: "default-tco-scenario",
		Method:      http.MethodGet,
		Path:        "/api/v1/tco/default",
		Summary:     "Default scenario",
		Description: "Returns the scenario the calculator starts from.",
		Tags:        []string{"tco"},
	}, h.Default)
}
