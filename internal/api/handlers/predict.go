package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/hela-notan/pkg/deal"
	"github.com/donaldgifford/hela-notan/pkg/normalize"
	"github.com/donaldgifford/hela-notan/pkg/predict"
	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

// PredictHandler prices arbitrary listing attributes.
type PredictHandler struct {
	models ModelSource
}

// NewPredictHandler creates a new PredictHandler.
func NewPredictHandler(models ModelSource) *PredictHandler {
	return &PredictHandler{models: models}
}

// --- Input/Output types ---

// PredictRequest carries listing attributes. Raw text fields are normalized
// the same way stored listings are.
type PredictRequest struct {
	ModelKey         string   `json:"model_key"                   doc:"Model key"                      example:"RAV4"`
	AgeYears         float64  `json:"age_years"                   doc:"Car age in years"               minimum:"0"`
	MileageMil       int      `json:"mileage_mil"                 doc:"Odometer (mil)"                 minimum:"0"`
	FuelType         string   `json:"fuel_type,omitempty"         doc:"Raw fuel text, e.g. Elhybrid"`
	Horsepower       int      `json:"horsepower,omitempty"        doc:"Imputed from the model if omitted"`
	EquipmentCount   int      `json:"equipment_count,omitempty"   doc:"Imputed from the model if omitted"`
	Drivetrain       string   `json:"drivetrain,omitempty"        doc:"Raw drivetrain text"`
	SellerType       string   `json:"seller_type,omitempty"       doc:"dealer or private"`
	Generation       string   `json:"generation,omitempty"`
	WLTPRangeKM      float64  `json:"wltp_range_km,omitempty"`
	NotableEquipment []string `json:"notable_equipment,omitempty"`
	PriceSEK         *int     `json:"price_sek,omitempty"         doc:"Asking price; enables the deal rating" minimum:"1"`
}

func (r *PredictRequest) listing() *domain.Listing {
	l := &domain.Listing{
		ModelKey:         r.ModelKey,
		AgeYears:         r.AgeYears,
		MileageMil:       r.MileageMil,
		FuelType:         r.FuelType,
		Horsepower:       r.Horsepower,
		EquipmentCount:   r.EquipmentCount,
		Drivetrain:       r.Drivetrain,
		SellerType:       r.SellerType,
		Generation:       r.Generation,
		WLTPRangeKM:      r.WLTPRangeKM,
		NotableEquipment: r.NotableEquipment,
	}
	if r.PriceSEK != nil {
		l.PriceSEK = *r.PriceSEK
	}
	return l
}

// PredictResponse is the predicted price with its 95% interval.
type PredictResponse struct {
	ModelKey  string       `json:"model_key"`
	Fuel      domain.Fuel  `json:"fuel"`
	Predicted int          `json:"predicted_price"`
	Lower     int          `json:"lower"`
	Upper     int          `json:"upper"`
	Deal      *deal.Result `json:"deal,omitempty"`
}

// PredictPriceInput is the input for a price prediction.
type PredictPriceInput struct {
	Body PredictRequest
}

// PredictPriceOutput is the response for a price prediction.
type PredictPriceOutput struct {
	Body PredictResponse
}

// --- Handlers ---

// Predict evaluates the model for the request's attributes.
func (h *PredictHandler) Predict(ctx context.Context, input *PredictPriceInput) (*PredictPriceOutput, error) {
	req := &input.Body
	if req.ModelKey == "" {
		return nil, huma.Error422UnprocessableEntity("model_key is required")
	}

	m, ok := h.models.Snapshot(ctx).Model(req.ModelKey)
	if !ok {
		return nil, huma.Error404NotFound("no regression model for " + req.ModelKey)
	}

	l := req.listing()
	v := m.Features(predict.InputsFromListing(l))
	lower, upper := m.Interval(v)

	resp := PredictResponse{
		ModelKey:  req.ModelKey,
		Fuel:      normalize.Fuel(req.FuelType),
		Predicted: m.Predict(v),
		Lower:     lower,
		Upper:     upper,
	}
	if req.PriceSEK != nil {
		d := deal.Classify(*req.PriceSEK, resp.Predicted, m.ResidualSE, m.LogTransform)
		resp.Deal = &d
	}

	return &PredictPriceOutput{Body: resp}, nil
}

// RegisterPredictRoutes registers prediction endpoints with the Huma API.
func RegisterPredictRoutes(api huma.API, h *PredictHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "predict-price",
		Method:      http.MethodPost,
		Path:        "/api/v1/predict",
		Summary:     "Predict a market price",
		Description: "Evaluates the model's regression for the given attributes and, " +
			"when a price is supplied, rates it as a deal.",
		Tags:   []string{"models"},
		Errors: []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.Predict)
}
