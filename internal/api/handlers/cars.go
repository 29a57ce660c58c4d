package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/hela-notan/internal/ranking"
	"github.com/donaldgifford/hela-notan/pkg/deal"
	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

// CarsHandler handles listing queries.
type CarsHandler struct {
	engine *ranking.Engine
}

// NewCarsHandler creates a new CarsHandler.
func NewCarsHandler(eng *ranking.Engine) *CarsHandler {
	return &CarsHandler{engine: eng}
}

// --- Input/Output types ---

// ListCarsInput is the input for listing cars.
type ListCarsInput struct {
	Models string `query:"models" doc:"Comma-separated model keys"`
	Fuel   string `query:"fuel"   doc:"Normalized fuel category"          enum:"Hybrid,PHEV,Diesel,Petrol,Electric,Other,"`
	Deal   string `query:"deal"   doc:"Deal rating filter"                enum:"good,great,any,"`
	Sort   string `query:"sort"   doc:"Sort key (default price)"          enum:"price,year,mileage,horsepower,deal,"`
	Order  string `query:"order"  doc:"Sort direction (default desc)"     enum:"asc,desc,"`
	Page   int    `query:"page"   doc:"1-based page number"`
	Limit  int    `query:"limit"  doc:"Page size (default 30, max 100)"`
}

// ListCarsOutput is the response for listing cars.
type ListCarsOutput struct {
	Body *ranking.Page
}

// --- Handlers ---

// ListCars returns one page of ranked listings.
func (h *CarsHandler) ListCars(ctx context.Context, input *ListCarsInput) (*ListCarsOutput, error) {
	q, err := input.query()
	if err != nil {
		return nil, err
	}

	page, err := h.engine.Run(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing cars: " + err.Error())
	}

	return &ListCarsOutput{Body: page}, nil
}

func (in *ListCarsInput) query() (ranking.Query, error) {
	sortKey, ok := ranking.ParseSortKey(in.Sort)
	if !ok {
		return ranking.Query{}, huma.Error422UnprocessableEntity("unknown sort key " + in.Sort)
	}
	dealFilter, ok := deal.ParseFilter(in.Deal)
	if !ok {
		return ranking.Query{}, huma.Error422UnprocessableEntity("unknown deal filter " + in.Deal)
	}

	q := ranking.Query{
		Deal:     dealFilter,
		Sort:     sortKey,
		Desc:     in.Order != "asc",
		Page:     in.Page,
		PageSize: in.Limit,
	}
	if in.Fuel != "" {
		fuel, ok := domain.ParseFuel(in.Fuel)
		if !ok {
			return ranking.Query{}, huma.Error422UnprocessableEntity("unknown fuel " + in.Fuel)
		}
		q.Fuel = fuel
	}
	for _, key := range strings.Split(in.Models, ",") {
		if key = strings.TrimSpace(key); key != "" {
			q.ModelKeys = append(q.ModelKeys, key)
		}
	}

	return q, nil
}

// RegisterCarsRoutes registers listing endpoints with the Huma API.
func RegisterCarsRoutes(api huma.API, h *CarsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-cars",
		Method:      http.MethodGet,
		Path:        "/api/v1/cars",
		Summary:     "List cars",
		Description: "Returns plausible listings filtered by model and fuel, optionally restricted " +
			"to good or great deals, sorted and paginated.",
		Tags:   []string{"cars"},
		Errors: []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.ListCars)
}
