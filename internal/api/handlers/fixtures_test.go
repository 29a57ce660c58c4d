package handlers_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/hela-notan/internal/modelstore"
	"github.com/donaldgifford/hela-notan/internal/store"
	storeMocks "github.com/donaldgifford/hela-notan/internal/store/mocks"
	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

// testAggregates has one linear RAV4 model: 400000 SEK new, minus 20000 per
// year of age, with a residual standard error of 10000.
func testAggregates() *domain.Aggregates {
	return &domain.Aggregates{
		Regression: map[string]domain.RegressionModel{
			"RAV4": {
				Intercept:            400000,
				Coefficients:         map[string]float64{"car_age_years": -20000},
				ResidualSE:           10000,
				R2:                   0.92,
				RMSE:                 10500,
				NSamples:             120,
				Features:             []string{"car_age_years"},
				MedianHorsepower:     218,
				MedianEquipmentCount: 20,
			},
		},
		PredictionCurves: map[string]map[string][]domain.CurvePoint{
			"RAV4": {
				"Hybrid": {
					{Age: 0, Predicted: 400000, Lower: 380000, Upper: 420000, Mileage: 0},
					{Age: 10, Predicted: 200000, Lower: 180000, Upper: 220000, Mileage: 15000},
				},
			},
		},
		ModelConfig: map[string]domain.ModelMeta{
			"RAV4": {Label: "Toyota RAV4", Color: "#dc2626", FuelOptions: []string{"Hybrid", "Petrol"}},
		},
	}
}

// expectAggregates lets the mock serve agg for any number of snapshot
// fetches.
func expectAggregates(t *testing.T, ms *storeMocks.MockStore, agg *domain.Aggregates) {
	t.Helper()

	raw, err := json.Marshal(agg)
	require.NoError(t, err)
	ms.EXPECT().
		GetCacheEntry(mock.Anything, store.KeyAggregates).
		Return(raw, nil).
		Maybe()
}

func newTestModels(ms *storeMocks.MockStore) *modelstore.Cache {
	return modelstore.New(store.NewAggregatesSource(ms))
}
