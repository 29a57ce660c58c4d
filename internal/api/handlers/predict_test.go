package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/hela-notan/internal/api/handlers"
	storeMocks "github.com/donaldgifford/hela-notan/internal/store/mocks"
	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

func TestPredictHandler_Predict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
		wantBody   string
		check      func(t *testing.T, res *handlers.PredictResponse)
	}{
		{
			name: "prediction with interval",
			body: map[string]any{
				"model_key":   "RAV4",
				"age_years":   5,
				"mileage_mil": 9000,
				"fuel_type":   "El/Bensin hybrid",
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, res *handlers.PredictResponse) {
				t.Helper()
				assert.Equal(t, 300000, res.Predicted)
				assert.Equal(t, 280400, res.Lower)
				assert.Equal(t, 319600, res.Upper)
				assert.Equal(t, domain.FuelHybrid, res.Fuel)
				assert.Nil(t, res.Deal)
			},
		},
		{
			name: "price enables the deal rating",
			body: map[string]any{
				"model_key": "RAV4",
				"age_years": 5,
				"price_sek": 280000,
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, res *handlers.PredictResponse) {
				t.Helper()
				require.NotNil(t, res.Deal)
				assert.Equal(t, domain.DealGreat, res.Deal.Rating)
				require.NotNil(t, res.Deal.Residual)
				assert.InDelta(t, -20000, *res.Deal.Residual, 1e-9)
			},
		},
		{
			name: "zero price is rejected",
			body: map[string]any{
				"model_key": "RAV4",
				"age_years": 5,
				"price_sek": 0,
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "one krona is accepted",
			body: map[string]any{
				"model_key": "RAV4",
				"age_years": 5,
				"price_sek": 1,
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, res *handlers.PredictResponse) {
				t.Helper()
				require.NotNil(t, res.Deal)
				assert.Equal(t, domain.DealGreat, res.Deal.Rating)
			},
		},
		{
			name:       "unknown model",
			body:       map[string]any{"model_key": "XC60", "age_years": 2},
			wantStatus: http.StatusNotFound,
			wantBody:   "no regression model for XC60",
		},
		{
			name:       "empty model key",
			body:       map[string]any{"model_key": "", "age_years": 2},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			expectAggregates(t, ms, testAggregates())

			_, api := humatest.New(t)
			handlers.RegisterPredictRoutes(api, handlers.NewPredictHandler(newTestModels(ms)))

			resp := api.Post("/api/v1/predict", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
			if tt.check != nil {
				var res handlers.PredictResponse
				require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &res))
				tt.check(t, &res)
			}
		})
	}
}
