package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/hela-notan/internal/api/handlers"
	"github.com/donaldgifford/hela-notan/internal/ranking"
	"github.com/donaldgifford/hela-notan/internal/store"
	storeMocks "github.com/donaldgifford/hela-notan/internal/store/mocks"
	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

func carsFixture() []domain.Listing {
	return []domain.Listing{
		{ID: "a", ModelKey: "RAV4", AgeYears: 5, PriceSEK: 280000, ModelYear: 2020, FuelType: "Elhybrid"},
		{ID: "b", ModelKey: "RAV4", AgeYears: 5, PriceSEK: 292000, ModelYear: 2020, FuelType: "Elhybrid"},
		{ID: "c", ModelKey: "RAV4", AgeYears: 5, PriceSEK: 300000, ModelYear: 2020, FuelType: "Bensin"},
		{ID: "d", ModelKey: "XC60", AgeYears: 5, PriceSEK: 250000, ModelYear: 2020, FuelType: "Diesel"},
	}
}

func TestCarsHandler_ListCars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
		check      func(t *testing.T, page *ranking.Page)
	}{
		{
			name: "direct query pushes sort and paging down",
			path: "/api/v1/cars?models=RAV4,%20XC60&sort=year&order=asc&page=2&limit=2",
			setupMock: func(m *storeMocks.MockStore) {
				want := &store.CarQuery{
					ModelKeys: []string{"RAV4", "XC60"},
					SortBy:    store.SortYear,
					Limit:     2,
					Offset:    2,
				}
				m.EXPECT().ListCars(mock.Anything, want).Return(carsFixture()[2:], nil).Once()
				m.EXPECT().CountCars(mock.Anything, want).Return(4, nil).Once()
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, page *ranking.Page) {
				t.Helper()
				assert.Equal(t, 4, page.Total)
				assert.Equal(t, 2, page.Page)
				assert.Equal(t, 2, page.PageCount)
				assert.Equal(t, 2, page.PageSize)
				require.Len(t, page.Items, 2)
				assert.Equal(t, domain.DealNone, page.Items[0].Deal)
				assert.Equal(t, "https://www.blocket.se/mobility/item/c", page.Items[0].URL)
				assert.Equal(t, domain.FuelPetrol, page.Items[0].Fuel)
				// No XC60 model, so no prediction.
				assert.Nil(t, page.Items[1].Predicted)
			},
		},
		{
			name: "defaults to price desc page 1 of 30",
			path: "/api/v1/cars",
			setupMock: func(m *storeMocks.MockStore) {
				want := &store.CarQuery{SortBy: store.SortPrice, Desc: true, Limit: 30}
				m.EXPECT().ListCars(mock.Anything, want).Return(nil, nil).Once()
				m.EXPECT().CountCars(mock.Anything, want).Return(0, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"items":[]`,
		},
		{
			name: "deal filter scores every candidate",
			path: "/api/v1/cars?deal=any&fuel=Hybrid",
			setupMock: func(m *storeMocks.MockStore) {
				want := &store.CarQuery{Fuel: "Hybrid", SortBy: store.SortPrice, Desc: true, All: true}
				m.EXPECT().ListCars(mock.Anything, want).Return(carsFixture()[:2], nil).Once()
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, page *ranking.Page) {
				t.Helper()
				// Predicted 300000: a is 2σ under (great), b is 0.8σ under (good).
				assert.Equal(t, 2, page.Total)
				require.Len(t, page.Items, 2)
				assert.Equal(t, "b", page.Items[0].ID)
				assert.Equal(t, domain.DealGood, page.Items[0].Deal)
				assert.Equal(t, "a", page.Items[1].ID)
				assert.Equal(t, domain.DealGreat, page.Items[1].Deal)
				require.NotNil(t, page.Items[1].Predicted)
				assert.Equal(t, 300000, *page.Items[1].Predicted)
			},
		},
		{
			name: "deal sort puts great deals first",
			path: "/api/v1/cars?sort=deal",
			setupMock: func(m *storeMocks.MockStore) {
				want := &store.CarQuery{SortBy: store.SortPrice, All: true}
				m.EXPECT().ListCars(mock.Anything, want).Return(carsFixture(), nil).Once()
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, page *ranking.Page) {
				t.Helper()
				ids := make([]string, len(page.Items))
				for i := range page.Items {
					ids[i] = page.Items[i].ID
				}
				assert.Equal(t, []string{"a", "b", "c", "d"}, ids)
			},
		},
		{
			name:       "invalid sort rejected",
			path:       "/api/v1/cars?sort=color",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "invalid fuel rejected",
			path:       "/api/v1/cars?fuel=Steam",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "store error",
			path: "/api/v1/cars",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListCars(mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "listing cars",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			expectAggregates(t, ms, testAggregates())
			tt.setupMock(ms)

			eng := ranking.NewEngine(ms, newTestModels(ms))

			_, api := humatest.New(t)
			handlers.RegisterCarsRoutes(api, handlers.NewCarsHandler(eng))

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
			if tt.check != nil {
				var page ranking.Page
				require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &page))
				tt.check(t, &page)
			}
		})
	}
}
