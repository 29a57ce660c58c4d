package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFuel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   Fuel
		wantOK bool
	}{
		{in: "Hybrid", want: FuelHybrid, wantOK: true},
		{in: "PHEV", want: FuelPHEV, wantOK: true},
		{in: "Electric", want: FuelElectric, wantOK: true},
		{in: "Other", want: FuelOther, wantOK: true},
		{in: "hybrid", wantOK: false},
		{in: "Elhybrid", wantOK: false},
		{in: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseFuel(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDealRating_Rank(t *testing.T) {
	t.Parallel()

	assert.Less(t, DealGreat.Rank(), DealGood.Rank())
	assert.Less(t, DealGood.Rank(), DealNone.Rank())
	assert.Equal(t, DealNone.Rank(), DealRating("").Rank())
}

func TestListing_ListingURL(t *testing.T) {
	t.Parallel()

	stored := &Listing{ID: "123", URL: "https://example.com/car/123"}
	assert.Equal(t, "https://example.com/car/123", stored.ListingURL())

	fallback := &Listing{ID: "456"}
	assert.Equal(t, "https://www.blocket.se/mobility/item/456", fallback.ListingURL())
}

func TestRegressionModel_Quality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r2   float64
		want string
	}{
		{r2: 0.95, want: "excellent"},
		{r2: 0.9, want: "excellent"},
		{r2: 0.85, want: "good"},
		{r2: 0.8, want: "good"},
		{r2: 0.79, want: "moderate"},
		{r2: 0, want: "moderate"},
	}

	for _, tt := range tests {
		m := RegressionModel{R2: tt.r2}
		assert.Equal(t, tt.want, m.Quality(), "r2=%v", tt.r2)
	}
}

func TestDefaultModelMeta(t *testing.T) {
	t.Parallel()

	m := DefaultModelMeta("Kodiaq")
	assert.Equal(t, "Kodiaq", m.Label)
	assert.Equal(t, []string{"Petrol"}, m.FuelOptions)
	assert.NotEmpty(t, m.Color)
}

func TestModelSummary_YearSpan(t *testing.T) {
	t.Parallel()

	s := ModelSummary{YearRange: [2]int{2015, 2023}}
	assert.Equal(t, "2015–2023", s.YearSpan())
}
