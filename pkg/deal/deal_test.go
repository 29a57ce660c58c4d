package deal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/hela-notan/pkg/deal"
	"github.com/donaldgifford/hela-notan/pkg/predict"
	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

func TestClassify_Linear(t *testing.T) {
	t.Parallel()

	const predicted = 300000

	tests := []struct {
		name  string
		below int
		want  domain.DealRating
		wantZ float64
	}{
		{name: "15000 below is great", below: 15000, want: domain.DealGreat, wantZ: -1.5},
		{name: "20000 below is great", below: 20000, want: domain.DealGreat, wantZ: -2.0},
		{name: "8000 below is good", below: 8000, want: domain.DealGood, wantZ: -0.8},
		{name: "7500 below is good", below: 7500, want: domain.DealGood, wantZ: -0.75},
		{name: "5000 below is none", below: 5000, want: domain.DealNone, wantZ: -0.5},
		{name: "above prediction is none", below: -30000, want: domain.DealNone, wantZ: 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := deal.Classify(predicted-tt.below, predicted, 10000, false)
			assert.Equal(t, tt.want, got.Rating)
			require.NotNil(t, got.Predicted)
			require.NotNil(t, got.Residual)
			require.NotNil(t, got.Score)
			assert.Equal(t, predicted, *got.Predicted)
			assert.InDelta(t, float64(-tt.below), *got.Residual, 1e-9)
			assert.InDelta(t, tt.wantZ, *got.Score, 1e-9)
		})
	}
}

func TestClassify_LinearZeroSigma(t *testing.T) {
	t.Parallel()

	got := deal.Classify(100000, 200000, 0, false)
	assert.Equal(t, domain.DealNone, got.Rating)
	require.NotNil(t, got.Residual)
	assert.InDelta(t, -100000, *got.Residual, 0)
	assert.Nil(t, got.Score)
}

func TestClassify_Log(t *testing.T) {
	t.Parallel()

	const sigma = 0.1
	const predicted = 300000

	priceAt := func(score float64) int {
		return int(math.Round(predicted * math.Exp(score*sigma)))
	}

	tests := []struct {
		name   string
		actual int
		want   domain.DealRating
	}{
		{name: "two sigma below", actual: priceAt(-2), want: domain.DealGreat},
		{name: "one sigma below", actual: priceAt(-1), want: domain.DealGood},
		{name: "half sigma below", actual: priceAt(-0.5), want: domain.DealNone},
		{name: "at prediction", actual: predicted, want: domain.DealNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := deal.Classify(tt.actual, predicted, sigma, true)
			assert.Equal(t, tt.want, got.Rating)
			require.NotNil(t, got.Predicted)
			assert.Equal(t, predicted, *got.Predicted)
		})
	}
}

func TestClassify_LogDegenerate(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ actual, predicted int }{
		{actual: 0, predicted: 100000},
		{actual: 100000, predicted: 0},
		{actual: -5, predicted: 100000},
	} {
		got := deal.Classify(tc.actual, tc.predicted, 0.1, true)
		assert.Equal(t, domain.DealNone, got.Rating)
		assert.Nil(t, got.Predicted)
		assert.Nil(t, got.Residual)
	}
}

func TestScore_NilModel(t *testing.T) {
	t.Parallel()

	got := deal.Score(&domain.Listing{PriceSEK: 200000}, nil)
	assert.Equal(t, domain.DealNone, got.Rating)
	assert.Nil(t, got.Predicted)
	assert.Nil(t, got.Residual)
}

func TestScore_UsesModelPrediction(t *testing.T) {
	t.Parallel()

	m, err := predict.Compile(domain.RegressionModel{
		Intercept:    300000,
		Coefficients: map[string]float64{"car_age_years": -10000},
		ResidualSE:   10000,
	})
	require.NoError(t, err)

	l := &domain.Listing{AgeYears: 2, PriceSEK: 265000}
	got := deal.Score(l, m)

	require.NotNil(t, got.Predicted)
	assert.Equal(t, 280000, *got.Predicted)
	assert.Equal(t, domain.DealGreat, got.Rating)
}

func TestFilter_Matches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filter deal.Filter
		rating domain.DealRating
		want   bool
	}{
		{filter: deal.FilterNone, rating: domain.DealNone, want: true},
		{filter: deal.FilterGood, rating: domain.DealGood, want: true},
		{filter: deal.FilterGood, rating: domain.DealGreat, want: false},
		{filter: deal.FilterGreat, rating: domain.DealGreat, want: true},
		{filter: deal.FilterGreat, rating: domain.DealGood, want: false},
		{filter: deal.FilterAny, rating: domain.DealGood, want: true},
		{filter: deal.FilterAny, rating: domain.DealGreat, want: true},
		{filter: deal.FilterAny, rating: domain.DealNone, want: false},
		{filter: deal.Filter("bogus"), rating: domain.DealGreat, want: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter)+"/"+string(tt.rating), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.filter.Matches(tt.rating))
		})
	}
}

func TestParseFilter(t *testing.T) {
	t.Parallel()

	f, ok := deal.ParseFilter("any")
	assert.True(t, ok)
	assert.Equal(t, deal.FilterAny, f)

	_, ok = deal.ParseFilter("fantastic")
	assert.False(t, ok)
}

func TestRank(t *testing.T) {
	t.Parallel()

	assert.Less(t, domain.DealGreat.Rank(), domain.DealGood.Rank())
	assert.Less(t, domain.DealGood.Rank(), domain.DealNone.Rank())
}
