// Package deal classifies how far a listing's asking price sits below its
// predicted market price.
package deal

import (
	"math"

	"github.com/donaldgifford/hela-notan/pkg/predict"
	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

// Thresholds are in units of the model's residual standard error.
const (
	GreatThreshold = -1.5
	GoodThreshold  = -0.75
)

// Filter selects listings by deal rating.
type Filter string

// Filter constants. FilterAny matches good or great.
const (
	FilterNone  Filter = ""
	FilterGood  Filter = "good"
	FilterGreat Filter = "great"
	FilterAny   Filter = "any"
)

// Result is the outcome of scoring one listing against one model.
// Predicted and Residual are nil when no signal is available.
type Result struct {
	Rating    domain.DealRating `json:"deal"`
	Predicted *int              `json:"predicted_price,omitempty"`
	Residual  *float64          `json:"residual,omitempty"`
	Score     *float64          `json:"score,omitempty"`
}

// Score compares the listing's price to the model's prediction. A nil model
// yields DealNone without a prediction.
func Score(l *domain.Listing, m *predict.Model) Result {
	if m == nil {
		return Result{Rating: domain.DealNone}
	}
	return Classify(l.PriceSEK, m.PredictListing(l), m.ResidualSE, m.LogTransform)
}

// Classify rates an actual price against a predicted price with residual
// standard error sigma, in log space when logSpace is set.
func Classify(actual, predicted int, sigma float64, logSpace bool) Result {
	if logSpace {
		return classifyLog(actual, predicted, sigma)
	}
	return classifyLinear(actual, predicted, sigma)
}

func classifyLinear(actual, predicted int, sigma float64) Result {
	residual := float64(actual - predicted)
	res := Result{
		Rating:    domain.DealNone,
		Predicted: &predicted,
		Residual:  &residual,
	}
	if sigma <= 0 {
		return res
	}

	z := residual / sigma
	res.Score = &z
	res.Rating = rate(residual, GreatThreshold*sigma, GoodThreshold*sigma)
	return res
}

func classifyLog(actual, predicted int, sigma float64) Result {
	if actual <= 0 || predicted <= 0 {
		return Result{Rating: domain.DealNone}
	}

	residual := float64(actual - predicted)
	res := Result{
		Rating:    domain.DealNone,
		Predicted: &predicted,
		Residual:  &residual,
	}
	if sigma <= 0 {
		return res
	}

	z := (math.Log(float64(actual)) - math.Log(float64(predicted))) / sigma
	res.Score = &z
	res.Rating = rate(z, GreatThreshold, GoodThreshold)
	return res
}

// rate applies inclusive upper bounds: x ≤ great → great, x ≤ good → good.
func rate(x, great, good float64) domain.DealRating {
	switch {
	case x <= great:
		return domain.DealGreat
	case x <= good:
		return domain.DealGood
	default:
		return domain.DealNone
	}
}

// Matches reports whether rating r passes filter f. The empty filter
// matches everything.
func (f Filter) Matches(r domain.DealRating) bool {
	switch f {
	case FilterNone:
		return true
	case FilterGood:
		return r == domain.DealGood
	case FilterGreat:
		return r == domain.DealGreat
	case FilterAny:
		return r == domain.DealGood || r == domain.DealGreat
	default:
		return false
	}
}

// ParseFilter validates a filter string.
func ParseFilter(s string) (Filter, bool) {
	switch f := Filter(s); f {
	case FilterNone, FilterGood, FilterGreat, FilterAny:
		return f, true
	default:
		return FilterNone, false
	}
}
