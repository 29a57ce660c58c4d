// Package tco computes the total cost of owning a used car over a holding
// period: depreciation from predicted buy and sell prices plus running costs.
package tco

import (
	"math"
	"sort"
	"time"

	"github.com/donaldgifford/hela-notan/pkg/predict"
	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

// PriceSource reports where the buy and sell prices came from.
type PriceSource string

// Price source constants.
const (
	SourceCurve      PriceSource = "curve"
	SourceRegression PriceSource = "regression"
	SourceNone       PriceSource = "none"
)

// Scenario is one ownership scenario. Mileages are in mil.
type Scenario struct {
	ModelKey       string      `json:"model_key"`
	Fuel           domain.Fuel `json:"fuel"`
	BuyAgeYears    int         `json:"buy_age_years"`
	HoldingYears   int         `json:"holding_years"`
	CurrentMileage int         `json:"current_mileage"`
	AnnualMileage  int         `json:"annual_mileage"`
}

// Scenario bounds. Compute clamps every scenario into them.
const (
	MaxBuyAgeYears   = 100
	MaxHoldingYears  = 50
	MaxMileage       = 100000 // mil
	MaxAnnualMileage = 20000  // mil per year
)

// maxMoney caps a single SEK amount so extreme mileage corrections cannot
// overflow int conversion.
const maxMoney = 1e12

// DefaultScenario is the scenario the calculator opens with: a 2022 RAV4
// hybrid bought with 5000 mil, kept three years.
func DefaultScenario(now time.Time) Scenario {
	return Scenario{
		ModelKey:       "RAV4",
		Fuel:           domain.FuelHybrid,
		BuyAgeYears:    AgeFromModelYear(2022, now),
		HoldingYears:   3,
		CurrentMileage: 5000,
		AnnualMileage:  1500,
	}
}

// AgeFromModelYear returns the car's age in whole years at now.
func AgeFromModelYear(modelYear int, now time.Time) int {
	return max(now.Year()-modelYear, 0)
}

// Result is the full cost breakdown for a scenario. All money is whole SEK.
type Result struct {
	Scenario

	PriceSource    PriceSource `json:"price_source"`
	PriceAvailable bool        `json:"price_available"`
	BuyPrice       int         `json:"buy_price"`
	BuyLower       int         `json:"buy_lower"`
	BuyUpper       int         `json:"buy_upper"`
	SellPrice      int         `json:"sell_price"`
	ValueLoss      int         `json:"value_loss"`
	Confidence     float64     `json:"confidence"`

	Costs
	FuelCost  int `json:"fuel_cost"`
	TotalCost int `json:"total_cost"`

	FutureMileage       int `json:"future_mileage"`
	TotalDistance       int `json:"total_distance"`
	MonthlyDepreciation int `json:"monthly_depreciation"`
	AnnualDepreciation  int `json:"annual_depreciation"`
	MonthlyTotal        int `json:"monthly_total"`
	CostPerMil          int `json:"cost_per_mil"`
}

// Calculator aggregates ownership costs from compiled reference tables.
type Calculator struct {
	profiles    map[string]CostProfile
	consumption map[string]map[domain.Fuel]Consumption
	prices      EnergyPrices
}

// Option configures the Calculator.
type Option func(*Calculator)

// WithEnergyPrices overrides the default fuel and electricity prices.
func WithEnergyPrices(p EnergyPrices) Option {
	return func(c *Calculator) {
		c.prices = p
	}
}

// WithProfiles overrides the compiled cost profiles.
func WithProfiles(p map[string]CostProfile) Option {
	return func(c *Calculator) {
		c.profiles = p
	}
}

// NewCalculator creates a Calculator with the default tables.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		profiles:    DefaultProfiles(),
		consumption: DefaultConsumption(),
		prices:      DefaultEnergyPrices(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Prices returns the configured energy prices.
func (c *Calculator) Prices() EnergyPrices {
	return c.prices
}

// Consumption returns the consumption figure used for a model and fuel.
func (c *Calculator) Consumption(modelKey string, fuel domain.Fuel) Consumption {
	if byFuel, ok := c.consumption[modelKey]; ok {
		if cons, ok := byFuel[fuel]; ok {
			return cons
		}
	}
	return defaultConsumption[fuel]
}

// Compute prices the scenario. m and curve may each be nil; with neither,
// prices are unavailable and only running costs are reported.
func (c *Calculator) Compute(s Scenario, m *predict.Model, curve []domain.CurvePoint) Result {
	s = s.clamped()

	r := Result{Scenario: s, PriceSource: SourceNone}

	distance := s.AnnualMileage * s.HoldingYears
	r.TotalDistance = distance
	r.FutureMileage = s.CurrentMileage + distance

	c.price(&r, m, curve)

	r.ValueLoss = max(0, r.BuyPrice-r.SellPrice)
	r.Costs = c.OwnershipCosts(s.ModelKey, s.Fuel, s.BuyAgeYears, s.HoldingYears)
	r.FuelCost = roundMoney(c.Consumption(s.ModelKey, s.Fuel).cost(float64(distance), c.prices, s.Fuel))
	r.TotalCost = r.ValueLoss + r.Costs.Sum() + r.FuelCost

	months := s.HoldingYears * 12
	r.MonthlyDepreciation = divRound(r.ValueLoss, months)
	r.AnnualDepreciation = divRound(r.ValueLoss, s.HoldingYears)
	r.MonthlyTotal = divRound(r.TotalCost, months)
	r.CostPerMil = divRound(r.TotalCost, distance)

	return r
}

func (s Scenario) clamped() Scenario {
	s.BuyAgeYears = clampInt(s.BuyAgeYears, 0, MaxBuyAgeYears)
	s.HoldingYears = clampInt(s.HoldingYears, 0, MaxHoldingYears)
	s.CurrentMileage = clampInt(s.CurrentMileage, 0, MaxMileage)
	s.AnnualMileage = clampInt(s.AnnualMileage, 0, MaxAnnualMileage)
	return s
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func (c *Calculator) price(r *Result, m *predict.Model, curve []domain.CurvePoint) {
	buyAge := float64(r.BuyAgeYears)
	sellAge := float64(r.BuyAgeYears + r.HoldingYears)

	if m != nil {
		r.Confidence = m.ResidualSE
	}

	if pts := sortedCurve(curve); len(pts) > 0 {
		buy := curveAt(pts, buyAge)
		sell := curveAt(pts, sellAge)
		buyDelta := float64(r.CurrentMileage) - buy.Mileage
		sellDelta := float64(r.FutureMileage) - sell.Mileage

		r.BuyPrice = roundMoney(adjustForMileage(buy.Predicted, m, r.Fuel, buyDelta))
		r.BuyLower = roundMoney(adjustForMileage(buy.Lower, m, r.Fuel, buyDelta))
		r.BuyUpper = roundMoney(adjustForMileage(buy.Upper, m, r.Fuel, buyDelta))
		r.SellPrice = roundMoney(adjustForMileage(sell.Predicted, m, r.Fuel, sellDelta))
		r.PriceSource = SourceCurve
		r.PriceAvailable = true
		return
	}

	if m == nil {
		return
	}

	buyVec := m.Features(predict.Inputs{
		AgeYears:   buyAge,
		MileageMil: float64(r.CurrentMileage),
		Fuel:       r.Fuel,
	})
	sellVec := m.Features(predict.Inputs{
		AgeYears:   sellAge,
		MileageMil: float64(r.FutureMileage),
		Fuel:       r.Fuel,
	})

	r.BuyPrice = m.Predict(buyVec)
	r.BuyLower, r.BuyUpper = m.Interval(buyVec)
	r.SellPrice = m.Predict(sellVec)
	r.PriceSource = SourceRegression
	r.PriceAvailable = true
}

// adjustForMileage corrects a curve price for mileage deviating delta mil
// from the curve's reference mileage.
func adjustForMileage(price float64, m *predict.Model, fuel domain.Fuel, delta float64) float64 {
	if m == nil || delta == 0 {
		return price
	}
	slope := m.MileageSlope(fuel)
	if m.LogTransform {
		return price * math.Exp(slope*delta)
	}
	return price + slope*delta
}

func sortedCurve(curve []domain.CurvePoint) []domain.CurvePoint {
	if len(curve) == 0 {
		return nil
	}
	pts := make([]domain.CurvePoint, len(curve))
	copy(pts, curve)
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].Age < pts[j].Age })
	return pts
}

// curveAt linearly interpolates pts (sorted by age) at age, clamping to the
// end points.
func curveAt(pts []domain.CurvePoint, age float64) domain.CurvePoint {
	if age <= pts[0].Age {
		return pts[0]
	}
	last := pts[len(pts)-1]
	if age >= last.Age {
		return last
	}

	i := sort.Search(len(pts), func(i int) bool { return pts[i].Age >= age })
	hi, lo := pts[i], pts[i-1]
	if hi.Age == lo.Age {
		return hi
	}
	t := (age - lo.Age) / (hi.Age - lo.Age)
	return domain.CurvePoint{
		Age:       age,
		Predicted: lerp(lo.Predicted, hi.Predicted, t),
		Lower:     lerp(lo.Lower, hi.Lower, t),
		Upper:     lerp(lo.Upper, hi.Upper, t),
		Mileage:   lerp(lo.Mileage, hi.Mileage, t),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func roundMoney(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v > maxMoney {
		v = maxMoney
	}
	return int(math.Round(v))
}

// divRound returns round(n/d), or 0 when d is 0.
func divRound(n, d int) int {
	if d <= 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(d)))
}
