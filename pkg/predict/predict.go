package predict

import (
	"math"

	"github.com/donaldgifford/hela-notan/pkg/normalize"
	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

// z95 is the two-sided 95% normal quantile used for prediction intervals.
const z95 = 1.96

// maxPrice bounds predictions so exp overflow cannot leak into int math.
const maxPrice = 1e12

// Inputs are the listing attributes a prediction depends on.
type Inputs struct {
	AgeYears         float64
	MileageMil       float64
	Horsepower       float64
	EquipmentCount   float64
	Fuel             domain.Fuel
	Dealer           bool
	AWD              *bool // nil imputes the model's typical drivetrain
	WLTPRangeKM      float64
	Generation       string
	NotableEquipment []string
}

// InputsFromListing derives prediction inputs from a raw listing.
func InputsFromListing(l *domain.Listing) Inputs {
	in := Inputs{
		AgeYears:         l.AgeYears,
		MileageMil:       float64(l.MileageMil),
		Horsepower:       float64(l.Horsepower),
		EquipmentCount:   float64(l.EquipmentCount),
		Fuel:             normalize.Fuel(l.FuelType),
		Dealer:           normalize.IsDealer(l.SellerType),
		WLTPRangeKM:      l.WLTPRangeKM,
		Generation:       l.Generation,
		NotableEquipment: l.NotableEquipment,
	}
	if l.Drivetrain != "" {
		awd := normalize.IsAWD(l.Drivetrain)
		in.AWD = &awd
	}
	return in
}

// Features builds the feature vector for in, imputing missing horsepower,
// equipment count and drivetrain from the model's reference values.
func (m *Model) Features(in Inputs) Vector {
	var v Vector

	hp := in.Horsepower
	if hp <= 0 {
		hp = m.MedianHorsepower
	}
	equip := in.EquipmentCount
	if equip <= 0 {
		equip = m.MedianEquipmentCount
	}
	awd := m.TypicalAWD
	if in.AWD != nil {
		awd = *in.AWD
	}

	age := max(in.AgeYears, 0)
	mileage := max(in.MileageMil, 0)

	v[CarAgeYears] = age
	v[MileageMil] = mileage
	v[Horsepower] = hp
	v[EquipmentCount] = equip
	v[IsHybrid] = indicator(in.Fuel == domain.FuelHybrid)
	v[IsPHEV] = indicator(in.Fuel == domain.FuelPHEV)
	v[IsDiesel] = indicator(in.Fuel == domain.FuelDiesel)
	v[IsElectric] = indicator(in.Fuel == domain.FuelElectric)
	v[IsDealer] = indicator(in.Dealer)
	v[IsAWD] = indicator(awd)
	v[WLTPRangeKM] = max(in.WLTPRangeKM, 0)

	v[AgeXElectric] = age * v[IsElectric]
	v[MileageXElectric] = mileage * v[IsElectric]
	v[AgeXPHEV] = age * v[IsPHEV]
	v[MileageXPHEV] = mileage * v[IsPHEV]

	v[IsOldestGen], v[IsMiddleGen] = m.generationDummies(in.Generation)
	v[PremiumEquipCount] = float64(normalize.PremiumCount(in.NotableEquipment))

	return v
}

// Linear returns intercept + Σ weight·feature, in log-price units when the
// model is log-transformed.
func (m *Model) Linear(v Vector) float64 {
	raw := m.Intercept
	for f := range numFeatures {
		raw += m.Weights[f] * v[f]
	}
	return raw
}

// Predict returns the predicted price in whole SEK, never negative.
func (m *Model) Predict(v Vector) int {
	return toPrice(m.fromScale(m.Linear(v)))
}

// Interval returns the 95% prediction interval around Predict.
func (m *Model) Interval(v Vector) (lower, upper int) {
	raw := m.Linear(v)
	half := z95 * m.ResidualSE
	return toPrice(m.fromScale(raw - half)), toPrice(m.fromScale(raw + half))
}

// PredictListing is a shorthand for Predict(Features(InputsFromListing(l))).
func (m *Model) PredictListing(l *domain.Listing) int {
	return m.Predict(m.Features(InputsFromListing(l)))
}

func (m *Model) fromScale(raw float64) float64 {
	if m.LogTransform {
		return math.Exp(raw)
	}
	return raw
}

func toPrice(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v > maxPrice {
		v = maxPrice
	}
	return int(math.Round(v))
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
