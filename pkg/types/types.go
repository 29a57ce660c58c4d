// Package domain defines the core business types for Hela Notan.
package domain

import (
	"slices"
	"strconv"
)

// Fuel is the normalized powertrain category used as a regression feature.
type Fuel string

// Fuel constants.
const (
	FuelHybrid   Fuel = "Hybrid"
	FuelPHEV     Fuel = "PHEV"
	FuelDiesel   Fuel = "Diesel"
	FuelPetrol   Fuel = "Petrol"
	FuelElectric Fuel = "Electric"
	FuelOther    Fuel = "Other"
)

// Fuels lists every category in normalizer priority order.
var Fuels = []Fuel{FuelPHEV, FuelHybrid, FuelDiesel, FuelPetrol, FuelElectric, FuelOther}

// ParseFuel returns the Fuel matching s exactly, or false.
func ParseFuel(s string) (Fuel, bool) {
	f := Fuel(s)
	return f, slices.Contains(Fuels, f)
}

// DealRating is the three-level deal classification.
type DealRating string

// Deal rating constants.
const (
	DealNone  DealRating = "none"
	DealGood  DealRating = "good"
	DealGreat DealRating = "great"
)

// Rank orders ratings best first: great=0, good=1, none=2.
func (r DealRating) Rank() int {
	switch r {
	case DealGreat:
		return 0
	case DealGood:
		return 1
	default:
		return 2
	}
}

const listingURLPrefix = "https://www.blocket.se/mobility/item/"

// Listing is one observed vehicle-for-sale record from cars_enriched.
type Listing struct {
	ID       string `json:"id"        db:"listing_id"`
	URL      string `json:"url"       db:"url"`
	Make     string `json:"make"      db:"make"`
	Model    string `json:"model"     db:"model"`
	ModelKey string `json:"model_key" db:"model_key"`

	ModelYear   int     `json:"model_year"    db:"model_year"`
	AgeYears    float64 `json:"age_years"     db:"car_age_years"`
	MileageMil  int     `json:"mileage_mil"   db:"mileage_mil"`
	PriceSEK    int     `json:"price_sek"     db:"price_sek"`
	FuelType    string  `json:"fuel_type"     db:"fuel_type"`
	Horsepower  int     `json:"horsepower"    db:"horsepower"`
	WLTPRangeKM float64 `json:"wltp_range_km" db:"wltp_range_km"`

	Gearbox    string `json:"gearbox"     db:"gearbox"`
	Drivetrain string `json:"drivetrain"  db:"drivetrain"`
	Color      string `json:"color"       db:"color"`
	SellerType string `json:"seller_type" db:"seller_type"`
	Generation string `json:"generation"  db:"generation"`

	EquipmentCount   int      `json:"equipment_count"   db:"equipment_count"`
	NotableEquipment []string `json:"notable_equipment" db:"notable_equipment"`
}

// ListingURL returns the stored URL, falling back to the classifieds item page.
func (l *Listing) ListingURL() string {
	if l.URL != "" {
		return l.URL
	}
	return listingURLPrefix + l.ID
}

// RankedListing is a Listing annotated with its normalized fuel and deal fields.
type RankedListing struct {
	Listing
	Fuel      Fuel       `json:"fuel"`
	Predicted *int       `json:"predicted_price,omitempty"`
	Residual  *float64   `json:"residual,omitempty"`
	Deal      DealRating `json:"deal"`
}

// RegressionModel is the fitted model artifact as stored in the aggregates
// cache. Coefficient names are validated when the model is compiled.
type RegressionModel struct {
	Intercept    float64            `json:"intercept"`
	Coefficients map[string]float64 `json:"coefficients"`
	ResidualSE   float64            `json:"residual_se"`
	LogTransform bool               `json:"log_transform"`
	R2           float64            `json:"r2"`
	RMSE         float64            `json:"rmse"`
	NSamples     int                `json:"n_samples"`
	Features     []string           `json:"features,omitempty"`

	MedianHorsepower     float64  `json:"median_horsepower"`
	MedianEquipmentCount float64  `json:"median_equipment_count"`
	TypicalAWD           bool     `json:"typical_awd"`
	Generations          []string `json:"generations,omitempty"`
}

// Quality buckets a model's R² into the tiers shown next to model stats.
func (m *RegressionModel) Quality() string {
	switch {
	case m.R2 >= 0.9:
		return "excellent"
	case m.R2 >= 0.8:
		return "good"
	default:
		return "moderate"
	}
}

// CurvePoint is one point on a precomputed depreciation curve.
type CurvePoint struct {
	Age       float64 `json:"age"`
	Predicted float64 `json:"predicted"`
	Lower     float64 `json:"lower"`
	Upper     float64 `json:"upper"`
	Mileage   float64 `json:"mileage"`
}

// CurveAll is the curve key used when no fuel-specific curve exists.
const CurveAll = "all"

// ModelMeta is presentation metadata for a vehicle-model key.
type ModelMeta struct {
	Label       string   `json:"label"`
	Color       string   `json:"color"`
	BorderClass string   `json:"borderClass,omitempty"`
	FuelOptions []string `json:"fuelOptions"`
}

// DefaultModelMeta returns the metadata used for keys without configuration.
func DefaultModelMeta(key string) ModelMeta {
	return ModelMeta{
		Label:       key,
		Color:       "#6b7280",
		BorderClass: "border-stone-300",
		FuelOptions: []string{string(FuelPetrol)},
	}
}

// Aggregates is the precomputed blob stored under web_cache key "aggregates".
type Aggregates struct {
	Regression       map[string]RegressionModel         `json:"regression"`
	PredictionCurves map[string]map[string][]CurvePoint `json:"predictionCurves,omitempty"`
	ModelConfig      map[string]ModelMeta               `json:"modelConfig,omitempty"`
}

// ModelSummary holds listing statistics for one vehicle-model key.
type ModelSummary struct {
	Count      int     `json:"count"`
	AvgPrice   int     `json:"avgPrice"`
	MinPrice   int     `json:"minPrice"`
	MaxPrice   int     `json:"maxPrice"`
	AvgAge     float64 `json:"avgAge"`
	AvgMileage int     `json:"avgMileage"`
	YearRange  [2]int  `json:"yearRange"`
}

// YearSpan formats the year range as "2015–2023".
func (s *ModelSummary) YearSpan() string {
	return strconv.Itoa(s.YearRange[0]) + "–" + strconv.Itoa(s.YearRange[1])
}
