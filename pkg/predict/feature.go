// Package predict evaluates fitted regression models against listing
// attributes to produce market price predictions.
package predict

// Feature identifies one regression input. The set is closed: coefficient
// maps naming anything else are rejected by Compile.
type Feature int

// Feature constants, in vocabulary order.
const (
	CarAgeYears Feature = iota
	MileageMil
	Horsepower
	EquipmentCount
	IsHybrid
	IsPHEV
	IsDiesel
	IsElectric
	IsDealer
	IsAWD
	WLTPRangeKM
	AgeXElectric
	MileageXElectric
	AgeXPHEV
	MileageXPHEV
	IsOldestGen
	IsMiddleGen
	PremiumEquipCount

	numFeatures
)

var featureNames = [numFeatures]string{
	CarAgeYears:       "car_age_years",
	MileageMil:        "mileage_mil",
	Horsepower:        "horsepower",
	EquipmentCount:    "equipment_count",
	IsHybrid:          "is_hybrid",
	IsPHEV:            "is_phev",
	IsDiesel:          "is_diesel",
	IsElectric:        "is_electric",
	IsDealer:          "is_dealer",
	IsAWD:             "is_awd",
	WLTPRangeKM:       "wltp_range_km",
	AgeXElectric:      "age_x_electric",
	MileageXElectric:  "mileage_x_electric",
	AgeXPHEV:          "age_x_phev",
	MileageXPHEV:      "mileage_x_phev",
	IsOldestGen:       "is_oldest_gen",
	IsMiddleGen:       "is_middle_gen",
	PremiumEquipCount: "premium_equip_count",
}

var featureByName = func() map[string]Feature {
	m := make(map[string]Feature, numFeatures)
	for f, name := range featureNames {
		m[name] = Feature(f)
	}
	return m
}()

// String returns the coefficient name of f.
func (f Feature) String() string {
	if f < 0 || f >= numFeatures {
		return "unknown"
	}
	return featureNames[f]
}

// ParseFeature looks up a feature by its coefficient name.
func ParseFeature(name string) (Feature, bool) {
	f, ok := featureByName[name]
	return f, ok
}

// Features returns the full vocabulary in order.
func Features() []Feature {
	out := make([]Feature, numFeatures)
	for i := range out {
		out[i] = Feature(i)
	}
	return out
}

// Vector holds one value per feature. The zero value is all zeros.
type Vector [numFeatures]float64

// Weights holds one coefficient per feature; absent coefficients are zero.
type Weights [numFeatures]float64
