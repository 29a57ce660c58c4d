package predict_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/hela-notan/pkg/predict"
	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

func linearModel(t *testing.T) *predict.Model {
	t.Helper()
	m, err := predict.Compile(domain.RegressionModel{
		Intercept: 400000,
		Coefficients: map[string]float64{
			"car_age_years":       -20000,
			"mileage_mil":         -10,
			"horsepower":          500,
			"equipment_count":     1000,
			"is_hybrid":           15000,
			"is_electric":         30000,
			"age_x_electric":      -5000,
			"mileage_x_electric":  -2,
			"is_awd":              25000,
			"premium_equip_count": 8000,
			"is_oldest_gen":       -40000,
			"is_middle_gen":       -15000,
		},
		ResidualSE:           10000,
		MedianHorsepower:     180,
		MedianEquipmentCount: 20,
		TypicalAWD:           true,
		Generations:          []string{"C", "A", "B"},
	})
	require.NoError(t, err)
	return m
}

func TestParseFeature(t *testing.T) {
	t.Parallel()

	for _, f := range predict.Features() {
		got, ok := predict.ParseFeature(f.String())
		require.True(t, ok, "feature %d", f)
		assert.Equal(t, f, got)
	}

	_, ok := predict.ParseFeature("car_age")
	assert.False(t, ok)
	assert.Len(t, predict.Features(), 18)
}

func TestCompile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     domain.RegressionModel
		wantErr string
	}{
		{
			name: "valid",
			raw: domain.RegressionModel{
				Coefficients: map[string]float64{"car_age_years": -1},
				ResidualSE:   1,
			},
		},
		{
			name: "empty coefficients",
			raw:  domain.RegressionModel{Intercept: 5},
		},
		{
			name: "unknown coefficient",
			raw: domain.RegressionModel{
				Coefficients: map[string]float64{"car_age": -1, "is_awd": 1},
			},
			wantErr: `coefficient "car_age": unknown feature`,
		},
		{
			name:    "negative residual_se",
			raw:     domain.RegressionModel{ResidualSE: -3},
			wantErr: "residual_se must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := predict.Compile(tt.raw)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, m)
		})
	}
}

func TestCompile_UnknownFeatureIsSentinel(t *testing.T) {
	t.Parallel()

	_, err := predict.Compile(domain.RegressionModel{
		Coefficients: map[string]float64{"mileage_km": 1},
	})
	assert.ErrorIs(t, err, predict.ErrUnknownFeature)
}

func TestFeatures_Interactions(t *testing.T) {
	t.Parallel()

	m := linearModel(t)
	awd := false

	ev := m.Features(predict.Inputs{
		AgeYears: 4, MileageMil: 6000, Horsepower: 300, EquipmentCount: 25,
		Fuel: domain.FuelElectric, AWD: &awd,
	})
	assert.InDelta(t, 1, ev[predict.IsElectric], 0)
	assert.InDelta(t, 4, ev[predict.AgeXElectric], 0)
	assert.InDelta(t, 6000, ev[predict.MileageXElectric], 0)
	assert.InDelta(t, 0, ev[predict.AgeXPHEV], 0)
	assert.InDelta(t, 0, ev[predict.IsAWD], 0)

	phev := m.Features(predict.Inputs{AgeYears: 3, MileageMil: 2000, Fuel: domain.FuelPHEV})
	assert.InDelta(t, 3, phev[predict.AgeXPHEV], 0)
	assert.InDelta(t, 2000, phev[predict.MileageXPHEV], 0)
	assert.InDelta(t, 0, phev[predict.AgeXElectric], 0)
	assert.InDelta(t, 1, phev[predict.IsAWD], 0, "nil AWD uses typical drivetrain")
}

func TestFeatures_Imputation(t *testing.T) {
	t.Parallel()

	m := linearModel(t)

	missing := predict.Inputs{AgeYears: 5, MileageMil: 8000, Fuel: domain.FuelHybrid}
	explicit := missing
	explicit.Horsepower = 180
	explicit.EquipmentCount = 20

	assert.Equal(t, m.Features(explicit), m.Features(missing))
	assert.Equal(t, m.Predict(m.Features(explicit)), m.Predict(m.Features(missing)))
}

func TestFeatures_GenerationDummies(t *testing.T) {
	t.Parallel()

	m := linearModel(t)

	tests := []struct {
		gen        string
		wantOldest float64
		wantMiddle float64
	}{
		{gen: "A", wantOldest: 1, wantMiddle: 0},
		{gen: "B", wantOldest: 0, wantMiddle: 1},
		{gen: "C", wantOldest: 0, wantMiddle: 0},
		{gen: "", wantOldest: 0, wantMiddle: 0},
		{gen: "Z", wantOldest: 0, wantMiddle: 0},
	}

	for _, tt := range tests {
		t.Run("gen "+tt.gen, func(t *testing.T) {
			t.Parallel()
			v := m.Features(predict.Inputs{Generation: tt.gen})
			assert.InDelta(t, tt.wantOldest, v[predict.IsOldestGen], 0)
			assert.InDelta(t, tt.wantMiddle, v[predict.IsMiddleGen], 0)
		})
	}
}

func TestFeatures_GenerationDummiesFewGenerations(t *testing.T) {
	t.Parallel()

	two, err := predict.Compile(domain.RegressionModel{Generations: []string{"Mk8", "Mk7"}})
	require.NoError(t, err)
	v := two.Features(predict.Inputs{Generation: "Mk7"})
	assert.InDelta(t, 1, v[predict.IsOldestGen], 0)
	assert.InDelta(t, 0, v[predict.IsMiddleGen], 0)

	one, err := predict.Compile(domain.RegressionModel{Generations: []string{"Mk8"}})
	require.NoError(t, err)
	v = one.Features(predict.Inputs{Generation: "Mk8"})
	assert.InDelta(t, 0, v[predict.IsOldestGen], 0)
	assert.InDelta(t, 0, v[predict.IsMiddleGen], 0)
}

func TestFeatures_PremiumEquipment(t *testing.T) {
	t.Parallel()

	m := linearModel(t)
	v := m.Features(predict.Inputs{
		NotableEquipment: []string{"Panoramatak", "Dragkrok", "Harman Kardon"},
	})
	assert.InDelta(t, 2, v[predict.PremiumEquipCount], 0)
}

func TestPredict_Linear(t *testing.T) {
	t.Parallel()

	m := linearModel(t)
	awd := true
	v := m.Features(predict.Inputs{
		AgeYears: 4, MileageMil: 5000, Horsepower: 200, EquipmentCount: 20,
		Fuel: domain.FuelHybrid, AWD: &awd,
	})

	// 400000 - 80000 - 50000 + 100000 + 20000 + 15000 + 25000
	assert.Equal(t, 430000, m.Predict(v))
	assert.InDelta(t, 430000, m.Linear(v), 1e-6)
}

func TestPredict_FloorsAtZero(t *testing.T) {
	t.Parallel()

	m := linearModel(t)
	v := m.Features(predict.Inputs{AgeYears: 40, MileageMil: 90000})
	assert.Less(t, m.Linear(v), 0.0)
	assert.Equal(t, 0, m.Predict(v))
}

func TestPredict_LogRoundTrip(t *testing.T) {
	t.Parallel()

	m, err := predict.Compile(domain.RegressionModel{
		Intercept:    13.0,
		LogTransform: true,
		ResidualSE:   0.12,
		Coefficients: map[string]float64{
			"car_age_years": -0.08,
			"mileage_mil":   -0.00002,
		},
	})
	require.NoError(t, err)

	for _, in := range []predict.Inputs{
		{},
		{AgeYears: 3, MileageMil: 4000},
		{AgeYears: 12.5, MileageMil: 25000},
	} {
		v := m.Features(in)
		l := m.Linear(v)
		want := int(math.Round(math.Max(0, math.Exp(l))))
		assert.Equal(t, want, m.Predict(v))
		assert.GreaterOrEqual(t, m.Predict(v), 0)
	}
}

func TestPredict_Overflow(t *testing.T) {
	t.Parallel()

	m, err := predict.Compile(domain.RegressionModel{Intercept: 5000, LogTransform: true})
	require.NoError(t, err)
	got := m.Predict(m.Features(predict.Inputs{}))
	assert.Positive(t, got)
}

func TestInterval(t *testing.T) {
	t.Parallel()

	m := linearModel(t)
	awd := true
	v := m.Features(predict.Inputs{
		AgeYears: 4, MileageMil: 5000, Horsepower: 200, EquipmentCount: 20,
		Fuel: domain.FuelHybrid, AWD: &awd,
	})

	lower, upper := m.Interval(v)
	assert.Equal(t, 430000-19600, lower)
	assert.Equal(t, 430000+19600, upper)

	cheap := m.Features(predict.Inputs{AgeYears: 30, MileageMil: 1000})
	lower, _ = m.Interval(cheap)
	assert.Equal(t, 0, lower)
}

func TestMileageSlope(t *testing.T) {
	t.Parallel()

	m := linearModel(t)
	assert.InDelta(t, -10, m.MileageSlope(domain.FuelPetrol), 0)
	assert.InDelta(t, -12, m.MileageSlope(domain.FuelElectric), 0)
	assert.InDelta(t, -10, m.MileageSlope(domain.FuelPHEV), 0)
}

func TestInputsFromListing(t *testing.T) {
	t.Parallel()

	l := &domain.Listing{
		AgeYears:         3.5,
		MileageMil:       4200,
		Horsepower:       306,
		EquipmentCount:   31,
		FuelType:         "Laddhybrid bensin",
		SellerType:       "Dealer",
		Drivetrain:       "Fyrhjulsdrift",
		Generation:       "Gen2",
		NotableEquipment: []string{"Panoramatak"},
	}

	in := predict.InputsFromListing(l)
	assert.Equal(t, domain.FuelPHEV, in.Fuel)
	assert.True(t, in.Dealer)
	require.NotNil(t, in.AWD)
	assert.True(t, *in.AWD)
	assert.InDelta(t, 4200, in.MileageMil, 0)

	l.Drivetrain = ""
	assert.Nil(t, predict.InputsFromListing(l).AWD)
}
