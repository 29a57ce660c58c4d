package predict

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

// ErrUnknownFeature is returned by Compile for coefficient names outside
// the feature vocabulary.
var ErrUnknownFeature = errors.New("unknown feature")

// Model is a compiled, immutable regression model.
type Model struct {
	Intercept    float64
	Weights      Weights
	ResidualSE   float64
	LogTransform bool

	MedianHorsepower     float64
	MedianEquipmentCount float64
	TypicalAWD           bool

	// generations sorted lexicographically, oldest first.
	generations []string
}

// Compile validates a raw model and converts its coefficient map into a
// Weights array. It fails on unknown coefficient names or a negative
// residual standard error.
func Compile(raw domain.RegressionModel) (*Model, error) {
	var errs []error

	m := &Model{
		Intercept:            raw.Intercept,
		ResidualSE:           raw.ResidualSE,
		LogTransform:         raw.LogTransform,
		MedianHorsepower:     raw.MedianHorsepower,
		MedianEquipmentCount: raw.MedianEquipmentCount,
		TypicalAWD:           raw.TypicalAWD,
	}

	names := make([]string, 0, len(raw.Coefficients))
	for name := range raw.Coefficients {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		f, ok := ParseFeature(name)
		if !ok {
			errs = append(errs, fmt.Errorf("coefficient %q: %w", name, ErrUnknownFeature))
			continue
		}
		m.Weights[f] = raw.Coefficients[name]
	}

	if raw.ResidualSE < 0 {
		errs = append(errs, fmt.Errorf("residual_se must be positive (got %g)", raw.ResidualSE))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	m.generations = slices.Clone(raw.Generations)
	slices.Sort(m.generations)

	return m, nil
}

// Weight returns the coefficient for f.
func (m *Model) Weight(f Feature) float64 {
	return m.Weights[f]
}

// MileageSlope returns the per-mil price effect for the given fuel,
// including the fuel interaction terms. Under log-transform the slope is in
// log-price units.
func (m *Model) MileageSlope(fuel domain.Fuel) float64 {
	slope := m.Weights[MileageMil]
	switch fuel {
	case domain.FuelElectric:
		slope += m.Weights[MileageXElectric]
	case domain.FuelPHEV:
		slope += m.Weights[MileageXPHEV]
	}
	return slope
}

// generationDummies returns the oldest/middle generation indicators for gen.
func (m *Model) generationDummies(gen string) (oldest, middle float64) {
	if gen == "" || len(m.generations) < 2 {
		return 0, 0
	}
	if gen == m.generations[0] {
		return 1, 0
	}
	if len(m.generations) >= 3 && gen == m.generations[1] {
		return 0, 1
	}
	return 0, 0
}
