package tco

import domain "github.com/donaldgifford/hela-notan/pkg/types"

// EnergyPrices are unit prices in SEK.
type EnergyPrices struct {
	PetrolPerLitre    float64 `json:"petrol_per_litre"    yaml:"petrol_per_litre"`
	DieselPerLitre    float64 `json:"diesel_per_litre"    yaml:"diesel_per_litre"`
	ElectricityPerKWh float64 `json:"electricity_per_kwh" yaml:"electricity_per_kwh"`
}

// DefaultEnergyPrices returns current Swedish pump and household prices.
func DefaultEnergyPrices() EnergyPrices {
	return EnergyPrices{
		PetrolPerLitre:    18.5,
		DieselPerLitre:    19.9,
		ElectricityPerKWh: 2.0,
	}
}

// litre returns the per-litre price paid by a combustion engine on fuel.
func (p EnergyPrices) litre(fuel domain.Fuel) float64 {
	if fuel == domain.FuelDiesel {
		return p.DieselPerLitre
	}
	return p.PetrolPerLitre
}

// Consumption is energy use per mil. Plug-in hybrids use both.
type Consumption struct {
	LitresPerMil float64
	KWhPerMil    float64
}

// cost returns the energy cost of driving distance mil.
func (c Consumption) cost(distance float64, p EnergyPrices, fuel domain.Fuel) float64 {
	return distance * (c.LitresPerMil*p.litre(fuel) + c.KWhPerMil*p.ElectricityPerKWh)
}

// defaultConsumption applies when a model has no figure for the fuel.
var defaultConsumption = map[domain.Fuel]Consumption{
	domain.FuelPetrol:   {LitresPerMil: 0.75},
	domain.FuelDiesel:   {LitresPerMil: 0.6},
	domain.FuelHybrid:   {LitresPerMil: 0.55},
	domain.FuelPHEV:     {LitresPerMil: 0.25, KWhPerMil: 1.0},
	domain.FuelElectric: {KWhPerMil: 1.8},
	domain.FuelOther:    {LitresPerMil: 0.75},
}

// DefaultConsumption returns mixed-driving consumption by model key and fuel.
func DefaultConsumption() map[string]map[domain.Fuel]Consumption {
	return map[string]map[domain.Fuel]Consumption{
		"RAV4": {
			domain.FuelHybrid: {LitresPerMil: 0.55},
			domain.FuelPetrol: {LitresPerMil: 0.75},
		},
		"XC60": {
			domain.FuelPHEV:   {LitresPerMil: 0.25, KWhPerMil: 1.0},
			domain.FuelHybrid: {LitresPerMil: 0.75},
			domain.FuelDiesel: {LitresPerMil: 0.6},
			domain.FuelPetrol: {LitresPerMil: 0.85},
		},
		"X3M": {
			domain.FuelPetrol: {LitresPerMil: 1.1},
		},
		"X3": {
			domain.FuelPHEV:   {LitresPerMil: 0.3, KWhPerMil: 1.0},
			domain.FuelDiesel: {LitresPerMil: 0.6},
			domain.FuelPetrol: {LitresPerMil: 0.85},
		},
		"XC40Recharge": {
			domain.FuelElectric: {KWhPerMil: 2.0},
		},
		"XC40": {
			domain.FuelPHEV:   {LitresPerMil: 0.25, KWhPerMil: 0.9},
			domain.FuelHybrid: {LitresPerMil: 0.7},
			domain.FuelPetrol: {LitresPerMil: 0.75},
			domain.FuelDiesel: {LitresPerMil: 0.55},
		},
		"Tiguan": {
			domain.FuelPHEV:   {LitresPerMil: 0.25, KWhPerMil: 0.9},
			domain.FuelDiesel: {LitresPerMil: 0.6},
			domain.FuelPetrol: {LitresPerMil: 0.8},
		},
		"ModelY": {
			domain.FuelElectric: {KWhPerMil: 1.7},
		},
		"Niro": {
			domain.FuelHybrid:   {LitresPerMil: 0.45},
			domain.FuelPHEV:     {LitresPerMil: 0.2, KWhPerMil: 0.8},
			domain.FuelElectric: {KWhPerMil: 1.6},
		},
		"GLC": {
			domain.FuelPHEV:   {LitresPerMil: 0.3, KWhPerMil: 1.0},
			domain.FuelDiesel: {LitresPerMil: 0.65},
			domain.FuelPetrol: {LitresPerMil: 0.9},
		},
		"GolfGTI": {
			domain.FuelPetrol: {LitresPerMil: 0.75},
		},
		"GolfR": {
			domain.FuelPetrol: {LitresPerMil: 0.85},
		},
		"Golf": {
			domain.FuelPHEV:     {LitresPerMil: 0.2, KWhPerMil: 0.7},
			domain.FuelHybrid:   {LitresPerMil: 0.55},
			domain.FuelPetrol:   {LitresPerMil: 0.6},
			domain.FuelDiesel:   {LitresPerMil: 0.5},
			domain.FuelElectric: {KWhPerMil: 1.6},
		},
	}
}
