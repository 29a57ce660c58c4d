package tco

import domain "github.com/donaldgifford/hela-notan/pkg/types"

// Brand service and repair templates. Ages 0-3 are assumed to be covered by
// warranty or a service plan.
var (
	toyotaService = Brackets{{3, 0}, {7, 3500}, {12, 5000}, {99, 7000}}
	toyotaRepair  = Brackets{{3, 0}, {7, 1500}, {12, 4000}, {99, 7000}}

	bmwService = Brackets{{3, 0}, {7, 7000}, {12, 10000}, {99, 14000}}
	bmwRepair  = Brackets{{3, 0}, {7, 4000}, {12, 10000}, {99, 18000}}

	volvoService = Brackets{{3, 0}, {7, 5500}, {12, 8000}, {99, 11000}}
	volvoRepair  = Brackets{{3, 0}, {7, 3000}, {12, 7500}, {99, 13000}}

	vwService = Brackets{{3, 0}, {7, 4500}, {12, 6500}, {99, 9000}}
	vwRepair  = Brackets{{3, 0}, {7, 2500}, {12, 6000}, {99, 10000}}

	teslaService = Brackets{{3, 0}, {7, 2000}, {12, 3000}, {99, 4000}}
	teslaRepair  = Brackets{{3, 0}, {7, 2500}, {12, 5000}, {99, 9000}}

	kiaService = Brackets{{3, 0}, {7, 3000}, {12, 4500}, {99, 6000}}
	kiaRepair  = Brackets{{3, 0}, {7, 1500}, {12, 3500}, {99, 6000}}

	mercService = Brackets{{3, 0}, {7, 7500}, {12, 10500}, {99, 14000}}
	mercRepair  = Brackets{{3, 0}, {7, 4500}, {12, 11000}, {99, 19000}}
)

// Insurance by segment; premiums fall with insured value.
var (
	insPremiumSUV   = Brackets{{3, 14000}, {7, 11000}, {12, 7000}, {99, 5000}}
	insMidSUV       = Brackets{{3, 9000}, {7, 7500}, {12, 5500}, {99, 4000}}
	insEVMid        = Brackets{{3, 12000}, {7, 9000}, {12, 6500}, {99, 4500}}
	insCompact      = Brackets{{3, 7000}, {7, 6000}, {12, 4500}, {99, 3500}}
	insSportCompact = Brackets{{3, 9000}, {7, 7500}, {12, 5500}, {99, 4000}}
	insPremiumSport = Brackets{{3, 18000}, {7, 14000}, {12, 9000}, {99, 6000}}
	insPremiumHigh  = Brackets{{3, 16000}, {7, 12000}, {12, 8000}, {99, 5500}}
)

func tax(rates ...TaxRate) []TaxRate { return rates }

// DefaultProfiles returns the compiled cost profiles keyed by model key.
func DefaultProfiles() map[string]CostProfile {
	return map[string]CostProfile{
		"RAV4": {
			Service:   toyotaService,
			Repair:    toyotaRepair,
			Insurance: insMidSUV,
			Tax:       tax(TaxRate{domain.FuelHybrid, 1200}, TaxRate{domain.FuelPetrol, 2500}),
		},
		"XC60": {
			Service:   volvoService,
			Repair:    volvoRepair,
			Insurance: insPremiumSUV,
			Tax: tax(
				TaxRate{domain.FuelPHEV, 1500}, TaxRate{domain.FuelHybrid, 2800},
				TaxRate{domain.FuelDiesel, 3800}, TaxRate{domain.FuelPetrol, 2800},
			),
		},
		"X3M": {
			Service:   Brackets{{3, 0}, {7, 8000}, {12, 12000}, {99, 16000}},
			Repair:    Brackets{{3, 0}, {7, 5000}, {12, 12000}, {99, 20000}},
			Insurance: insPremiumSport,
			Tax:       tax(TaxRate{domain.FuelPetrol, 4500}),
		},
		"X3": {
			Service:   bmwService,
			Repair:    bmwRepair,
			Insurance: insPremiumSUV,
			Tax: tax(
				TaxRate{domain.FuelPHEV, 1500}, TaxRate{domain.FuelDiesel, 3500},
				TaxRate{domain.FuelPetrol, 3200},
			),
		},
		"XC40Recharge": {
			Service:      Brackets{{3, 0}, {7, 2500}, {12, 4000}, {99, 5500}},
			Repair:       Brackets{{3, 0}, {7, 2500}, {12, 6000}, {99, 10000}},
			Insurance:    insEVMid,
			Tax:          tax(TaxRate{domain.FuelElectric, 360}),
			ElectricOnly: true,
		},
		"XC40": {
			Service:   Brackets{{3, 0}, {7, 5000}, {12, 7500}, {99, 10000}},
			Repair:    Brackets{{3, 0}, {7, 2500}, {12, 6500}, {99, 11000}},
			Insurance: insMidSUV,
			Tax: tax(
				TaxRate{domain.FuelPHEV, 1200}, TaxRate{domain.FuelHybrid, 2200},
				TaxRate{domain.FuelPetrol, 2200}, TaxRate{domain.FuelDiesel, 3000},
			),
		},
		"Tiguan": {
			Service:   vwService,
			Repair:    vwRepair,
			Insurance: Brackets{{3, 10000}, {7, 8000}, {12, 6000}, {99, 4500}},
			Tax: tax(
				TaxRate{domain.FuelPHEV, 1200}, TaxRate{domain.FuelDiesel, 3200},
				TaxRate{domain.FuelPetrol, 2800},
			),
		},
		"ModelY": {
			Service:      teslaService,
			Repair:       teslaRepair,
			Insurance:    insEVMid,
			Tax:          tax(TaxRate{domain.FuelElectric, 360}),
			ElectricOnly: true,
		},
		"Niro": {
			Service:   kiaService,
			Repair:    kiaRepair,
			Insurance: Brackets{{3, 8000}, {7, 6500}, {12, 5000}, {99, 3500}},
			Tax: tax(
				TaxRate{domain.FuelHybrid, 900}, TaxRate{domain.FuelPHEV, 360},
				TaxRate{domain.FuelElectric, 360},
			),
		},
		"GLC": {
			Service:   mercService,
			Repair:    mercRepair,
			Insurance: insPremiumHigh,
			Tax: tax(
				TaxRate{domain.FuelPHEV, 1500}, TaxRate{domain.FuelDiesel, 4200},
				TaxRate{domain.FuelPetrol, 3800},
			),
		},
		"GolfGTI": {
			Service:   Brackets{{3, 0}, {7, 5000}, {12, 7000}, {99, 9500}},
			Repair:    Brackets{{3, 0}, {7, 2500}, {12, 6000}, {99, 10000}},
			Insurance: insSportCompact,
			Tax:       tax(TaxRate{domain.FuelPetrol, 2500}),
		},
		"GolfR": {
			Service:   Brackets{{3, 0}, {7, 5500}, {12, 8000}, {99, 11000}},
			Repair:    Brackets{{3, 0}, {7, 3000}, {12, 7000}, {99, 12000}},
			Insurance: Brackets{{3, 11000}, {7, 9000}, {12, 6500}, {99, 5000}},
			Tax:       tax(TaxRate{domain.FuelPetrol, 3500}),
		},
		"Golf": {
			Service:   Brackets{{3, 0}, {7, 4000}, {12, 6000}, {99, 8000}},
			Repair:    Brackets{{3, 0}, {7, 2000}, {12, 5000}, {99, 8500}},
			Insurance: insCompact,
			Tax: tax(
				TaxRate{domain.FuelPHEV, 360}, TaxRate{domain.FuelHybrid, 1500},
				TaxRate{domain.FuelPetrol, 1500}, TaxRate{domain.FuelDiesel, 1800},
				TaxRate{domain.FuelElectric, 360},
			),
		},
	}
}
