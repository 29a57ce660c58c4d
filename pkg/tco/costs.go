package tco

import (
	"math"

	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

// Bracket is one row of an age-indexed annual cost table: Cost applies to
// every age up to and including UpToAge.
type Bracket struct {
	UpToAge int
	Cost    int
}

// Brackets is an ascending age-bracket table.
type Brackets []Bracket

// Lookup returns the annual cost at age. Ages past the last bracket use the
// last bracket's cost; an empty table costs nothing.
func (b Brackets) Lookup(age int) int {
	if len(b) == 0 {
		return 0
	}
	for _, br := range b {
		if age <= br.UpToAge {
			return br.Cost
		}
	}
	return b[len(b)-1].Cost
}

// TaxRate is the annual vehicle tax for one fuel.
type TaxRate struct {
	Fuel   domain.Fuel
	Amount int
}

// CostProfile holds the compiled running-cost tables for one model key.
type CostProfile struct {
	Service   Brackets
	Repair    Brackets
	Insurance Brackets
	// Tax is ordered; the first entry is the fallback for unlisted fuels.
	Tax []TaxRate
	// ElectricOnly profiles already describe an EV and skip the EV service
	// discount.
	ElectricOnly bool
}

// AnnualTax returns the tax for fuel, falling back to the profile's first
// rate and then to DefaultAnnualTax.
func (p *CostProfile) AnnualTax(fuel domain.Fuel) int {
	for _, t := range p.Tax {
		if t.Fuel == fuel {
			return t.Amount
		}
	}
	if len(p.Tax) > 0 {
		return p.Tax[0].Amount
	}
	return DefaultAnnualTax
}

// Flat per-year costs for models without a profile.
const (
	DefaultAnnualService   = 5000
	DefaultAnnualRepair    = 3000
	DefaultAnnualInsurance = 8000
	DefaultAnnualTax       = 1500
)

// evServiceFactor discounts scheduled maintenance when a mixed-powertrain
// model is costed as an EV.
const evServiceFactor = 0.6

// Costs are running-cost totals over a holding period, in SEK.
type Costs struct {
	Service   int `json:"service"`
	Repair    int `json:"repair"`
	Insurance int `json:"insurance"`
	Tax       int `json:"tax"`
}

// Sum returns the total of all items.
func (c Costs) Sum() int {
	return c.Service + c.Repair + c.Insurance + c.Tax
}

// OwnershipCosts sums service, repair, insurance and tax year by year over
// ages buyAge, buyAge+1, ..., buyAge+holding-1. Both are clamped to the
// scenario bounds.
func (c *Calculator) OwnershipCosts(modelKey string, fuel domain.Fuel, buyAge, holding int) Costs {
	buyAge = clampInt(buyAge, 0, MaxBuyAgeYears)
	holding = clampInt(holding, 0, MaxHoldingYears)

	p, ok := c.profiles[modelKey]
	if !ok {
		return Costs{
			Service:   DefaultAnnualService * holding,
			Repair:    DefaultAnnualRepair * holding,
			Insurance: DefaultAnnualInsurance * holding,
			Tax:       DefaultAnnualTax * holding,
		}
	}

	var out Costs
	for y := range holding {
		age := buyAge + y
		out.Service += p.Service.Lookup(age)
		out.Repair += p.Repair.Lookup(age)
		out.Insurance += p.Insurance.Lookup(age)
		out.Tax += p.AnnualTax(fuel)
	}

	if fuel == domain.FuelElectric && !p.ElectricOnly {
		out.Service = int(math.Round(float64(out.Service) * evServiceFactor))
	}

	return out
}
