package engine

import (
	"math"

	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

type summaryAcc struct {
	count      int
	priceSum   float64
	ageSum     float64
	mileageSum float64
	minPrice   int
	maxPrice   int
	minYear    int
	maxYear    int
}

// Summarize groups listings by model key and derives the per-model price,
// age, mileage and year statistics.
func Summarize(listings []domain.Listing) map[string]domain.ModelSummary {
	groups := make(map[string]*summaryAcc)

	for i := range listings {
		l := &listings[i]
		acc, ok := groups[l.ModelKey]
		if !ok {
			acc = &summaryAcc{
				minPrice: l.PriceSEK,
				maxPrice: l.PriceSEK,
				minYear:  l.ModelYear,
				maxYear:  l.ModelYear,
			}
			groups[l.ModelKey] = acc
		}

		acc.count++
		acc.priceSum += float64(l.PriceSEK)
		acc.ageSum += l.AgeYears
		acc.mileageSum += float64(l.MileageMil)
		acc.minPrice = min(acc.minPrice, l.PriceSEK)
		acc.maxPrice = max(acc.maxPrice, l.PriceSEK)
		acc.minYear = min(acc.minYear, l.ModelYear)
		acc.maxYear = max(acc.maxYear, l.ModelYear)
	}

	out := make(map[string]domain.ModelSummary, len(groups))
	for key, acc := range groups {
		n := float64(acc.count)
		out[key] = domain.ModelSummary{
			Count:      acc.count,
			AvgPrice:   int(math.Round(acc.priceSum / n)),
			MinPrice:   acc.minPrice,
			MaxPrice:   acc.maxPrice,
			AvgAge:     math.Round(acc.ageSum/n*10) / 10,
			AvgMileage: int(math.Round(acc.mileageSum / n)),
			YearRange:  [2]int{acc.minYear, acc.maxYear},
		}
	}

	return out
}
