// Package normalize maps free-text vehicle attributes onto the small fixed
// taxonomy used as regression features.
package normalize

import (
	"fmt"
	"strings"

	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

// fuelRule pairs a set of substrings with the category they select.
type fuelRule struct {
	needles []string
	fuel    domain.Fuel
}

// fuelRules is evaluated top to bottom. Plug-in hybrids usually also say
// "hybrid", so PHEV must come first.
var fuelRules = []fuelRule{
	{needles: []string{"laddhybrid", "plug"}, fuel: domain.FuelPHEV},
	{needles: []string{"hybrid"}, fuel: domain.FuelHybrid},
	{needles: []string{"diesel"}, fuel: domain.FuelDiesel},
	{needles: []string{"bensin"}, fuel: domain.FuelPetrol},
	{needles: []string{"el"}, fuel: domain.FuelElectric},
}

// Fuel maps a raw fuel-type string (e.g. "Laddhybrid bensin") to a
// domain.Fuel. Matching is case-insensitive substring search. Unmatched or
// empty input returns FuelOther.
func Fuel(raw string) domain.Fuel {
	s := strings.ToLower(raw)
	if s == "" {
		return domain.FuelOther
	}

	for _, r := range fuelRules {
		for _, n := range r.needles {
			if strings.Contains(s, n) {
				return r.fuel
			}
		}
	}

	return domain.FuelOther
}

// FuelCaseSQL returns a SQL CASE expression that classifies column the same
// way Fuel does, so repositories can filter on the normalized category.
func FuelCaseSQL(column string) string {
	var b strings.Builder
	b.WriteString("CASE")
	for _, r := range fuelRules {
		conds := make([]string, len(r.needles))
		for i, n := range r.needles {
			conds[i] = fmt.Sprintf("lower(%s) LIKE '%%%s%%'", column, n)
		}
		fmt.Fprintf(&b, " WHEN %s THEN '%s'", strings.Join(conds, " OR "), r.fuel)
	}
	fmt.Fprintf(&b, " ELSE '%s' END", domain.FuelOther)
	return b.String()
}

// awdMarkers are drivetrain substrings that indicate all-wheel drive.
var awdMarkers = []string{"awd", "4wd", "fyrhjuls"}

// IsAWD reports whether the drivetrain text describes all-wheel drive.
func IsAWD(drivetrain string) bool {
	s := strings.ToLower(drivetrain)
	for _, m := range awdMarkers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// IsDealer reports whether the seller category is "dealer".
func IsDealer(seller string) bool {
	return strings.EqualFold(seller, "dealer")
}
