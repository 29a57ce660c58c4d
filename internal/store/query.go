package store

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/donaldgifford/hela-notan/pkg/normalize"
)

const (
	defaultLimit = 30
	maxLimit     = 100
)

// validSortBy maps allowed SortBy values to their SQL sort expressions.
// Missing horsepower sorts as 0, matching the scanned value.
var validSortBy = map[string]string{
	SortPrice:      "price_sek",
	SortYear:       "model_year",
	SortMileage:    "mileage_mil",
	SortHorsepower: "COALESCE(horsepower, 0)",
}

const defaultSortColumn = "price_sek"

// staticPredicates exclude implausible rows and listings tagged for exclusion.
var staticPredicates = []string{
	"price_sek >= 20000",
	"model_year >= 2005",
	"mileage_mil > 0",
	"cardinality(exclusion_tags) = 0",
}

const baseCarsSelect = `SELECT listing_id, COALESCE(url, '') AS url, make, model, model_key,
	model_year, COALESCE(car_age_years, 0) AS car_age_years, mileage_mil, price_sek,
	COALESCE(fuel_type, '') AS fuel_type, COALESCE(horsepower, 0) AS horsepower,
	COALESCE(wltp_range_km, 0) AS wltp_range_km,
	COALESCE(gearbox, '') AS gearbox, COALESCE(drivetrain, '') AS drivetrain,
	COALESCE(color, '') AS color, COALESCE(seller_type, '') AS seller_type,
	COALESCE(generation, '') AS generation, COALESCE(equipment_count, 0) AS equipment_count,
	notable_equipment
FROM cars_enriched`

const countCarsSelect = "SELECT COUNT(*) FROM cars_enriched"

// ToSQL builds the data and count queries for q. Both share the same
// WHERE clause and named arguments. Rows are ordered by the sort column
// with listing_id as the final tie-break so pages are deterministic.
func (q *CarQuery) ToSQL() (dataSQL, countSQL string, args pgx.NamedArgs) {
	conditions := append([]string(nil), staticPredicates...)
	args = pgx.NamedArgs{}

	if len(q.ModelKeys) > 0 {
		conditions = append(conditions, "model_key = ANY(@model_keys)")
		args["model_keys"] = q.ModelKeys
	}

	if q.Fuel != "" {
		conditions = append(conditions, normalize.FuelCaseSQL("fuel_type")+" = @fuel")
		args["fuel"] = q.Fuel
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	col := defaultSortColumn
	if c, ok := validSortBy[q.SortBy]; ok {
		col = c
	}
	dir := "ASC"
	if q.Desc {
		dir = "DESC"
	}
	orderClause := fmt.Sprintf(" ORDER BY %s %s, listing_id ASC", col, dir)

	dataSQL = baseCarsSelect + whereClause + orderClause

	if !q.All {
		limit := q.Limit
		if limit <= 0 {
			limit = defaultLimit
		}
		if limit > maxLimit {
			limit = maxLimit
		}
		offset := max(q.Offset, 0)
		dataSQL += fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)
	}

	countSQL = countCarsSelect + whereClause

	return dataSQL, countSQL, args
}
