package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/donaldgifford/hela-notan/internal/api/client"
	"github.com/donaldgifford/hela-notan/internal/api/handlers"
	"github.com/donaldgifford/hela-notan/internal/ranking"
	"github.com/donaldgifford/hela-notan/pkg/tco"
	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printCarsTable(w io.Writer, page *ranking.Page) error {
	tw := newTabWriter(w)
	tw.writef("ID\tMODEL\tYEAR\tMIL\tFUEL\tPRICE\tPREDICTED\tDEAL\n")
	for i := range page.Items {
		c := &page.Items[i]
		tw.writef("%s\t%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
			c.ID,
			truncate(c.Make+" "+c.Model, 28),
			c.ModelYear,
			c.MileageMil,
			c.Fuel,
			sek(c.PriceSEK),
			optSEK(c.Predicted),
			c.Deal,
		)
	}
	return tw.finish()
}

func printModelsTable(w io.Writer, models []handlers.ModelInfo) error {
	tw := newTabWriter(w)
	tw.writef("KEY\tLABEL\tR2\tRMSE\tSAMPLES\tQUALITY\tFUELS\n")
	for i := range models {
		m := &models[i]
		tw.writef("%s\t%s\t%.3f\t%.0f\t%d\t%s\t%s\n",
			m.Key,
			m.Label,
			m.R2,
			m.RMSE,
			m.NSamples,
			m.Quality,
			strings.Join(m.FuelOptions, ","),
		)
	}
	return tw.finish()
}

func printModelDetail(w io.Writer, m *client.ModelDetail) error {
	tw := newTabWriter(w)
	tw.writef("Key:\t%s\n", m.Key)
	tw.writef("Label:\t%s\n", m.Label)
	tw.writef("R2:\t%.3f\n", m.R2)
	tw.writef("RMSE:\t%.0f\n", m.RMSE)
	tw.writef("Residual SE:\t%.4f\n", m.ResidualSE)
	tw.writef("Samples:\t%d\n", m.NSamples)
	tw.writef("Quality:\t%s\n", m.Quality)
	tw.writef("Log transform:\t%v\n", m.LogTransform)
	tw.writef("95%% interval:\t±%g\n", m.Interval)
	tw.writef("Features:\t%s\n", strings.Join(m.Features, ", "))

	fuels := make([]string, 0, len(m.Curves))
	for f := range m.Curves {
		fuels = append(fuels, f)
	}
	slices.Sort(fuels)
	for _, f := range fuels {
		tw.writef("Curve %s:\t%d points\n", f, len(m.Curves[f]))
	}
	return tw.finish()
}

func printPrediction(w io.Writer, p *handlers.PredictResponse) error {
	tw := newTabWriter(w)
	tw.writef("Model:\t%s\n", p.ModelKey)
	tw.writef("Fuel:\t%s\n", p.Fuel)
	tw.writef("Predicted:\t%s\n", sek(p.Predicted))
	tw.writef("95%% range:\t%s - %s\n", sek(p.Lower), sek(p.Upper))
	if p.Deal != nil {
		tw.writef("Deal:\t%s\n", p.Deal.Rating)
		if p.Deal.Residual != nil {
			tw.writef("Residual:\t%.4f\n", *p.Deal.Residual)
		}
	}
	return tw.finish()
}

func printTCO(w io.Writer, r *tco.Result) error {
	tw := newTabWriter(w)
	tw.writef("Model:\t%s (%s)\n", r.ModelKey, r.Fuel)
	tw.writef("Holding:\t%d years from age %d\n", r.HoldingYears, r.BuyAgeYears)
	tw.writef("Distance:\t%d mil (%d → %d)\n", r.TotalDistance, r.CurrentMileage, r.FutureMileage)
	if !r.PriceAvailable {
		tw.writef("Price:\tunavailable\n")
	} else {
		tw.writef("Buy price:\t%s (%s - %s)\n", sek(r.BuyPrice), sek(r.BuyLower), sek(r.BuyUpper))
		tw.writef("Sell price:\t%s\n", sek(r.SellPrice))
		tw.writef("Value loss:\t%s\n", sek(r.ValueLoss))
		tw.writef("Price source:\t%s\n", r.PriceSource)
	}
	tw.writef("Fuel:\t%s\n", sek(r.FuelCost))
	tw.writef("Service:\t%s\n", sek(r.Service))
	tw.writef("Repair:\t%s\n", sek(r.Repair))
	tw.writef("Insurance:\t%s\n", sek(r.Insurance))
	tw.writef("Tax:\t%s\n", sek(r.Tax))
	tw.writef("Total:\t%s\n", sek(r.TotalCost))
	tw.writef("Per month:\t%s\n", sek(r.MonthlyTotal))
	tw.writef("Per mil:\t%s\n", sek(r.CostPerMil))
	return tw.finish()
}

func printScenario(w io.Writer, s *tco.Scenario) error {
	tw := newTabWriter(w)
	tw.writef("Buy age:\t%d years\n", s.BuyAgeYears)
	tw.writef("Holding:\t%d years\n", s.HoldingYears)
	tw.writef("Current mileage:\t%d mil\n", s.CurrentMileage)
	tw.writef("Annual mileage:\t%d mil\n", s.AnnualMileage)
	return tw.finish()
}

func printSummaryTable(w io.Writer, summary map[string]domain.ModelSummary) error {
	keys := make([]string, 0, len(summary))
	for k := range summary {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	tw := newTabWriter(w)
	tw.writef("MODEL\tCOUNT\tAVG PRICE\tMIN\tMAX\tAVG AGE\tAVG MIL\tYEARS\n")
	for _, k := range keys {
		s := summary[k]
		tw.writef("%s\t%d\t%s\t%s\t%s\t%.1f\t%d\t%s\n",
			k,
			s.Count,
			sek(s.AvgPrice),
			sek(s.MinPrice),
			sek(s.MaxPrice),
			s.AvgAge,
			s.AvgMileage,
			s.YearSpan(),
		)
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// sek formats whole kronor with space-grouped thousands.
func sek(v int) string {
	s := fmt.Sprintf("%d", v)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-" + b.String() + " kr"
	}
	return b.String() + " kr"
}

func optSEK(v *int) string {
	if v == nil {
		return "-"
	}
	return sek(*v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
