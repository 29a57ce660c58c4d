package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// LastSummary returns a stat panel showing time since the last successful
// summary refresh.
func LastSummary() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Last Summary Refresh").
		Description("Time since the per-model summary was last recomputed").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(`time() - max(hn_summary_last_success_timestamp`+jobSel+`)`, "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(7200, 86400)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// SummaryDuration returns a timeseries panel showing summary refresh run
// time and failures.
func SummaryDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Summary Refresh").
		Description("Average summary refresh duration and failed runs").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(
			`rate(hn_summary_duration_seconds_sum`+jobSel+`[1h]) / rate(hn_summary_duration_seconds_count`+jobSel+`[1h])`,
			"avg duration", "A",
		)).
		WithTarget(PromQuery(`increase(hn_summary_errors_total`+jobSel+`[1h])`, "failures", "B")).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// TCOBySource returns a timeseries panel showing ownership-cost computations
// by where the purchase price came from.
func TCOBySource() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("TCO Computations").
		Description("Ownership-cost computations per second by price source").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(`sum(rate(hn_tco_computations_total`+jobSel+`[5m])) by (source)`, "{{source}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
