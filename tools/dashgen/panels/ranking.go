package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// QueriesByMode returns a timeseries panel showing listing queries per
// second split by direct and deal-aware strategy.
func QueriesByMode() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Listing Queries").
		Description("Listing queries per second by execution strategy").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(`hn:ranking_requests:rate5m`, "{{mode}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RankingLatency returns a timeseries panel showing p95 query latency per
// strategy.
func RankingLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Query Latency (p95)").
		Description("95th percentile listing query duration by strategy").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(hn_ranking_duration_seconds_bucket`+jobSel+`[5m])) by (le, mode))`,
			"{{mode}}", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(0.5, 2)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CandidateSetSize returns a timeseries panel showing the median and p95
// number of listings scored per deal-aware query.
func CandidateSetSize() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Deal Candidates").
		Description("Listings scored in memory per deal-aware query").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.50, sum(rate(hn_ranking_candidates_bucket`+jobSel+`[5m])) by (le))`,
			"p50", "A",
		)).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(hn_ranking_candidates_bucket`+jobSel+`[5m])) by (le))`,
			"p95", "B",
		)).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// DealMix returns a bar gauge panel showing how listings were rated over the
// last hour.
func DealMix() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Deal Ratings (1h)").
		Description("Listings classified per deal rating in the last hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(FullWidth).
		WithTarget(PromQuery(
			`sum(increase(hn_deal_classifications_total`+jobSel+`[1h])) by (rating)`,
			"{{rating}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
