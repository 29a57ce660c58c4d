package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SnapshotAge returns a stat panel showing how long ago the regression
// snapshot was fetched.
func SnapshotAge() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Snapshot Age").
		Description("Time since the regression snapshot was last fetched").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(`time() - max(hn_model_snapshot_timestamp`+jobSel+`)`, "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(900, 3600)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// ModelRefreshes returns a timeseries panel showing snapshot fetches and
// their failures.
func ModelRefreshes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Snapshot Fetches").
		Description("Successful and failed regression snapshot fetches").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(`sum(increase(hn_model_refreshes_total`+jobSel+`[1h]))`, "ok", "A")).
		WithTarget(PromQuery(`hn:model_refresh_failures:increase1h`, "failed", "B")).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// CompileFailures returns a stat panel showing model entries skipped because
// they did not compile.
func CompileFailures() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Compile Failures (24h)").
		Description("Model entries skipped because their coefficients did not compile").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(`sum(increase(hn_model_compile_failures_total`+jobSel+`[24h]))`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
