// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/hela-notan/tools/dashgen/panels"
)

// UID is the stable dashboard identifier.
const UID = "hn-overview"

// BuildOverview constructs the Hela Notan overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Hela Notan Overview").
		Uid(UID).
		Tags([]string{"hn", "hela-notan"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.ModelsLoadedStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.Rejections()))

	b.WithRow(dashboard.NewRowBuilder("Listings").
		WithPanel(panels.QueriesByMode()).
		WithPanel(panels.RankingLatency()).
		WithPanel(panels.CandidateSetSize()).
		WithPanel(panels.DealMix()))

	b.WithRow(dashboard.NewRowBuilder("Models").
		WithPanel(panels.SnapshotAge()).
		WithPanel(panels.ModelRefreshes()).
		WithPanel(panels.CompileFailures()))

	b.WithRow(dashboard.NewRowBuilder("Jobs").
		WithPanel(panels.LastSummary()).
		WithPanel(panels.SummaryDuration()).
		WithPanel(panels.TCOBySource()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
