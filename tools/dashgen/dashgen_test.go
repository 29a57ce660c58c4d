package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/hela-notan/tools/dashgen/dashboards"
	"github.com/donaldgifford/hela-notan/tools/dashgen/rules"
	"github.com/donaldgifford/hela-notan/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	builder := dashboards.BuildOverview()
	dash, err := builder.Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "hn-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "Hela Notan Overview", *dash.Title)

	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	assert.Len(t, dash.Panels, 5)

	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 18, totalPanels)

	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "hn-recording-rules", cr.Metadata.Name)
	assert.Equal(t, "system-rules-prometheus", cr.Metadata.Labels["prometheus"])
	assert.Equal(t, "hela-notan", cr.Metadata.Labels["app.kubernetes.io/name"])

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "hn-recording", group.Name)

	expectedRecords := []string{
		"hn:http_requests:rate5m",
		"hn:http_errors:rate5m",
		"hn:ranking_requests:rate5m",
		"hn:model_refresh_failures:increase1h",
	}
	require.Len(t, group.Rules, len(expectedRecords))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.True(t, KnownMetrics[rule.Record], "record %s missing from KnownMetrics", rule.Record)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)

	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "hn-alerts", cr.Metadata.Name)
	assert.Equal(t, "hela-notan", cr.Metadata.Labels["app.kubernetes.io/name"])

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "hn-alerts", group.Name)

	expectedAlerts := []string{
		"HnDown",
		"HnReadinessDown",
		"HnHighErrorRate",
		"HnNoModels",
		"HnSnapshotStale",
		"HnSummaryStale",
		"HnHandlerPanics",
	}
	require.Len(t, group.Rules, len(expectedAlerts))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
}

func TestValidateExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		expr    string
		wantErr bool
	}{
		{name: "known counter", expr: `rate(hn_http_requests_total[5m])`},
		{name: "histogram bucket", expr: `histogram_quantile(0.9, sum(rate(hn_ranking_duration_seconds_bucket[5m])) by (le))`},
		{name: "recording rule", expr: `hn:http_errors:rate5m / hn:http_requests:rate5m`},
		{name: "unknown metric", expr: `rate(legacy_ingestion_errors_total[5m])`, wantErr: true},
		{name: "parse error", expr: `sum(rate(hn_http_requests_total[5m])`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			errs := validate.Expr(tt.expr, KnownMetrics)
			if tt.wantErr {
				assert.NotEmpty(t, errs)
				return
			}
			assert.Empty(t, errs)
		})
	}
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.OutputDir = t.TempDir()
	require.NoError(t, run(cfg, false))

	dashJSON, err := os.ReadFile(filepath.Join(cfg.OutputDir, "grafana", "data", "hn-overview.json"))
	require.NoError(t, err)
	var dash map[string]any
	require.NoError(t, json.Unmarshal(dashJSON, &dash))
	assert.Equal(t, "hn-overview", dash["uid"])

	for _, name := range []string{"hn-recording-rules.yaml", "hn-alerts.yaml"} {
		data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "prometheus", name))
		require.NoError(t, err, name)
		assert.Contains(t, string(data), generatedHeader)

		var cr rules.PrometheusRule
		require.NoError(t, yaml.Unmarshal(data, &cr), name)
		assert.Equal(t, "PrometheusRule", cr.Kind)
	}
}

func TestRun_ValidateOnlyWritesNothing(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.OutputDir = t.TempDir()
	require.NoError(t, run(cfg, true))

	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
