package main

import "errors"

// KnownMetrics is the set of metric names exported by hela-notan plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"hn_http_request_duration_seconds": true,
	"hn_http_requests_total":           true,
	"hn_http_rate_limited_total":       true,
	"hn_http_panics_total":             true,

	// Health metrics.
	"hn_healthz_up": true,
	"hn_readyz_up":  true,

	// Model store metrics.
	"hn_model_refreshes_total":        true,
	"hn_model_refresh_failures_total": true,
	"hn_model_compile_failures_total": true,
	"hn_models_loaded":                true,
	"hn_model_snapshot_timestamp":     true,

	// Deal and ranking metrics.
	"hn_deal_classifications_total": true,
	"hn_ranking_requests_total":     true,
	"hn_ranking_candidates":         true,
	"hn_ranking_duration_seconds":   true,

	// TCO metrics.
	"hn_tco_computations_total": true,

	// Summary job metrics.
	"hn_summary_duration_seconds":         true,
	"hn_summary_errors_total":             true,
	"hn_summary_last_success_timestamp":   true,
	"hn_scheduler_next_summary_timestamp": true,

	// Recording rules.
	"hn:http_requests:rate5m":              true,
	"hn:http_errors:rate5m":                true,
	"hn:ranking_requests:rate5m":           true,
	"hn:model_refresh_failures:increase1h": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
