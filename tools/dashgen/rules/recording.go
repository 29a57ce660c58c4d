package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return newRule("hn-recording-rules", RuleGroup{
		Name: "hn-recording",
		Rules: []Rule{
			{
				Record: "hn:http_requests:rate5m",
				Expr:   `sum(rate(hn_http_requests_total[5m]))`,
			},
			{
				Record: "hn:http_errors:rate5m",
				Expr:   `sum(rate(hn_http_requests_total{status=~"5.."}[5m]))`,
			},
			{
				Record: "hn:ranking_requests:rate5m",
				Expr:   `sum(rate(hn_ranking_requests_total[5m])) by (mode)`,
			},
			{
				Record: "hn:model_refresh_failures:increase1h",
				Expr:   `sum(increase(hn_model_refresh_failures_total[1h]))`,
			},
		},
	})
}
