package rules

func alert(name, expr, forDur, severity, summary, description string) Rule {
	return Rule{
		Alert:  name,
		Expr:   expr,
		For:    forDur,
		Labels: map[string]string{"severity": severity},
		Annotations: map[string]string{
			"summary":     summary,
			"description": description,
		},
	}
}

// AlertRules returns a PrometheusRule CR containing alert rules for
// hela-notan operational monitoring.
func AlertRules() PrometheusRule {
	return newRule("hn-alerts", RuleGroup{
		Name: "hn-alerts",
		Rules: []Rule{
			alert("HnDown",
				`absent(up{job="hela-notan"})`, "2m", "critical",
				"Hela Notan is down",
				"The hela-notan job has been absent for more than 2 minutes."),
			alert("HnReadinessDown",
				`hn_readyz_up == 0`, "2m", "critical",
				"Hela Notan readiness check is failing",
				"The database ping behind /readyz has been failing for more than 2 minutes."),
			alert("HnHighErrorRate",
				`hn:http_errors:rate5m / hn:http_requests:rate5m > 0.05`, "5m", "warning",
				"High HTTP error rate on Hela Notan",
				"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
			alert("HnNoModels",
				`hn_models_loaded == 0`, "10m", "warning",
				"No regression models loaded",
				"The snapshot has no compiled models, so every listing is rated none."),
			alert("HnSnapshotStale",
				`time() - hn_model_snapshot_timestamp > 3600`, "10m", "warning",
				"Regression snapshot is stale",
				"The aggregates row has not been fetched successfully for over an hour."),
			alert("HnSummaryStale",
				`time() - hn_summary_last_success_timestamp > 86400`, "15m", "warning",
				"Listing summary has not been refreshed",
				"No summary refresh has succeeded in the last 24 hours."),
			alert("HnHandlerPanics",
				`increase(hn_http_panics_total[5m]) > 0`, "0m", "critical",
				"HTTP handler panicked",
				"One or more requests panicked and were recovered with a 500."),
		},
	})
}
