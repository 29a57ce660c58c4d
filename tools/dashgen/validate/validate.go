// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and every metric it selects must be known.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/hela-notan/tools/dashgen/rules"
)

// Result collects problems found during validation.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Expr parses expr and checks its selected metric names against known.
// Histogram series suffixes are matched against their base name.
func Expr(expr string, known map[string]bool) []string {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return []string{fmt.Sprintf("parse %q: %v", expr, err)}
	}

	var errs []string
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !known[baseName(vs.Name)] {
			errs = append(errs, fmt.Sprintf("unknown metric %q in %q", vs.Name, expr))
		}
		return nil
	})
	return errs
}

func baseName(name string) string {
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if base, ok := strings.CutSuffix(name, suffix); ok {
			return base
		}
	}
	return name
}

// Dashboard validates every target expression of a built dashboard. dash
// must marshal to Grafana dashboard JSON.
func Dashboard(dash any, known map[string]bool) Result {
	var res Result

	raw, err := json.Marshal(dash)
	if err != nil {
		res.errorf("marshal dashboard: %v", err)
		return res
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		res.errorf("decode dashboard: %v", err)
		return res
	}

	walkPanels(doc, func(title string, targets []any) {
		if len(targets) == 0 {
			res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has no targets", title))
			return
		}
		for _, t := range targets {
			obj, _ := t.(map[string]any)
			expr, _ := obj["expr"].(string)
			if expr == "" {
				res.errorf("panel %q: empty expression", title)
				continue
			}
			for _, e := range Expr(expr, known) {
				res.errorf("panel %q: %s", title, e)
			}
		}
	})
	return res
}

// walkPanels calls fn for every non-row panel found under v.
func walkPanels(v any, fn func(title string, targets []any)) {
	switch n := v.(type) {
	case map[string]any:
		if typ, _ := n["type"].(string); typ != "" && typ != "row" {
			if _, isPanel := n["gridPos"]; isPanel {
				title, _ := n["title"].(string)
				targets, _ := n["targets"].([]any)
				fn(title, targets)
				return
			}
		}
		for _, child := range n {
			walkPanels(child, fn)
		}
	case []any:
		for _, child := range n {
			walkPanels(child, fn)
		}
	}
}

// Rules validates the names and expressions of a PrometheusRule CR.
func Rules(pr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, g := range pr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			if name == "" {
				res.errorf("group %q: rule without record or alert name", g.Name)
			}
			for _, e := range Expr(r.Expr, known) {
				res.errorf("%s: %s", name, e)
			}
		}
	}
	return res
}
