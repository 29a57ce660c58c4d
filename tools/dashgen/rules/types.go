// Package rules builds the hela-notan recording and alert rules as
// Prometheus Operator PrometheusRule resources.
package rules

const (
	ruleAPIVersion = "monitoring.coreos.com/v1"
	ruleKind       = "PrometheusRule"
)

// selectorLabels are matched by the cluster Prometheus ruleSelector.
var selectorLabels = map[string]string{
	"prometheus":             "system-rules-prometheus",
	"app.kubernetes.io/name": "hela-notan",
}

// PrometheusRule is the PrometheusRule custom resource.
type PrometheusRule struct {
	APIVersion string                 `yaml:"apiVersion"`
	Kind       string                 `yaml:"kind"`
	Metadata   PrometheusRuleMetadata `yaml:"metadata"`
	Spec       PrometheusRuleSpec     `yaml:"spec"`
}

// PrometheusRuleMetadata holds the CR metadata fields.
type PrometheusRuleMetadata struct {
	Name   string            `yaml:"name"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

// PrometheusRuleSpec holds the rule groups.
type PrometheusRuleSpec struct {
	Groups []RuleGroup `yaml:"groups"`
}

// RuleGroup is a named set of hn rules evaluated together.
type RuleGroup struct {
	Name     string `yaml:"name"`
	Interval string `yaml:"interval,omitempty"`
	Rules    []Rule `yaml:"rules"`
}

// Rule is either a recording rule (Record set) or an alert (Alert set).
type Rule struct {
	Record      string            `yaml:"record,omitempty"`
	Alert       string            `yaml:"alert,omitempty"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

// newRule wraps a single group in a labelled PrometheusRule named name.
func newRule(name string, group RuleGroup) PrometheusRule {
	labels := make(map[string]string, len(selectorLabels))
	for k, v := range selectorLabels {
		labels[k] = v
	}
	return PrometheusRule{
		APIVersion: ruleAPIVersion,
		Kind:       ruleKind,
		Metadata: PrometheusRuleMetadata{
			Name:   name,
			Labels: labels,
		},
		Spec: PrometheusRuleSpec{Groups: []RuleGroup{group}},
	}
}
