// Package model - Dataset bundles every collection the dashboard renders
package model

// Dataset is the read-only snapshot loaded once at startup.
type Dataset struct {
	Tickets          []Ticket                `json:"tickets" yaml:"tickets"`
	Vulnerabilities  []Vulnerability         `json:"vulnerabilities" yaml:"vulnerabilities"`
	Endpoints        []Endpoint              `json:"endpoints" yaml:"endpoints"`
	Workflows        []Workflow              `json:"workflows" yaml:"workflows"`
	Integrations     []IntegrationStatus     `json:"integrations" yaml:"integrations"`
	KnowledgeBase    []KnowledgeArticle      `json:"knowledge_base" yaml:"knowledge_base"`
	SLATargets       SLATargets              `json:"sla_targets" yaml:"sla_targets"`
	PerformanceTrend []PerformanceTrendPoint `json:"performance_trend" yaml:"performance_trend"`
}
