// Package model - display-only operations records: workflows, integrations, knowledge base, trend and SLA targets
package model

// WorkflowType classifies an automated runbook.
type WorkflowType string

const (
	WorkflowTypeOnboarding   WorkflowType = "Onboarding"
	WorkflowTypeOffboarding  WorkflowType = "Offboarding"
	WorkflowTypeAccessReview WorkflowType = "Access Review"
)

// Valid reports whether w is a known workflow type.
func (w WorkflowType) Valid() bool {
	switch w {
	case WorkflowTypeOnboarding, WorkflowTypeOffboarding, WorkflowTypeAccessReview:
		return true
	}
	return false
}

// Workflow is an automated onboarding, offboarding or review runbook.
type Workflow struct {
	ID                   string       `json:"id" yaml:"id"`
	Name                 string       `json:"name" yaml:"name"`
	Type                 WorkflowType `json:"type" yaml:"type"`
	Steps                []string     `json:"steps" yaml:"steps"`
	Owner                string       `json:"owner" yaml:"owner"`
	AverageDurationHours float64      `json:"average_duration_hours" yaml:"average_duration_hours"`
	AutomationRate       int          `json:"automation_rate" yaml:"automation_rate"`
}

// IntegrationState is the sync health of a ticketing integration.
type IntegrationState string

const (
	IntegrationOperational IntegrationState = "Operational"
	IntegrationDegraded    IntegrationState = "Degraded"
	IntegrationOffline     IntegrationState = "Offline"
)

// Valid reports whether s is a known integration state.
func (s IntegrationState) Valid() bool {
	switch s {
	case IntegrationOperational, IntegrationDegraded, IntegrationOffline:
		return true
	}
	return false
}

// IntegrationStatus describes the current sync state of one ticketing tool.
type IntegrationStatus struct {
	Tool                 Integration      `json:"tool" yaml:"tool"`
	Status               IntegrationState `json:"status" yaml:"status"`
	SyncLatencyMinutes   int              `json:"sync_latency_minutes" yaml:"sync_latency_minutes"`
	IncidentsSyncedToday int              `json:"incidents_synced_today" yaml:"incidents_synced_today"`
	AutomationEnabled    bool             `json:"automation_enabled" yaml:"automation_enabled"`
}

// KnowledgeArticle is a runbook article surfaced next to the queue.
type KnowledgeArticle struct {
	ID               string   `json:"id" yaml:"id"`
	Title            string   `json:"title" yaml:"title"`
	Category         Category `json:"category" yaml:"category"`
	AvgHandleMinutes int      `json:"avg_handle_minutes" yaml:"avg_handle_minutes"`
	LastUpdated      string   `json:"last_updated" yaml:"last_updated"`
}

// PerformanceTrendPoint is one day of the weekly performance chart.
type PerformanceTrendPoint struct {
	Label                 string `json:"label" yaml:"label"`
	TicketsResolved       int    `json:"tickets_resolved" yaml:"tickets_resolved"`
	VulnerabilitiesClosed int    `json:"vulnerabilities_closed" yaml:"vulnerabilities_closed"`
	AutomationRuns        int    `json:"automation_runs" yaml:"automation_runs"`
}

// SLATargets holds the committed response and resolution windows per priority.
type SLATargets struct {
	ResponseMinutes map[Priority]int `json:"response_minutes" yaml:"response_minutes"`
	ResolutionHours map[Priority]int `json:"resolution_hours" yaml:"resolution_hours"`
}

// SLATarget is the pair of windows that apply to a single priority.
type SLATarget struct {
	Priority        Priority `json:"priority"`
	ResponseMinutes int      `json:"response_minutes"`
	ResolutionHours int      `json:"resolution_hours"`
}

// For returns the targets for p. ok is false when either window is missing.
func (s SLATargets) For(p Priority) (SLATarget, bool) {
	response, hasResponse := s.ResponseMinutes[p]
	resolution, hasResolution := s.ResolutionHours[p]
	if !hasResponse || !hasResolution {
		return SLATarget{Priority: p}, false
	}
	return SLATarget{Priority: p, ResponseMinutes: response, ResolutionHours: resolution}, true
}

// List returns the targets for every priority that has both windows, P1 first.
func (s SLATargets) List() []SLATarget {
	targets := make([]SLATarget, 0, len(Priorities))
	for _, p := range Priorities {
		if t, ok := s.For(p); ok {
			targets = append(targets, t)
		}
	}
	return targets
}
