package metrics

import (
	"github.com/ortelius/command-center/model"
)

// criticalFocusStep is how much of the critical focus bar one open P1 ticket fills.
const criticalFocusStep = 25

// Overview is everything the header and command summary card display.
type Overview struct {
	Tickets                 TicketSummary             `json:"tickets" yaml:"tickets"`
	Tiers                   TierDistribution          `json:"tiers" yaml:"tiers"`
	Vulnerabilities         VulnerabilityDistribution `json:"vulnerabilities" yaml:"vulnerabilities"`
	Endpoints               EndpointHealth            `json:"endpoints" yaml:"endpoints"`
	ResolvedPct             int                       `json:"resolved_pct" yaml:"resolved_pct"`
	CriticalFocusPct        int                       `json:"critical_focus_pct" yaml:"critical_focus_pct"`
	OperationalIntegrations int                       `json:"operational_integrations" yaml:"operational_integrations"`
	TotalIntegrations       int                       `json:"total_integrations" yaml:"total_integrations"`
	ExposedAssets           int                       `json:"exposed_assets" yaml:"exposed_assets"`
	EndpointsMonitored      int                       `json:"endpoints_monitored" yaml:"endpoints_monitored"`
}

// GetOverview computes every summary over the dataset in one pass per collection.
func GetOverview(ds model.Dataset) (Overview, error) {
	vulns, err := GetVulnerabilityDistribution(ds.Vulnerabilities)
	if err != nil {
		return Overview{}, err
	}
	endpoints, err := GetEndpointHealth(ds.Endpoints)
	if err != nil {
		return Overview{}, err
	}

	tickets := GetTicketSummary(ds.Tickets)
	return Overview{
		Tickets:                 tickets,
		Tiers:                   GetTierDistribution(ds.Tickets),
		Vulnerabilities:         vulns,
		Endpoints:               endpoints,
		ResolvedPct:             min(100, percent(tickets.Resolved, tickets.Total)),
		CriticalFocusPct:        min(100, tickets.Critical*criticalFocusStep),
		OperationalIntegrations: CountOperational(ds.Integrations),
		TotalIntegrations:       len(ds.Integrations),
		ExposedAssets:           vulns.TotalAssets,
		EndpointsMonitored:      endpoints.Total,
	}, nil
}

// CountOperational counts the integrations currently syncing without issues.
func CountOperational(integrations []model.IntegrationStatus) int {
	n := 0
	for _, integration := range integrations {
		if integration.Status == model.IntegrationOperational {
			n++
		}
	}
	return n
}
