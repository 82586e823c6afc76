// Package dashboard implements the resolvers for dashboard metrics.
package dashboard

import (
	"github.com/ortelius/command-center/internal/services"
)

// ResolveOverview handles fetching every summary shown above the fold
func ResolveOverview(svc *services.DashboardService) (interface{}, error) {
	overview, err := svc.Overview()
	if err != nil {
		return nil, err
	}
	return overview, nil
}

// ResolveTicketSummary returns the open/resolved/SLA rollup
func ResolveTicketSummary(svc *services.DashboardService) (interface{}, error) {
	return svc.TicketSummary(), nil
}

// ResolveTierDistribution returns the tier split
func ResolveTierDistribution(svc *services.DashboardService) (interface{}, error) {
	return svc.TierDistribution(), nil
}

// ResolveVulnerabilityDistribution fetches current breakdown of issues
func ResolveVulnerabilityDistribution(svc *services.DashboardService) (interface{}, error) {
	dist, err := svc.VulnerabilityDistribution()
	if err != nil {
		return nil, err
	}
	return dist, nil
}

// ResolveEndpointHealth returns the fleet health rollup
func ResolveEndpointHealth(svc *services.DashboardService) (interface{}, error) {
	health, err := svc.EndpointHealth()
	if err != nil {
		return nil, err
	}
	return health, nil
}
