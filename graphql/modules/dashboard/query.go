// Package dashboard defines the GraphQL queries for the dashboard.
package dashboard

import (
	"github.com/graphql-go/graphql"
	"github.com/ortelius/command-center/internal/services"
)

// GetQueryFields returns the dashboard queries to be mounted in the root schema
func GetQueryFields(svc *services.DashboardService) graphql.Fields {
	return graphql.Fields{
		// Header + command summary card
		"dashboardOverview": &graphql.Field{
			Type: DashboardOverviewType,
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return ResolveOverview(svc)
			},
		},
		"ticketSummary": &graphql.Field{
			Type: TicketSummaryType,
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return ResolveTicketSummary(svc)
			},
		},
		"tierDistribution": &graphql.Field{
			Type: TierDistributionType,
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return ResolveTierDistribution(svc)
			},
		},
		// Vulnerability remediation card
		"vulnerabilityDistribution": &graphql.Field{
			Type: SeverityDistributionType,
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return ResolveVulnerabilityDistribution(svc)
			},
		},
		// Endpoint compliance card
		"endpointHealth": &graphql.Field{
			Type: EndpointHealthType,
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return ResolveEndpointHealth(svc)
			},
		},
	}
}
