// Package dashboard defines the GraphQL types for the dashboard summary cards.
package dashboard

import (
	"github.com/graphql-go/graphql"
)

// TicketSummaryType represents the queue rollup on the command summary card
var TicketSummaryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TicketSummary",
	Fields: graphql.Fields{
		"total":              &graphql.Field{Type: graphql.Int},
		"open":               &graphql.Field{Type: graphql.Int},
		"resolved":           &graphql.Field{Type: graphql.Int},
		"critical":           &graphql.Field{Type: graphql.Int},
		"sla_breaches":       &graphql.Field{Type: graphql.Int},
		"average_hours_open": &graphql.Field{Type: graphql.Float},
	},
})

// TierDistributionType represents the tier 1 / tier 2 split
var TierDistributionType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TierDistribution",
	Fields: graphql.Fields{
		"tier1":     &graphql.Field{Type: graphql.Int},
		"tier2":     &graphql.Field{Type: graphql.Int},
		"tier1_pct": &graphql.Field{Type: graphql.Int},
		"tier2_pct": &graphql.Field{Type: graphql.Int},
	},
})

// SeverityDistributionType represents the data for the severity pie/bar charts
var SeverityDistributionType = graphql.NewObject(graphql.ObjectConfig{
	Name: "SeverityDistribution",
	Fields: graphql.Fields{
		"critical":         &graphql.Field{Type: graphql.Int},
		"high":             &graphql.Field{Type: graphql.Int},
		"medium":           &graphql.Field{Type: graphql.Int},
		"low":              &graphql.Field{Type: graphql.Int},
		"total_assets":     &graphql.Field{Type: graphql.Int},
		"progress":         &graphql.Field{Type: graphql.Int},
		"overall_progress": &graphql.Field{Type: graphql.Int},
	},
})

// EndpointHealthType represents the fleet posture card
var EndpointHealthType = graphql.NewObject(graphql.ObjectConfig{
	Name: "EndpointHealth",
	Fields: graphql.Fields{
		"healthy":          &graphql.Field{Type: graphql.Int},
		"warning":          &graphql.Field{Type: graphql.Int},
		"offline":          &graphql.Field{Type: graphql.Int},
		"vulnerabilities":  &graphql.Field{Type: graphql.Int},
		"compliance_score": &graphql.Field{Type: graphql.Int},
		"unencrypted":      &graphql.Field{Type: graphql.Int},
		"total":            &graphql.Field{Type: graphql.Int},
	},
})

// DashboardOverviewType represents the header and every top card in one response
var DashboardOverviewType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DashboardOverview",
	Fields: graphql.Fields{
		"tickets":                  &graphql.Field{Type: TicketSummaryType},
		"tiers":                    &graphql.Field{Type: TierDistributionType},
		"vulnerabilities":          &graphql.Field{Type: SeverityDistributionType},
		"endpoints":                &graphql.Field{Type: EndpointHealthType},
		"resolved_pct":             &graphql.Field{Type: graphql.Int},
		"critical_focus_pct":       &graphql.Field{Type: graphql.Int},
		"operational_integrations": &graphql.Field{Type: graphql.Int},
		"total_integrations":       &graphql.Field{Type: graphql.Int},
		"exposed_assets":           &graphql.Field{Type: graphql.Int},
		"endpoints_monitored":      &graphql.Field{Type: graphql.Int},
	},
})
