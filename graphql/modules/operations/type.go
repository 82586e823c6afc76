// Package operations defines the GraphQL types for the display-only operations panels.
package operations

import (
	"github.com/graphql-go/graphql"
)

// WorkflowType represents an automated onboarding, offboarding or review runbook
var WorkflowType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Workflow",
	Fields: graphql.Fields{
		"id":                     &graphql.Field{Type: graphql.String},
		"name":                   &graphql.Field{Type: graphql.String},
		"type":                   &graphql.Field{Type: graphql.String},
		"steps":                  &graphql.Field{Type: graphql.NewList(graphql.String)},
		"owner":                  &graphql.Field{Type: graphql.String},
		"average_duration_hours": &graphql.Field{Type: graphql.Float},
		"automation_rate":        &graphql.Field{Type: graphql.Int},
	},
})

// IntegrationStatusType represents the sync state of one ticketing tool
var IntegrationStatusType = graphql.NewObject(graphql.ObjectConfig{
	Name: "IntegrationStatus",
	Fields: graphql.Fields{
		"tool":                   &graphql.Field{Type: graphql.String},
		"status":                 &graphql.Field{Type: graphql.String},
		"sync_latency_minutes":   &graphql.Field{Type: graphql.Int},
		"incidents_synced_today": &graphql.Field{Type: graphql.Int},
		"automation_enabled":     &graphql.Field{Type: graphql.Boolean},
	},
})

// KnowledgeArticleType represents a runbook article
var KnowledgeArticleType = graphql.NewObject(graphql.ObjectConfig{
	Name: "KnowledgeArticle",
	Fields: graphql.Fields{
		"id":                 &graphql.Field{Type: graphql.String},
		"title":              &graphql.Field{Type: graphql.String},
		"category":           &graphql.Field{Type: graphql.String},
		"avg_handle_minutes": &graphql.Field{Type: graphql.Int},
		"last_updated":       &graphql.Field{Type: graphql.String},
	},
})

// PerformanceTrendPointType represents one day on the weekly chart
var PerformanceTrendPointType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PerformanceTrendPoint",
	Fields: graphql.Fields{
		"label":                  &graphql.Field{Type: graphql.String},
		"tickets_resolved":       &graphql.Field{Type: graphql.Int},
		"vulnerabilities_closed": &graphql.Field{Type: graphql.Int},
		"automation_runs":        &graphql.Field{Type: graphql.Int},
	},
})

// SLATargetType represents the response and resolution windows of one priority
var SLATargetType = graphql.NewObject(graphql.ObjectConfig{
	Name: "SLATarget",
	Fields: graphql.Fields{
		"priority":         &graphql.Field{Type: graphql.String},
		"response_minutes": &graphql.Field{Type: graphql.Int},
		"resolution_hours": &graphql.Field{Type: graphql.Int},
	},
})
