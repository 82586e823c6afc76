// Package operations defines the GraphQL queries for the operations panels.
package operations

import (
	"github.com/graphql-go/graphql"
	"github.com/ortelius/command-center/internal/services"
)

// GetQueryFields returns the operations queries to be mounted in the root schema.
func GetQueryFields(svc *services.DashboardService) graphql.Fields {
	return graphql.Fields{
		"workflows": &graphql.Field{
			Type: graphql.NewList(WorkflowType),
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return svc.Workflows(), nil
			},
		},
		"integrations": &graphql.Field{
			Type: graphql.NewList(IntegrationStatusType),
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return svc.Integrations(), nil
			},
		},
		"knowledgeBase": &graphql.Field{
			Type: graphql.NewList(KnowledgeArticleType),
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return svc.KnowledgeBase(), nil
			},
		},
		"performanceTrend": &graphql.Field{
			Type: graphql.NewList(PerformanceTrendPointType),
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return svc.PerformanceTrend(), nil
			},
		},
		"slaTargets": &graphql.Field{
			Type: graphql.NewList(SLATargetType),
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return svc.SLATargets(), nil
			},
		},
	}
}
