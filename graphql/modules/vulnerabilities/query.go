// Package vulnerabilities defines the GraphQL queries for the remediation board.
package vulnerabilities

import (
	"github.com/graphql-go/graphql"
	"github.com/ortelius/command-center/internal/services"
)

// GetQueryFields returns the vulnerability queries to be mounted in the root schema.
func GetQueryFields(svc *services.DashboardService) graphql.Fields {
	return graphql.Fields{
		"vulnerabilities": &graphql.Field{
			Type: graphql.NewList(VulnerabilityType),
			Args: graphql.FieldConfigArgument{
				"severity": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
				"limit":    &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 100},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				severity, _ := p.Args["severity"].(string)
				limit, _ := p.Args["limit"].(int)
				return ResolveVulnerabilities(svc, severity, limit)
			},
		},
	}
}
