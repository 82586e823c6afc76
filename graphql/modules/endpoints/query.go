// Package endpoints defines the GraphQL queries for managed endpoints.
package endpoints

import (
	"github.com/graphql-go/graphql"
	"github.com/ortelius/command-center/internal/services"
)

// GetQueryFields returns the endpoint queries to be mounted in the root schema.
func GetQueryFields(svc *services.DashboardService) graphql.Fields {
	return graphql.Fields{
		"endpoints": &graphql.Field{
			Type: graphql.NewList(EndpointType),
			Args: graphql.FieldConfigArgument{
				"health":      &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
				"unencrypted": &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: false},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				health, _ := p.Args["health"].(string)
				unencrypted, _ := p.Args["unencrypted"].(bool)
				return ResolveEndpoints(svc, health, unencrypted)
			},
		},
	}
}
