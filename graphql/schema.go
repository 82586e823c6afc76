// Package graphql assembles the root GraphQL schema from the per-area query modules.
package graphql

import (
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/ortelius/command-center/graphql/modules/dashboard"
	"github.com/ortelius/command-center/graphql/modules/endpoints"
	"github.com/ortelius/command-center/graphql/modules/operations"
	"github.com/ortelius/command-center/graphql/modules/tickets"
	"github.com/ortelius/command-center/graphql/modules/vulnerabilities"
	"github.com/ortelius/command-center/internal/services"
)

// CreateSchema builds the read-only schema served at /api/v1/graphql.
func CreateSchema(svc *services.DashboardService) (graphql.Schema, error) {
	fields := graphql.Fields{}

	modules := []graphql.Fields{
		dashboard.GetQueryFields(svc),
		tickets.GetQueryFields(svc, tickets.NewTicketType(svc)),
		vulnerabilities.GetQueryFields(svc),
		endpoints.GetQueryFields(svc),
		operations.GetQueryFields(svc),
	}
	for _, module := range modules {
		for name, field := range module {
			if _, exists := fields[name]; exists {
				return graphql.Schema{}, fmt.Errorf("duplicate query field %q", name)
			}
			fields[name] = field
		}
	}

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Query",
			Fields: fields,
		}),
	})
}
