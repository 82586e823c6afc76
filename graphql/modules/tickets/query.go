// Package tickets defines the GraphQL queries for the support queue.
package tickets

import (
	"github.com/graphql-go/graphql"
	"github.com/ortelius/command-center/internal/services"
	"github.com/ortelius/command-center/metrics"
)

// GetQueryFields returns the ticket queries to be mounted in the root schema.
func GetQueryFields(svc *services.DashboardService, ticketType *graphql.Object) graphql.Fields {
	return graphql.Fields{
		"tickets": &graphql.Field{
			Type:        graphql.NewList(ticketType),
			Description: "Tickets matching both the tier and the status selector, in queue order",
			Args: graphql.FieldConfigArgument{
				"tier":   &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: string(metrics.TierAll)},
				"status": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: string(metrics.StatusAll)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				tier, _ := p.Args["tier"].(string)
				status, _ := p.Args["status"].(string)
				return ResolveTickets(svc, tier, status)
			},
		},
	}
}
