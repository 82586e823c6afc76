// Package tickets defines the GraphQL types for the support queue.
package tickets

import (
	"github.com/graphql-go/graphql"
	"github.com/ortelius/command-center/internal/services"
	"github.com/ortelius/command-center/model"
)

// NewTicketType builds the Ticket object. The SLA fields are looked up per priority
// from the service's SLA targets.
func NewTicketType(svc *services.DashboardService) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Ticket",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: graphql.String},
			"title":        &graphql.Field{Type: graphql.String},
			"requester":    &graphql.Field{Type: graphql.String},
			"device":       &graphql.Field{Type: graphql.String},
			"platform":     &graphql.Field{Type: graphql.String},
			"category":     &graphql.Field{Type: graphql.String},
			"tier":         &graphql.Field{Type: graphql.Int},
			"status":       &graphql.Field{Type: graphql.String},
			"priority":     &graphql.Field{Type: graphql.String},
			"integration":  &graphql.Field{Type: graphql.String},
			"created_at":   &graphql.Field{Type: graphql.DateTime},
			"updated_at":   &graphql.Field{Type: graphql.DateTime},
			"sla_breached": &graphql.Field{Type: graphql.Boolean},
			"description":  &graphql.Field{Type: graphql.String},
			"severity": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if ticket, ok := p.Source.(model.Ticket); ok {
						return string(ticket.Priority.Severity()), nil
					}
					return nil, nil
				},
			},
			"sla_response_minutes": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if ticket, ok := p.Source.(model.Ticket); ok {
						if target, found := svc.SLATarget(ticket.Priority); found {
							return target.ResponseMinutes, nil
						}
					}
					return nil, nil
				},
			},
			"sla_resolution_hours": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if ticket, ok := p.Source.(model.Ticket); ok {
						if target, found := svc.SLATarget(ticket.Priority); found {
							return target.ResolutionHours, nil
						}
					}
					return nil, nil
				},
			},
		},
	})
}
