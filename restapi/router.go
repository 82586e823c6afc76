// Package restapi provides the main router and initialization for REST API endpoints.
package restapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"github.com/ortelius/command-center/internal/services"
	"github.com/ortelius/command-center/restapi/modules/dashboard"
	"github.com/ortelius/command-center/restapi/modules/operations"
	"github.com/ortelius/command-center/restapi/modules/tickets"
	"go.uber.org/zap"
)

// SetupRoutes configures all REST API routes and the GraphQL endpoint.
// CORS and the other middleware are installed globally in internal/api/fiber.go.
func SetupRoutes(app *fiber.App, svc *services.DashboardService, schema graphql.Schema, logger *zap.Logger) {
	// API Group /api/v1
	api := app.Group("/api/v1")

	api.Post("/graphql", GraphQLHandler(schema, logger))

	// Summary cards
	dash := api.Group("/dashboard")
	dash.Get("/overview", dashboard.GetOverview(svc))
	dash.Get("/tickets/summary", dashboard.GetTicketSummary(svc))
	dash.Get("/tickets/tiers", dashboard.GetTierDistribution(svc))
	dash.Get("/vulnerabilities/distribution", dashboard.GetVulnerabilityDistribution(svc))
	dash.Get("/endpoints/health", dashboard.GetEndpointHealth(svc))

	api.Get("/tickets", tickets.ListTickets(svc))

	// Display-only collections
	api.Get("/vulnerabilities", operations.ListVulnerabilities(svc))
	api.Get("/endpoints", operations.ListEndpoints(svc))
	api.Get("/workflows", operations.ListWorkflows(svc))
	api.Get("/integrations", operations.ListIntegrations(svc))
	api.Get("/knowledge", operations.ListKnowledgeBase(svc))
	api.Get("/trend", operations.ListPerformanceTrend(svc))
	api.Get("/sla-targets", operations.ListSLATargets(svc))

	logger.Debug("API routes initialized")
}
