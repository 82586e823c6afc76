// Package operations implements the REST API handlers for the display-only collections.
package operations

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ortelius/command-center/internal/services"
)

// ListVulnerabilities returns the remediation board
func ListVulnerabilities(svc *services.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Vulnerabilities())
	}
}

// ListEndpoints returns the managed fleet
func ListEndpoints(svc *services.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Endpoints())
	}
}

// ListWorkflows returns the automated runbooks
func ListWorkflows(svc *services.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Workflows())
	}
}

// ListIntegrations returns the ticketing integration states
func ListIntegrations(svc *services.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Integrations())
	}
}

// ListKnowledgeBase returns the knowledge articles
func ListKnowledgeBase(svc *services.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.KnowledgeBase())
	}
}

// ListPerformanceTrend returns the weekly chart points
func ListPerformanceTrend(svc *services.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.PerformanceTrend())
	}
}

// ListSLATargets returns the response and resolution windows per priority
func ListSLATargets(svc *services.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.SLATargets())
	}
}
