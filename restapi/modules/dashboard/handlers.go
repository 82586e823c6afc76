// Package dashboard implements the REST API handlers for the dashboard summary cards.
package dashboard

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ortelius/command-center/internal/services"
	"github.com/ortelius/command-center/metrics"
)

// GetOverview returns every summary card in one response
func GetOverview(svc *services.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		overview, err := svc.Overview()
		if err != nil {
			return aggregationError(c, err)
		}
		return c.JSON(overview)
	}
}

// GetTicketSummary returns the open/resolved/SLA rollup
func GetTicketSummary(svc *services.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.TicketSummary())
	}
}

// GetTierDistribution returns the tier split
func GetTierDistribution(svc *services.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.TierDistribution())
	}
}

// GetVulnerabilityDistribution returns the severity breakdown
func GetVulnerabilityDistribution(svc *services.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dist, err := svc.VulnerabilityDistribution()
		if err != nil {
			return aggregationError(c, err)
		}
		return c.JSON(dist)
	}
}

// GetEndpointHealth returns the fleet health rollup
func GetEndpointHealth(svc *services.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		health, err := svc.EndpointHealth()
		if err != nil {
			return aggregationError(c, err)
		}
		return c.JSON(health)
	}
}

// aggregationError maps records the summaries refuse to count to 422 and anything else to 500.
func aggregationError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, metrics.ErrUnknownSeverity) || errors.Is(err, metrics.ErrUnknownHealth) {
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
