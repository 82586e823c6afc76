// Package tickets implements the REST API handlers for the support queue.
package tickets

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ortelius/command-center/internal/services"
	"github.com/ortelius/command-center/metrics"
)

// ListTickets handles GET /tickets?tier=&status=. Missing selectors default to All.
func ListTickets(svc *services.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tickets, err := svc.Tickets(c.Query("tier"), c.Query("status"))
		if err != nil {
			if errors.Is(err, metrics.ErrInvalidSelector) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"count":   len(tickets),
			"tickets": tickets,
		})
	}
}
