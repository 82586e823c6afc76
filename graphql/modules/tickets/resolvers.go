// Package tickets implements the resolvers for the support queue.
package tickets

import (
	"github.com/ortelius/command-center/internal/services"
)

// ResolveTickets filters the full queue by the given tier and status selectors
func ResolveTickets(svc *services.DashboardService, tier, status string) (interface{}, error) {
	tickets, err := svc.Tickets(tier, status)
	if err != nil {
		return nil, err
	}
	return tickets, nil
}
