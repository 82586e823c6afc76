// Package endpoints implements the resolvers for managed endpoints.
package endpoints

import (
	"fmt"
	"strings"

	"github.com/ortelius/command-center/internal/services"
	"github.com/ortelius/command-center/metrics"
	"github.com/ortelius/command-center/model"
)

// ResolveEndpoints lists the fleet, optionally narrowed to one health state and/or
// to devices without disk encryption.
func ResolveEndpoints(svc *services.DashboardService, health string, unencryptedOnly bool) ([]model.Endpoint, error) {
	var wanted model.Health
	if health != "" {
		for _, h := range model.HealthStates {
			if strings.EqualFold(health, string(h)) {
				wanted = h
			}
		}
		if wanted == "" {
			return nil, fmt.Errorf("%w: health %q", metrics.ErrInvalidSelector, health)
		}
	}

	endpoints := svc.Endpoints()
	filtered := endpoints[:0]
	for _, endpoint := range endpoints {
		if wanted != "" && endpoint.Health != wanted {
			continue
		}
		if unencryptedOnly && endpoint.Encryption {
			continue
		}
		filtered = append(filtered, endpoint)
	}
	return filtered, nil
}
