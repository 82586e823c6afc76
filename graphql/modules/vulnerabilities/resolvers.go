// Package vulnerabilities implements the resolvers for vulnerability data.
package vulnerabilities

import (
	"fmt"
	"strings"

	"github.com/ortelius/command-center/internal/services"
	"github.com/ortelius/command-center/metrics"
	"github.com/ortelius/command-center/model"
)

// ResolveVulnerabilities lists the board in its stored order, optionally narrowed to one
// severity (matched case-insensitively) and capped at limit entries.
func ResolveVulnerabilities(svc *services.DashboardService, severity string, limit int) ([]model.Vulnerability, error) {
	items := svc.Vulnerabilities()

	if severity != "" {
		var wanted model.Severity
		for _, sev := range model.Severities {
			if strings.EqualFold(severity, string(sev)) {
				wanted = sev
			}
		}
		if wanted == "" {
			return nil, fmt.Errorf("%w: severity %q", metrics.ErrInvalidSelector, severity)
		}

		filtered := items[:0]
		for _, item := range items {
			if item.Severity == wanted {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	if limit > 0 && len(items) > limit {
		return items[:limit], nil
	}
	return items, nil
}
