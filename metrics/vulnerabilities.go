package metrics

import (
	"fmt"

	"github.com/ortelius/command-center/model"
)

// VulnerabilityDistribution is the severity breakdown and remediation progress of the board.
type VulnerabilityDistribution struct {
	Critical        int `json:"critical" yaml:"critical"`
	High            int `json:"high" yaml:"high"`
	Medium          int `json:"medium" yaml:"medium"`
	Low             int `json:"low" yaml:"low"`
	TotalAssets     int `json:"total_assets" yaml:"total_assets"`
	Progress        int `json:"progress" yaml:"progress"` // sum of per-item progress
	OverallProgress int `json:"overall_progress" yaml:"overall_progress"`
}

// Count returns the bucket for sev, or 0 for an unknown severity.
func (d VulnerabilityDistribution) Count(sev model.Severity) int {
	switch sev {
	case model.SeverityCritical:
		return d.Critical
	case model.SeverityHigh:
		return d.High
	case model.SeverityMedium:
		return d.Medium
	case model.SeverityLow:
		return d.Low
	}
	return 0
}

// GetVulnerabilityDistribution buckets vulnerabilities by severity, sums the affected
// assets and averages the remediation progress.
//
// A severity outside the four known values fails the whole aggregation with
// ErrUnknownSeverity; a partial distribution is never returned.
func GetVulnerabilityDistribution(items []model.Vulnerability) (VulnerabilityDistribution, error) {
	var dist VulnerabilityDistribution
	for _, item := range items {
		switch item.Severity {
		case model.SeverityCritical:
			dist.Critical++
		case model.SeverityHigh:
			dist.High++
		case model.SeverityMedium:
			dist.Medium++
		case model.SeverityLow:
			dist.Low++
		default:
			return VulnerabilityDistribution{}, fmt.Errorf("vulnerability %s: %w %q", item.ID, ErrUnknownSeverity, item.Severity)
		}
		dist.TotalAssets += item.AffectedAssets
		dist.Progress += item.Progress
	}

	dist.OverallProgress = mean(dist.Progress, len(items))
	return dist, nil
}
