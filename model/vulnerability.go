// Package model - vulnerability records tracked by the remediation board
package model

// Severity is the ordinal risk rating of a vulnerability (Critical > High > Medium > Low).
type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityHigh     Severity = "High"
	SeverityMedium   Severity = "Medium"
	SeverityLow      Severity = "Low"
)

// Severities lists the severities from most to least severe.
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// Valid reports whether s is one of the four known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// Exposure tells whether the affected assets are reachable from outside the network.
type Exposure string

const (
	ExposureExternal Exposure = "External"
	ExposureInternal Exposure = "Internal"
)

// Valid reports whether e is a known exposure.
func (e Exposure) Valid() bool {
	return e == ExposureExternal || e == ExposureInternal
}

// Vulnerability is a CVE being remediated across a set of assets.
type Vulnerability struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	CVE            string   `json:"cve" yaml:"cve"`
	Severity       Severity `json:"severity" yaml:"severity"`
	AffectedAssets int      `json:"affected_assets" yaml:"affected_assets"`
	Exposure       Exposure `json:"exposure" yaml:"exposure"`
	RemediationETA string   `json:"remediation_eta" yaml:"remediation_eta"` // YYYY-MM-DD
	Owner          string   `json:"owner" yaml:"owner"`
	Progress       int      `json:"progress" yaml:"progress"` // percent, 0-100
}
