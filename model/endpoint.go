// Package model - managed endpoint records reported by the device management tooling
package model

// DeviceType represents the kind of managed device
type DeviceType string

const (
	// DeviceTypeWorkstation represents a fixed desktop.
	DeviceTypeWorkstation DeviceType = "Workstation"
	// DeviceTypeLaptop represents a portable corporate laptop.
	DeviceTypeLaptop DeviceType = "Laptop"
	// DeviceTypeMobile represents a phone or tablet enrolled in MDM.
	DeviceTypeMobile DeviceType = "Mobile"
	// DeviceTypeServer represents an on-premises or cloud server.
	DeviceTypeServer DeviceType = "Server"
	// DeviceTypeNetwork represents network gear such as firewalls and switches.
	DeviceTypeNetwork DeviceType = "Network"
)

// Valid reports whether d is one of the known device types.
func (d DeviceType) Valid() bool {
	switch d {
	case DeviceTypeWorkstation, DeviceTypeLaptop, DeviceTypeMobile, DeviceTypeServer, DeviceTypeNetwork:
		return true
	}
	return false
}

// Health is the reported state of an endpoint agent.
type Health string

const (
	HealthHealthy Health = "Healthy"
	HealthWarning Health = "Warning"
	HealthOffline Health = "Offline"
)

// HealthStates lists the three known health states.
var HealthStates = []Health{HealthHealthy, HealthWarning, HealthOffline}

// Valid reports whether h is one of the three known health states.
func (h Health) Valid() bool {
	switch h {
	case HealthHealthy, HealthWarning, HealthOffline:
		return true
	}
	return false
}

// Endpoint represents a managed device and its security posture
type Endpoint struct {
	ID              string     `json:"id" yaml:"id"`
	Owner           string     `json:"owner" yaml:"owner"`
	Type            DeviceType `json:"type" yaml:"type"`
	Platform        string     `json:"platform" yaml:"platform"`               // Free form, e.g. "Palo Alto OS 11.1".
	Location        string     `json:"location" yaml:"location"`               // Site or region, e.g. "Austin HQ".
	LastSeen        string     `json:"last_seen" yaml:"last_seen"`             // Human recency string, e.g. "4 minutes ago".
	Health          Health     `json:"health" yaml:"health"`                   // Agent health.
	Vulnerabilities int        `json:"vulnerabilities" yaml:"vulnerabilities"` // Open vulnerability count.
	PatchLevel      int        `json:"patch_level" yaml:"patch_level"`         // Percent of required patches applied.
	Encryption      bool       `json:"encryption" yaml:"encryption"`           // Disk encryption enabled.
}
