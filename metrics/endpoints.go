package metrics

import (
	"fmt"

	"github.com/ortelius/command-center/model"
)

// EndpointHealth is the fleet posture shown on the endpoint compliance card.
type EndpointHealth struct {
	Healthy         int `json:"healthy" yaml:"healthy"`
	Warning         int `json:"warning" yaml:"warning"`
	Offline         int `json:"offline" yaml:"offline"`
	Vulnerabilities int `json:"vulnerabilities" yaml:"vulnerabilities"`
	ComplianceScore int `json:"compliance_score" yaml:"compliance_score"`
	Unencrypted     int `json:"unencrypted" yaml:"unencrypted"`
	Total           int `json:"total" yaml:"total"`
}

// GetEndpointHealth counts endpoints per health state, sums open vulnerabilities,
// averages patch levels into a compliance score and counts unencrypted devices.
//
// A health state outside Healthy/Warning/Offline fails with ErrUnknownHealth.
func GetEndpointHealth(endpoints []model.Endpoint) (EndpointHealth, error) {
	health := EndpointHealth{Total: len(endpoints)}

	var patchLevels int
	for _, endpoint := range endpoints {
		switch endpoint.Health {
		case model.HealthHealthy:
			health.Healthy++
		case model.HealthWarning:
			health.Warning++
		case model.HealthOffline:
			health.Offline++
		default:
			return EndpointHealth{}, fmt.Errorf("endpoint %s: %w %q", endpoint.ID, ErrUnknownHealth, endpoint.Health)
		}
		health.Vulnerabilities += endpoint.Vulnerabilities
		patchLevels += endpoint.PatchLevel
		if !endpoint.Encryption {
			health.Unencrypted++
		}
	}

	health.ComplianceScore = mean(patchLevels, len(endpoints))
	return health, nil
}
