// Package exporter publishes the dashboard summaries as Prometheus gauges.
package exporter

import (
	"github.com/ortelius/command-center/metrics"
	"github.com/ortelius/command-center/model"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "command_center"

// Exporter holds the gauges mirroring each dashboard card.
type Exporter struct {
	Tickets             *prometheus.GaugeVec
	AverageHoursOpen    prometheus.Gauge
	Tiers               *prometheus.GaugeVec
	Vulnerabilities     *prometheus.GaugeVec
	ExposedAssets       prometheus.Gauge
	RemediationProgress prometheus.Gauge
	Endpoints           *prometheus.GaugeVec
	EndpointVulns       prometheus.Gauge
	ComplianceScore     prometheus.Gauge
	Unencrypted         prometheus.Gauge
	IntegrationUp       *prometheus.GaugeVec
}

// NewExporter creates the gauges and registers them with reg.
func NewExporter(reg prometheus.Registerer) (*Exporter, error) {
	e := &Exporter{
		Tickets: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "tickets",
				Help:      "Tickets in the queue by state (total, open, resolved, critical, sla_breached)",
			},
			[]string{"state"},
		),
		AverageHoursOpen: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "tickets_average_hours_open",
				Help:      "Mean hours between creation and last update of open tickets",
			},
		),
		Tiers: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "tickets_by_tier",
				Help:      "Tickets per support tier",
			},
			[]string{"tier"},
		),
		Vulnerabilities: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "vulnerabilities",
				Help:      "Tracked vulnerabilities by severity",
			},
			[]string{"severity"},
		),
		ExposedAssets: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "vulnerability_affected_assets",
				Help:      "Assets affected by tracked vulnerabilities",
			},
		),
		RemediationProgress: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "vulnerability_remediation_progress_percent",
				Help:      "Mean remediation progress across tracked vulnerabilities",
			},
		),
		Endpoints: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "endpoints",
				Help:      "Managed endpoints by health state",
			},
			[]string{"health"},
		),
		EndpointVulns: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "endpoint_open_vulnerabilities",
				Help:      "Open vulnerabilities across managed endpoints",
			},
		),
		ComplianceScore: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "endpoint_patch_compliance_percent",
				Help:      "Mean patch level across managed endpoints",
			},
		),
		Unencrypted: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "endpoints_unencrypted",
				Help:      "Managed endpoints without disk encryption",
			},
		),
		IntegrationUp: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "integration_up",
				Help:      "1 when the ticketing integration is Operational, 0 otherwise",
			},
			[]string{"tool", "status"},
		),
	}

	collectors := []prometheus.Collector{
		e.Tickets, e.AverageHoursOpen, e.Tiers,
		e.Vulnerabilities, e.ExposedAssets, e.RemediationProgress,
		e.Endpoints, e.EndpointVulns, e.ComplianceScore, e.Unencrypted,
		e.IntegrationUp,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Observe sets every gauge from the overview and the integration states.
func (e *Exporter) Observe(o metrics.Overview, integrations []model.IntegrationStatus) {
	e.Tickets.WithLabelValues("total").Set(float64(o.Tickets.Total))
	e.Tickets.WithLabelValues("open").Set(float64(o.Tickets.Open))
	e.Tickets.WithLabelValues("resolved").Set(float64(o.Tickets.Resolved))
	e.Tickets.WithLabelValues("critical").Set(float64(o.Tickets.Critical))
	e.Tickets.WithLabelValues("sla_breached").Set(float64(o.Tickets.SLABreaches))
	e.AverageHoursOpen.Set(o.Tickets.AverageHoursOpen)

	e.Tiers.WithLabelValues("1").Set(float64(o.Tiers.Tier1))
	e.Tiers.WithLabelValues("2").Set(float64(o.Tiers.Tier2))

	for _, sev := range model.Severities {
		e.Vulnerabilities.WithLabelValues(string(sev)).Set(float64(o.Vulnerabilities.Count(sev)))
	}
	e.ExposedAssets.Set(float64(o.Vulnerabilities.TotalAssets))
	e.RemediationProgress.Set(float64(o.Vulnerabilities.OverallProgress))

	e.Endpoints.WithLabelValues(string(model.HealthHealthy)).Set(float64(o.Endpoints.Healthy))
	e.Endpoints.WithLabelValues(string(model.HealthWarning)).Set(float64(o.Endpoints.Warning))
	e.Endpoints.WithLabelValues(string(model.HealthOffline)).Set(float64(o.Endpoints.Offline))
	e.EndpointVulns.Set(float64(o.Endpoints.Vulnerabilities))
	e.ComplianceScore.Set(float64(o.Endpoints.ComplianceScore))
	e.Unencrypted.Set(float64(o.Endpoints.Unencrypted))

	e.IntegrationUp.Reset()
	for _, integration := range integrations {
		up := 0.0
		if integration.Status == model.IntegrationOperational {
			up = 1
		}
		e.IntegrationUp.WithLabelValues(string(integration.Tool), string(integration.Status)).Set(up)
	}
}
