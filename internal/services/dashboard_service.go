// Package services provides the read-only dashboard service shared by the GraphQL,
// REST, report and terminal surfaces.
package services

import (
	"fmt"
	"slices"

	"github.com/ortelius/command-center/fixtures"
	"github.com/ortelius/command-center/metrics"
	"github.com/ortelius/command-center/model"
	"go.uber.org/zap"
)

// DashboardService serves summaries and collections from a dataset loaded once at startup.
// It holds no mutable state and is safe for concurrent use.
type DashboardService struct {
	dataset model.Dataset
	logger  *zap.Logger
}

// NewDashboardService wraps an already validated dataset.
func NewDashboardService(ds model.Dataset, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{dataset: ds, logger: logger}
}

// LoadDashboardService loads the dataset at path (or the embedded sample when empty)
// and wraps it in a service.
func LoadDashboardService(path string, logger *zap.Logger) (*DashboardService, error) {
	ds, err := fixtures.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	svc := NewDashboardService(ds, logger)
	source := path
	if source == "" {
		source = "embedded sample"
	}
	svc.logger.Info("Dataset loaded",
		zap.String("source", source),
		zap.Int("tickets", len(ds.Tickets)),
		zap.Int("vulnerabilities", len(ds.Vulnerabilities)),
		zap.Int("endpoints", len(ds.Endpoints)),
	)
	return svc, nil
}

// Overview returns every dashboard summary in one value.
func (s *DashboardService) Overview() (metrics.Overview, error) {
	overview, err := metrics.GetOverview(s.dataset)
	if err != nil {
		s.logger.Error("Failed to compute overview", zap.Error(err))
	}
	return overview, err
}

// TicketSummary returns the open/resolved/SLA rollup of the full queue.
func (s *DashboardService) TicketSummary() metrics.TicketSummary {
	return metrics.GetTicketSummary(s.dataset.Tickets)
}

// TierDistribution returns the tier split of the full queue.
func (s *DashboardService) TierDistribution() metrics.TierDistribution {
	return metrics.GetTierDistribution(s.dataset.Tickets)
}

// VulnerabilityDistribution returns the severity breakdown of the remediation board.
func (s *DashboardService) VulnerabilityDistribution() (metrics.VulnerabilityDistribution, error) {
	dist, err := metrics.GetVulnerabilityDistribution(s.dataset.Vulnerabilities)
	if err != nil {
		s.logger.Error("Failed to compute vulnerability distribution", zap.Error(err))
	}
	return dist, err
}

// EndpointHealth returns the fleet health rollup.
func (s *DashboardService) EndpointHealth() (metrics.EndpointHealth, error) {
	health, err := metrics.GetEndpointHealth(s.dataset.Endpoints)
	if err != nil {
		s.logger.Error("Failed to compute endpoint health", zap.Error(err))
	}
	return health, err
}

// Tickets parses the tier and status selectors and filters the full queue.
// The filter always starts from the complete ticket list.
func (s *DashboardService) Tickets(tier, status string) ([]model.Ticket, error) {
	tierSel, err := metrics.ParseTierSelector(tier)
	if err != nil {
		return nil, err
	}
	statusSel, err := metrics.ParseStatusSelector(status)
	if err != nil {
		return nil, err
	}
	return metrics.FilterTickets(s.dataset.Tickets, tierSel, statusSel), nil
}

// Vulnerabilities returns a copy of the remediation board.
func (s *DashboardService) Vulnerabilities() []model.Vulnerability {
	return slices.Clone(s.dataset.Vulnerabilities)
}

// Endpoints returns a copy of the managed fleet.
func (s *DashboardService) Endpoints() []model.Endpoint {
	return slices.Clone(s.dataset.Endpoints)
}

// Workflows returns a copy of the automated runbooks.
func (s *DashboardService) Workflows() []model.Workflow {
	return slices.Clone(s.dataset.Workflows)
}

// Integrations returns a copy of the ticketing integration states.
func (s *DashboardService) Integrations() []model.IntegrationStatus {
	return slices.Clone(s.dataset.Integrations)
}

// KnowledgeBase returns a copy of the knowledge articles.
func (s *DashboardService) KnowledgeBase() []model.KnowledgeArticle {
	return slices.Clone(s.dataset.KnowledgeBase)
}

// PerformanceTrend returns a copy of the weekly performance points.
func (s *DashboardService) PerformanceTrend() []model.PerformanceTrendPoint {
	return slices.Clone(s.dataset.PerformanceTrend)
}

// SLATargets returns the per-priority SLA windows, P1 first.
func (s *DashboardService) SLATargets() []model.SLATarget {
	return s.dataset.SLATargets.List()
}

// SLATarget returns the SLA windows for one priority.
func (s *DashboardService) SLATarget(p model.Priority) (model.SLATarget, bool) {
	return s.dataset.SLATargets.For(p)
}
