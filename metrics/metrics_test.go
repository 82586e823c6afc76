package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/ortelius/command-center/fixtures"
	"github.com/ortelius/command-center/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset(t *testing.T) model.Dataset {
	t.Helper()
	ds, err := fixtures.Sample()
	require.NoError(t, err)
	return ds
}

func ticket(id string, tier int, status model.TicketStatus, priority model.Priority, openFor time.Duration, breached bool) model.Ticket {
	created := time.Date(2024, 7, 2, 8, 0, 0, 0, time.UTC)
	return model.Ticket{
		ID:          id,
		Tier:        tier,
		Status:      status,
		Priority:    priority,
		CreatedAt:   created,
		UpdatedAt:   created.Add(openFor),
		SLABreached: breached,
	}
}

func TestGetTicketSummary_Sample(t *testing.T) {
	ds := sampleDataset(t)

	summary := GetTicketSummary(ds.Tickets)

	assert.Equal(t, 6, summary.Total)
	assert.Equal(t, 5, summary.Open)
	assert.Equal(t, 1, summary.Resolved)
	assert.Equal(t, 2, summary.Critical)
	assert.Equal(t, 1, summary.SLABreaches)
	// 340 + 446 + 427 + 0 + 166 minutes over five open tickets
	assert.InDelta(t, 1379.0/5/60, summary.AverageHoursOpen, 1e-9)
}

func TestGetTicketSummary(t *testing.T) {
	cases := []struct {
		name    string
		tickets []model.Ticket
		want    TicketSummary
	}{
		{
			name:    "empty queue",
			tickets: nil,
			want:    TicketSummary{AverageHoursOpen: 0.1},
		},
		{
			name: "resolved tickets do not count as critical or breached",
			tickets: []model.Ticket{
				ticket("a", 1, model.TicketStatusResolved, model.PriorityP1, 10*time.Hour, true),
				ticket("b", 2, model.TicketStatusEscalated, model.PriorityP1, 4*time.Hour, true),
			},
			want: TicketSummary{Total: 2, Open: 1, Resolved: 1, Critical: 1, SLABreaches: 1, AverageHoursOpen: 4},
		},
		{
			name: "average is floored at a tenth of an hour",
			tickets: []model.Ticket{
				ticket("a", 1, model.TicketStatusNew, model.PriorityP3, 0, false),
				ticket("b", 1, model.TicketStatusNew, model.PriorityP4, time.Minute, false),
			},
			want: TicketSummary{Total: 2, Open: 2, AverageHoursOpen: 0.1},
		},
		{
			name: "only resolved tickets",
			tickets: []model.Ticket{
				ticket("a", 1, model.TicketStatusResolved, model.PriorityP2, 3*time.Hour, false),
			},
			want: TicketSummary{Total: 1, Resolved: 1, AverageHoursOpen: 0.1},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := GetTicketSummary(c.tickets)
			assert.Equal(t, c.want.Total, got.Total)
			assert.Equal(t, c.want.Open, got.Open)
			assert.Equal(t, c.want.Resolved, got.Resolved)
			assert.Equal(t, c.want.Critical, got.Critical)
			assert.Equal(t, c.want.SLABreaches, got.SLABreaches)
			assert.InDelta(t, c.want.AverageHoursOpen, got.AverageHoursOpen, 1e-9)
		})
	}
}

func TestGetTicketSummary_Invariants(t *testing.T) {
	statuses := model.TicketStatuses
	priorities := model.Priorities

	var tickets []model.Ticket
	for i := 0; i < 40; i++ {
		tickets = append(tickets, ticket(
			"t", 1+i%2, statuses[i%len(statuses)], priorities[i%len(priorities)],
			time.Duration(i)*time.Hour, i%3 == 0,
		))
		summary := GetTicketSummary(tickets)

		assert.Equal(t, summary.Total, summary.Open+summary.Resolved)
		assert.LessOrEqual(t, summary.Critical, summary.Total)
		assert.LessOrEqual(t, summary.SLABreaches, summary.Total)
		assert.GreaterOrEqual(t, summary.AverageHoursOpen, 0.1)

		tiers := GetTierDistribution(tickets)
		assert.Equal(t, len(tickets), tiers.Tier1+tiers.Tier2)
		assert.GreaterOrEqual(t, tiers.Tier1Pct, 0)
		assert.LessOrEqual(t, tiers.Tier1Pct, 100)
	}
}

func TestGetTierDistribution(t *testing.T) {
	ds := sampleDataset(t)

	assert.Equal(t, TierDistribution{Tier1: 4, Tier2: 2, Tier1Pct: 67, Tier2Pct: 33}, GetTierDistribution(ds.Tickets))
	assert.Equal(t, TierDistribution{}, GetTierDistribution(nil))

	// 1 of 8 is 12.5%, which rounds away from zero
	tickets := make([]model.Ticket, 8)
	for i := range tickets {
		tickets[i] = ticket("t", 2, model.TicketStatusNew, model.PriorityP3, 0, false)
	}
	tickets[0].Tier = 1
	assert.Equal(t, TierDistribution{Tier1: 1, Tier2: 7, Tier1Pct: 13, Tier2Pct: 88}, GetTierDistribution(tickets))
}

func TestGetVulnerabilityDistribution(t *testing.T) {
	ds := sampleDataset(t)

	dist, err := GetVulnerabilityDistribution(ds.Vulnerabilities)
	require.NoError(t, err)

	assert.Equal(t, 1, dist.Critical)
	assert.Equal(t, 2, dist.High)
	assert.Equal(t, 1, dist.Medium)
	assert.Equal(t, 0, dist.Low)
	assert.Equal(t, 14+86+312+9, dist.TotalAssets)
	assert.Equal(t, 215, dist.Progress)
	assert.Equal(t, 54, dist.OverallProgress)

	for _, sev := range model.Severities {
		assert.GreaterOrEqual(t, dist.Count(sev), 0)
	}
	assert.Equal(t, 0, dist.Count("Informational"))
}

func TestGetVulnerabilityDistribution_Empty(t *testing.T) {
	dist, err := GetVulnerabilityDistribution(nil)
	require.NoError(t, err)
	assert.Equal(t, VulnerabilityDistribution{}, dist)
}

func TestGetVulnerabilityDistribution_UnknownSeverity(t *testing.T) {
	items := []model.Vulnerability{
		{ID: "VULN-1", Severity: model.SeverityLow, Progress: 10},
		{ID: "VULN-2", Severity: "Informational", Progress: 10},
	}

	dist, err := GetVulnerabilityDistribution(items)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSeverity))
	assert.Contains(t, err.Error(), "VULN-2")
	assert.Equal(t, VulnerabilityDistribution{}, dist)
}

func TestGetEndpointHealth(t *testing.T) {
	ds := sampleDataset(t)

	health, err := GetEndpointHealth(ds.Endpoints)
	require.NoError(t, err)

	assert.Equal(t, EndpointHealth{
		Healthy:         3,
		Warning:         2,
		Offline:         0,
		Vulnerabilities: 6,
		ComplianceScore: 89,
		Unencrypted:     1,
		Total:           5,
	}, health)
}

func TestGetEndpointHealth_Empty(t *testing.T) {
	health, err := GetEndpointHealth(nil)
	require.NoError(t, err)
	assert.Equal(t, EndpointHealth{}, health)
}

func TestGetEndpointHealth_UnknownHealth(t *testing.T) {
	endpoints := []model.Endpoint{{ID: "WS-1", Health: "Quarantined"}}

	_, err := GetEndpointHealth(endpoints)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownHealth))
}

func TestGetEndpointHealth_ScoreRange(t *testing.T) {
	cases := [][]int{{0}, {100}, {0, 100}, {99, 100, 100}, {1, 0, 0}}
	for _, levels := range cases {
		var endpoints []model.Endpoint
		for _, level := range levels {
			endpoints = append(endpoints, model.Endpoint{ID: "e", Health: model.HealthHealthy, PatchLevel: level, Encryption: true})
		}
		health, err := GetEndpointHealth(endpoints)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, health.ComplianceScore, 0)
		assert.LessOrEqual(t, health.ComplianceScore, 100)
	}
}

func TestGetVulnerabilityDistribution_ProgressRange(t *testing.T) {
	cases := []struct {
		progress []int
		want     int
	}{
		{nil, 0},
		{[]int{0}, 0},
		{[]int{0, 0, 0}, 0},
		{[]int{100}, 100},
		{[]int{100, 100}, 100},
		{[]int{0, 100}, 50},
		{[]int{99, 100, 100}, 100},
		{[]int{1, 0, 0}, 0},
	}
	for _, c := range cases {
		var items []model.Vulnerability
		for _, p := range c.progress {
			items = append(items, model.Vulnerability{ID: "v", Severity: model.SeverityLow, Progress: p})
		}
		dist, err := GetVulnerabilityDistribution(items)
		require.NoError(t, err)
		assert.Equal(t, c.want, dist.OverallProgress, "progress %v", c.progress)
		assert.GreaterOrEqual(t, dist.OverallProgress, 0)
		assert.LessOrEqual(t, dist.OverallProgress, 100)
	}
}

func TestAggregations_Idempotent(t *testing.T) {
	ds := sampleDataset(t)

	assert.Equal(t, GetTicketSummary(ds.Tickets), GetTicketSummary(ds.Tickets))
	assert.Equal(t, GetTierDistribution(ds.Tickets), GetTierDistribution(ds.Tickets))

	first, err := GetOverview(ds)
	require.NoError(t, err)
	second, err := GetOverview(ds)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetOverview(t *testing.T) {
	ds := sampleDataset(t)

	overview, err := GetOverview(ds)
	require.NoError(t, err)

	assert.Equal(t, 17, overview.ResolvedPct)
	assert.Equal(t, 50, overview.CriticalFocusPct)
	assert.Equal(t, 2, overview.OperationalIntegrations)
	assert.Equal(t, 3, overview.TotalIntegrations)
	assert.Equal(t, 421, overview.ExposedAssets)
	assert.Equal(t, 5, overview.EndpointsMonitored)
	assert.Equal(t, GetTicketSummary(ds.Tickets), overview.Tickets)
}

func TestGetOverview_CriticalFocusCapped(t *testing.T) {
	var ds model.Dataset
	for i := 0; i < 6; i++ {
		ds.Tickets = append(ds.Tickets, ticket("t", 2, model.TicketStatusEscalated, model.PriorityP1, time.Hour, false))
	}

	overview, err := GetOverview(ds)
	require.NoError(t, err)
	assert.Equal(t, 100, overview.CriticalFocusPct)
	assert.Equal(t, 0, overview.ResolvedPct)
}

func TestGetOverview_PropagatesAggregationErrors(t *testing.T) {
	ds := sampleDataset(t)
	ds.Endpoints = append(ds.Endpoints, model.Endpoint{ID: "X-1", Health: "Unknown"})

	_, err := GetOverview(ds)
	assert.ErrorIs(t, err, ErrUnknownHealth)
}
