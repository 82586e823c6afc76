package tui

import (
	"testing"

	"github.com/ortelius/command-center/fixtures"
	"github.com/ortelius/command-center/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDashboard(t *testing.T) {
	ds, err := fixtures.Sample()
	require.NoError(t, err)
	overview, err := metrics.GetOverview(ds)
	require.NoError(t, err)
	queue := metrics.FilterTickets(ds.Tickets, metrics.Tier2, metrics.StatusAll)

	d := NewDashboard(overview, queue, ds.Integrations, metrics.Tier2, metrics.StatusAll)

	assert.Contains(t, d.Header.Text, "Resolved 17%")
	assert.Contains(t, d.Header.Text, "Integrations 2/3 operational")
	assert.Contains(t, d.Tickets.Text, "Open       5")
	assert.Contains(t, d.Tickets.Text, "Avg open   4.6h")
	assert.Equal(t, 67, d.Tiers.Percent)
	assert.Equal(t, []string{"Critical", "High", "Medium", "Low"}, d.Severity.Labels)
	assert.Equal(t, []float64{1, 2, 1, 0}, d.Severity.Data)
	assert.Contains(t, d.Endpoints.Text, "Compliance  89%")

	// header row plus the two tier 2 tickets
	require.Len(t, d.Queue.Rows, 3)
	assert.Equal(t, "#INC-10411", d.Queue.Rows[1][0])
	assert.Equal(t, "#INC-10424", d.Queue.Rows[2][0])
	assert.Contains(t, d.Queue.Title, "Tier 2 / All")
	_, breached := d.Queue.RowStyles[2]
	assert.True(t, breached)

	assert.Len(t, d.Integrations.Rows, 3)
}

func TestNextSelectors(t *testing.T) {
	assert.Equal(t, metrics.Tier1, NextTier(metrics.TierAll))
	assert.Equal(t, metrics.Tier2, NextTier(metrics.Tier1))
	assert.Equal(t, metrics.TierAll, NextTier(metrics.Tier2))

	status := metrics.StatusAll
	seen := map[metrics.StatusSelector]bool{}
	for range metrics.StatusSelectors() {
		seen[status] = true
		status = NextStatus(status)
	}
	assert.Equal(t, metrics.StatusAll, status)
	assert.Len(t, seen, 6)
}
