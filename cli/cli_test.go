package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := NewCommand("command-center")
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestReport_Table(t *testing.T) {
	out, err := run(t, "report", "--tier", "2", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "Queue (tier: Tier 2, status: All)")
	assert.Contains(t, out, "#INC-10411")
	assert.Contains(t, out, "#INC-10424")
	assert.NotContains(t, out, "#INC-10422")
	assert.Regexp(t, `Exposed assets\s+421`, out)
}

func TestReport_JSON(t *testing.T) {
	out, err := run(t, "report", "--status", "waiting", "-o", "json", "--log-level", "error")
	require.NoError(t, err)

	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "All", r.Tier)
	assert.Equal(t, "Waiting", r.Status)
	require.Len(t, r.Tickets, 1)
	assert.Equal(t, "#TASK-5098", r.Tickets[0].ID)
	assert.Equal(t, 54, r.Overview.Vulnerabilities.OverallProgress)
}

func TestReport_YAML(t *testing.T) {
	out, err := run(t, "report", "-o", "yaml", "--log-level", "error")
	require.NoError(t, err)

	for _, key := range []string{
		"sla_breaches: 1",
		"average_hours_open:",
		"tier1_pct: 67",
		"total_assets: 421",
		"overall_progress: 54",
		"compliance_score: 89",
		"resolved_pct: 17",
		"critical_focus_pct: 50",
	} {
		assert.Contains(t, out, key)
	}
	assert.NotContains(t, out, "slabreaches")
	assert.NotContains(t, out, "tier1pct")

	var r report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, 1, r.Overview.Tickets.SLABreaches)
	assert.Equal(t, 89, r.Overview.Endpoints.ComplianceScore)
	assert.Len(t, r.Tickets, 6)
}

func TestReport_InvalidSelector(t *testing.T) {
	_, err := run(t, "report", "--tier", "3", "--log-level", "error")
	assert.ErrorContains(t, err, "invalid selector")
}

func TestReport_UnknownFormat(t *testing.T) {
	_, err := run(t, "report", "-o", "xml", "--log-level", "error")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Command Center")
}
