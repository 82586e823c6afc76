package graphql

import (
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/ortelius/command-center/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, query string, variables map[string]interface{}) *graphql.Result {
	t.Helper()
	svc, err := services.LoadDashboardService("", nil)
	require.NoError(t, err)
	schema, err := CreateSchema(svc)
	require.NoError(t, err)

	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: variables,
	})
}

func TestDashboardOverviewQuery(t *testing.T) {
	result := execute(t, `{
		dashboardOverview {
			resolved_pct
			critical_focus_pct
			operational_integrations
			total_integrations
			tickets { total open resolved critical sla_breaches }
			tiers { tier1 tier2 tier1_pct tier2_pct }
			vulnerabilities { critical high medium low total_assets overall_progress }
			endpoints { healthy warning offline unencrypted compliance_score total }
		}
	}`, nil)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	overview := data["dashboardOverview"].(map[string]interface{})
	assert.Equal(t, 17, overview["resolved_pct"])
	assert.Equal(t, 50, overview["critical_focus_pct"])
	assert.Equal(t, 2, overview["operational_integrations"])
	assert.Equal(t, 3, overview["total_integrations"])

	tickets := overview["tickets"].(map[string]interface{})
	assert.Equal(t, 6, tickets["total"])
	assert.Equal(t, 5, tickets["open"])
	assert.Equal(t, 1, tickets["resolved"])

	tiers := overview["tiers"].(map[string]interface{})
	assert.Equal(t, 67, tiers["tier1_pct"])
	assert.Equal(t, 33, tiers["tier2_pct"])

	vulns := overview["vulnerabilities"].(map[string]interface{})
	assert.Equal(t, 2, vulns["high"])
	assert.Equal(t, 421, vulns["total_assets"])
	assert.Equal(t, 54, vulns["overall_progress"])

	endpoints := overview["endpoints"].(map[string]interface{})
	assert.Equal(t, 1, endpoints["unencrypted"])
	assert.Equal(t, 89, endpoints["compliance_score"])
}

func TestTicketSummaryQuery(t *testing.T) {
	result := execute(t, `{ ticketSummary { average_hours_open } }`, nil)
	require.Empty(t, result.Errors)

	summary := result.Data.(map[string]interface{})["ticketSummary"].(map[string]interface{})
	assert.InDelta(t, 4.5967, summary["average_hours_open"], 1e-4)
}

func TestTicketsQuery(t *testing.T) {
	result := execute(t, `query($tier: String) {
		tickets(tier: $tier) { id tier status severity sla_response_minutes sla_resolution_hours created_at }
	}`, map[string]interface{}{"tier": "Tier 2"})
	require.Empty(t, result.Errors)

	tickets := result.Data.(map[string]interface{})["tickets"].([]interface{})
	require.Len(t, tickets, 2)

	first := tickets[0].(map[string]interface{})
	assert.Equal(t, "#INC-10411", first["id"])
	assert.Equal(t, "Critical", first["severity"])
	assert.Equal(t, 15, first["sla_response_minutes"])
	assert.Equal(t, 4, first["sla_resolution_hours"])
	assert.Equal(t, "2024-07-01T22:05:00Z", first["created_at"])
	assert.Equal(t, "#INC-10424", tickets[1].(map[string]interface{})["id"])
}

func TestTicketsQuery_InvalidSelector(t *testing.T) {
	result := execute(t, `{ tickets(status: "Closed") { id } }`, nil)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, "invalid selector: status")
}

func TestCollectionQueries(t *testing.T) {
	result := execute(t, `{
		vulnerabilities(severity: "high") { id severity }
		endpoints(unencrypted: true) { id encryption }
		workflows { id steps }
		integrations { tool status }
		knowledgeBase { id }
		performanceTrend { label tickets_resolved }
		slaTargets { priority response_minutes resolution_hours }
	}`, nil)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	assert.Len(t, data["vulnerabilities"], 2)

	endpoints := data["endpoints"].([]interface{})
	require.Len(t, endpoints, 1)
	assert.Equal(t, "FW-28", endpoints[0].(map[string]interface{})["id"])

	workflows := data["workflows"].([]interface{})
	require.Len(t, workflows, 3)
	assert.Len(t, workflows[0].(map[string]interface{})["steps"], 4)

	assert.Len(t, data["integrations"], 3)
	assert.Len(t, data["knowledgeBase"], 3)
	assert.Len(t, data["performanceTrend"], 5)

	targets := data["slaTargets"].([]interface{})
	require.Len(t, targets, 4)
	assert.Equal(t, "P1", targets[0].(map[string]interface{})["priority"])
}

func TestVulnerabilitiesQuery_UnknownSeverity(t *testing.T) {
	result := execute(t, `{ vulnerabilities(severity: "Severe") { id } }`, nil)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, `invalid selector: severity "Severe"`)
}

func TestEndpointsQuery_UnknownHealth(t *testing.T) {
	result := execute(t, `{ endpoints(health: "Broken") { id } }`, nil)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, `invalid selector: health "Broken"`)
}
