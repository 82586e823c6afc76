// Package tui renders the dashboard cards in the terminal with termui.
package tui

import (
	"fmt"
	"slices"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/ortelius/command-center/internal/services"
	"github.com/ortelius/command-center/metrics"
	"github.com/ortelius/command-center/model"
)

// Title is shown in the header panel.
const Title = "IT Operations Command Center"

// Dashboard holds the widgets of one rendered frame.
type Dashboard struct {
	Header       *widgets.Paragraph
	Tickets      *widgets.Paragraph
	Tiers        *widgets.Gauge
	Severity     *widgets.BarChart
	Endpoints    *widgets.Paragraph
	Queue        *widgets.Table
	Integrations *widgets.List
}

// NewDashboard builds every widget from the overview and the filtered queue.
func NewDashboard(o metrics.Overview, queue []model.Ticket, integrations []model.IntegrationStatus, tier metrics.TierSelector, status metrics.StatusSelector) *Dashboard {
	return &Dashboard{
		Header:       NewHeader(o),
		Tickets:      NewTicketPanel(o.Tickets),
		Tiers:        NewTierGauge(o.Tiers),
		Severity:     NewSeverityChart(o.Vulnerabilities),
		Endpoints:    NewEndpointPanel(o.Endpoints),
		Queue:        NewTicketTable(queue, tier, status),
		Integrations: NewIntegrationList(integrations),
	}
}

// NewHeader shows the title and the headline counters.
func NewHeader(o metrics.Overview) *widgets.Paragraph {
	p := widgets.NewParagraph()
	p.Title = Title
	p.Text = fmt.Sprintf("Resolved %d%%   Critical focus %d%%   Integrations %d/%d operational   Exposed assets %d   Endpoints monitored %d",
		o.ResolvedPct, o.CriticalFocusPct, o.OperationalIntegrations, o.TotalIntegrations, o.ExposedAssets, o.EndpointsMonitored)
	p.BorderStyle.Fg = ui.ColorCyan
	return p
}

// NewTicketPanel renders the queue rollup.
func NewTicketPanel(s metrics.TicketSummary) *widgets.Paragraph {
	p := widgets.NewParagraph()
	p.Title = "Tickets"
	p.Text = fmt.Sprintf("Total      %d\nOpen       %d\nResolved   %d\nCritical   %d\nSLA breach %d\nAvg open   %.1fh",
		s.Total, s.Open, s.Resolved, s.Critical, s.SLABreaches, s.AverageHoursOpen)
	p.BorderStyle.Fg = ui.ColorYellow
	return p
}

// NewTierGauge fills the gauge with the tier 1 share.
func NewTierGauge(d metrics.TierDistribution) *widgets.Gauge {
	g := widgets.NewGauge()
	g.Title = "Tier split"
	g.Percent = d.Tier1Pct
	g.Label = fmt.Sprintf("Tier 1: %d (%d%%)  Tier 2: %d (%d%%)", d.Tier1, d.Tier1Pct, d.Tier2, d.Tier2Pct)
	g.BarColor = ui.ColorBlue
	return g
}

// NewSeverityChart plots one bar per severity, most severe first.
func NewSeverityChart(d metrics.VulnerabilityDistribution) *widgets.BarChart {
	bc := widgets.NewBarChart()
	bc.Title = fmt.Sprintf("Vulnerabilities (%d%% remediated)", d.OverallProgress)
	bc.BarWidth = 8
	bc.BarColors = []ui.Color{ui.ColorRed, ui.ColorMagenta, ui.ColorYellow, ui.ColorGreen}
	bc.NumFormatter = func(v float64) string { return fmt.Sprintf("%.0f", v) }
	for _, sev := range model.Severities {
		bc.Labels = append(bc.Labels, string(sev))
		bc.Data = append(bc.Data, float64(d.Count(sev)))
	}
	return bc
}

// NewEndpointPanel renders the fleet posture.
func NewEndpointPanel(h metrics.EndpointHealth) *widgets.Paragraph {
	p := widgets.NewParagraph()
	p.Title = "Endpoints"
	p.Text = fmt.Sprintf("Healthy     %d\nWarning     %d\nOffline     %d\nOpen vulns  %d\nCompliance  %d%%\nUnencrypted %d",
		h.Healthy, h.Warning, h.Offline, h.Vulnerabilities, h.ComplianceScore, h.Unencrypted)
	p.BorderStyle.Fg = ui.ColorGreen
	return p
}

// NewTicketTable lists the filtered queue with a header row.
func NewTicketTable(tickets []model.Ticket, tier metrics.TierSelector, status metrics.StatusSelector) *widgets.Table {
	t := widgets.NewTable()
	t.Title = fmt.Sprintf("Queue [%s / %s] (%d)  t: tier  s: status  q: quit", tier, status, len(tickets))
	t.TextStyle = ui.NewStyle(ui.ColorWhite)
	t.RowSeparator = false
	t.RowStyles[0] = ui.NewStyle(ui.ColorWhite, ui.ColorClear, ui.ModifierBold)

	t.Rows = [][]string{{"ID", "Title", "Tier", "Status", "Priority", "Integration"}}
	for _, ticket := range tickets {
		t.Rows = append(t.Rows, []string{
			ticket.ID,
			ticket.Title,
			fmt.Sprintf("%d", ticket.Tier),
			string(ticket.Status),
			string(ticket.Priority),
			string(ticket.Integration),
		})
		if ticket.SLABreached {
			t.RowStyles[len(t.Rows)-1] = ui.NewStyle(ui.ColorRed)
		}
	}
	return t
}

// NewIntegrationList shows one line per ticketing tool.
func NewIntegrationList(items []model.IntegrationStatus) *widgets.List {
	l := widgets.NewList()
	l.Title = "Integrations"
	for _, item := range items {
		l.Rows = append(l.Rows, fmt.Sprintf("%-12s %-11s %3dm lag  %d synced", item.Tool, item.Status, item.SyncLatencyMinutes, item.IncidentsSyncedToday))
	}
	return l
}

// NextTier cycles the tier toggle.
func NextTier(current metrics.TierSelector) metrics.TierSelector {
	i := slices.Index(metrics.TierSelectors, current)
	return metrics.TierSelectors[(i+1)%len(metrics.TierSelectors)]
}

// NextStatus cycles the status dropdown.
func NextStatus(current metrics.StatusSelector) metrics.StatusSelector {
	selectors := metrics.StatusSelectors()
	i := slices.Index(selectors, current)
	return selectors[(i+1)%len(selectors)]
}

func (d *Dashboard) grid(width, height int) *ui.Grid {
	grid := ui.NewGrid()
	grid.SetRect(0, 0, width, height)
	grid.Set(
		ui.NewRow(0.12, d.Header),
		ui.NewRow(0.33,
			ui.NewCol(0.25, d.Tickets),
			ui.NewCol(0.40, d.Severity),
			ui.NewCol(0.35, d.Endpoints),
		),
		ui.NewRow(0.10, d.Tiers),
		ui.NewRow(0.45,
			ui.NewCol(0.70, d.Queue),
			ui.NewCol(0.30, d.Integrations),
		),
	)
	return grid
}

// Run draws the dashboard and handles key presses until q or Ctrl-C.
// The selectors start at tier and status and are cycled with t and s.
func Run(svc *services.DashboardService, tier metrics.TierSelector, status metrics.StatusSelector) error {
	overview, err := svc.Overview()
	if err != nil {
		return err
	}
	integrations := svc.Integrations()

	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	defer ui.Close()

	draw := func() error {
		queue, err := svc.Tickets(string(tier), string(status))
		if err != nil {
			return err
		}
		width, height := ui.TerminalDimensions()
		ui.Render(NewDashboard(overview, queue, integrations, tier, status).grid(width, height))
		return nil
	}
	if err := draw(); err != nil {
		return err
	}

	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>":
			return nil
		case "t":
			tier = NextTier(tier)
		case "s":
			status = NextStatus(status)
		case "<Resize>":
		default:
			continue
		}
		if err := draw(); err != nil {
			return err
		}
	}
	return nil
}
