package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ortelius/command-center/metrics"
	"github.com/ortelius/command-center/model"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

type reportOptions struct {
	*options
	tier   string
	status string
	format string
}

// report is the machine readable form of the report command output.
type report struct {
	Overview metrics.Overview `json:"overview" yaml:"overview"`
	Tier     string           `json:"tier" yaml:"tier"`
	Status   string           `json:"status" yaml:"status"`
	Tickets  []model.Ticket   `json:"tickets" yaml:"tickets"`
}

func newReportCommand(o *options) *cobra.Command {
	r := &reportOptions{options: o}

	c := &cobra.Command{
		Use:   "report",
		Short: "Print the dashboard summaries and the filtered ticket queue",
		Example: `command-center report --tier 2 --status All
command-center report --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := r.complete(cmd); err != nil {
				return err
			}
			return r.run(cmd.OutOrStdout())
		},
	}

	c.Flags().StringVar(&r.tier, "tier", string(metrics.TierAll), "tier selector: All, 1 or 2")
	c.Flags().StringVar(&r.status, "status", string(metrics.StatusAll), "status selector: All, New, In Progress, Waiting, Escalated, Resolved")
	c.Flags().StringVarP(&r.format, "format", "o", "table", "output format: table, json or yaml")
	return c
}

func (r *reportOptions) run(w io.Writer) error {
	svc, err := r.service()
	if err != nil {
		return err
	}

	overview, err := svc.Overview()
	if err != nil {
		return err
	}
	tickets, err := svc.Tickets(r.tier, r.status)
	if err != nil {
		return err
	}

	// Echo the normalized selectors rather than the raw flag text.
	tierSel, _ := metrics.ParseTierSelector(r.tier)
	statusSel, _ := metrics.ParseStatusSelector(r.status)
	out := report{Overview: overview, Tier: string(tierSel), Status: string(statusSel), Tickets: tickets}

	switch r.format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		data, err := yaml.Marshal(out)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "table":
		printReport(w, out)
		return nil
	}
	return fmt.Errorf("unknown output format %q", r.format)
}

func printReport(out io.Writer, r report) {
	o := r.Overview
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)

	_, _ = fmt.Fprintln(w, "SUMMARY\tVALUE")
	_, _ = fmt.Fprintf(w, "Tickets open\t%d of %d\n", o.Tickets.Open, o.Tickets.Total)
	_, _ = fmt.Fprintf(w, "Tickets resolved\t%d (%d%%)\n", o.Tickets.Resolved, o.ResolvedPct)
	_, _ = fmt.Fprintf(w, "Critical (P1)\t%d\n", o.Tickets.Critical)
	_, _ = fmt.Fprintf(w, "SLA breaches\t%d\n", o.Tickets.SLABreaches)
	_, _ = fmt.Fprintf(w, "Average hours open\t%.1f\n", o.Tickets.AverageHoursOpen)
	_, _ = fmt.Fprintf(w, "Tier 1 / Tier 2\t%d (%d%%) / %d (%d%%)\n", o.Tiers.Tier1, o.Tiers.Tier1Pct, o.Tiers.Tier2, o.Tiers.Tier2Pct)
	_, _ = fmt.Fprintf(w, "Vulnerabilities C/H/M/L\t%d/%d/%d/%d\n", o.Vulnerabilities.Critical, o.Vulnerabilities.High, o.Vulnerabilities.Medium, o.Vulnerabilities.Low)
	_, _ = fmt.Fprintf(w, "Exposed assets\t%d\n", o.ExposedAssets)
	_, _ = fmt.Fprintf(w, "Remediation progress\t%d%%\n", o.Vulnerabilities.OverallProgress)
	_, _ = fmt.Fprintf(w, "Endpoints healthy/warning/offline\t%d/%d/%d\n", o.Endpoints.Healthy, o.Endpoints.Warning, o.Endpoints.Offline)
	_, _ = fmt.Fprintf(w, "Patch compliance\t%d%%\n", o.Endpoints.ComplianceScore)
	_, _ = fmt.Fprintf(w, "Unencrypted endpoints\t%d\n", o.Endpoints.Unencrypted)
	_, _ = fmt.Fprintf(w, "Integrations operational\t%d/%d\n", o.OperationalIntegrations, o.TotalIntegrations)
	_ = w.Flush()

	_, _ = fmt.Fprintf(out, "\nQueue (tier: %s, status: %s)\n", r.Tier, r.Status)
	if len(r.Tickets) == 0 {
		_, _ = fmt.Fprintln(out, "No tickets found")
		return
	}

	w = tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTIER\tSTATUS\tPRIORITY\tINTEGRATION\tSLA\tTITLE")
	for _, t := range r.Tickets {
		sla := "ok"
		if t.SLABreached {
			sla = "breached"
		}
		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n", t.ID, t.Tier, t.Status, t.Priority, t.Integration, sla, t.Title)
	}
	_ = w.Flush()
}
