package cli

import (
	"github.com/ortelius/command-center/internal/tui"
	"github.com/ortelius/command-center/metrics"
	"github.com/spf13/cobra"
)

func newTUICommand(o *options) *cobra.Command {
	var tier, status string

	c := &cobra.Command{
		Use:   "tui",
		Short: "Render the dashboard in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := o.complete(cmd); err != nil {
				return err
			}
			tierSel, err := metrics.ParseTierSelector(tier)
			if err != nil {
				return err
			}
			statusSel, err := metrics.ParseStatusSelector(status)
			if err != nil {
				return err
			}

			svc, err := o.service()
			if err != nil {
				return err
			}
			return tui.Run(svc, tierSel, statusSel)
		},
	}

	c.Flags().StringVar(&tier, "tier", string(metrics.TierAll), "initial tier selector: All, 1 or 2")
	c.Flags().StringVar(&status, "status", string(metrics.StatusAll), "initial status selector")
	return c
}
