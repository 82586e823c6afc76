// Package cli wires the command center's cobra commands.
package cli

import (
	"strings"

	"github.com/ortelius/command-center/internal/config"
	"github.com/ortelius/command-center/internal/services"
	"github.com/ortelius/command-center/util"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// options carries the state shared by every subcommand.
type options struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
	logger     *zap.Logger
}

// NewCommand builds the root command and its subcommands.
func NewCommand(name string) *cobra.Command {
	o := &options{v: viper.New()}

	c := &cobra.Command{
		Use:           name,
		Short:         "IT operations command center",
		Long:          "Serves, reports and renders the IT operations command center dashboard.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c.PersistentFlags().StringVar(&o.configFile, "config", "", "Path to a YAML config file.")
	c.PersistentFlags().String("port", "3000", "HTTP listen port.")
	c.PersistentFlags().String("fixtures", "", "Path to a dataset YAML file. Empty uses the embedded sample.")
	c.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error).")
	c.PersistentFlags().String("cors-origins", "", "Comma separated list of allowed CORS origins.")
	c.PersistentFlags().Bool("metrics", true, "Expose Prometheus metrics at /metrics.")

	c.AddCommand(
		newServeCommand(o),
		newReportCommand(o),
		newTUICommand(o),
		newVersionCommand(),
	)

	return c
}

// complete resolves the configuration and logger. Only flags the user actually set
// override the environment and config file.
func (o *options) complete(cmd *cobra.Command) error {
	bindFlags(o.v, cmd.Flags())

	cfg, err := config.Load(o.v, o.configFile)
	if err != nil {
		return err
	}
	logger, err := util.InitLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = logger
	return nil
}

// service loads the dataset named by the resolved configuration.
func (o *options) service() (*services.DashboardService, error) {
	return services.LoadDashboardService(o.cfg.Fixtures, o.logger)
}

// bindFlags maps every changed flag onto its config key, e.g. --log-level to log_level.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.Visit(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if key == "config" {
			return
		}
		_ = v.BindPFlag(key, f)
	})
}
