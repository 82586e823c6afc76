package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ortelius/command-center/internal/api"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over REST and GraphQL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := o.complete(cmd); err != nil {
				return err
			}
			defer func() { _ = o.logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return o.serve(ctx)
		},
	}
}

func (o *options) serve(ctx context.Context) error {
	svc, err := o.service()
	if err != nil {
		return err
	}

	app, err := api.NewFiberApp(svc, o.cfg, o.logger, prometheus.NewRegistry())
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		o.logger.Info("Starting server",
			zap.String("addr", o.cfg.ListenAddr()),
			zap.String("graphql", "/api/v1/graphql"),
		)
		errCh <- app.Listen(o.cfg.ListenAddr())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	o.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
