package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/SanjoDeundiak/process-metrics/pkg/lib/config"
	"github.com/SanjoDeundiak/process-metrics/pkg/lib/logging"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "pms-server",
		Short:         "Process metrics gRPC server",
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", fmt.Sprintf("path to YAML config file (env %s)", config.EnvConfigPath))

	return cmd
}

func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	srv, err := NewGRPCServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}
	logger.Info().
		Stringer("address", srv.Addr()).
		Bool("tls", srv.TLS()).
		Dur("window", cfg.Collector.Window).
		Dur("interval", cfg.Collector.SampleInterval).
		Msg("Server listening")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info().Msg("Shutting down")
		srv.Stop()
		return nil
	})

	return g.Wait()
}
