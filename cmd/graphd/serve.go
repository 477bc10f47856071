// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphd/engine"
	"github.com/katalvlaran/graphd/internal/config"
	"github.com/katalvlaran/graphd/internal/log"
	"github.com/katalvlaran/graphd/internal/metrics"
	"github.com/katalvlaran/graphd/internal/server"
)

func newServeCmd(v *viper.Viper, load func() (*config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}

	f := cmd.Flags()
	f.String("addr", ":5000", "listen address")
	f.Bool("directed", false, "start with a directed graph")
	f.Bool("weighted", false, "start with a weighted graph")
	f.Bool("metrics", true, "serve Prometheus metrics on /metrics")
	_ = v.BindPFlag("server.address", f.Lookup("addr"))
	_ = v.BindPFlag("graph.directed", f.Lookup("directed"))
	_ = v.BindPFlag("graph.weighted", f.Lookup("weighted"))
	_ = v.BindPFlag("metrics.enabled", f.Lookup("metrics"))

	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	l, err := log.New(cfg.LogOpts())
	if err != nil {
		return fmt.Errorf("setting up logger: %w", err)
	}
	defer l.Close()

	opts := []engine.Option{
		engine.WithLogger(l.Named("engine").Logger),
		engine.WithInitialMode(cfg.Graph.Directed, cfg.Graph.Weighted),
	}
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		opts = append(opts, engine.WithObserver(m))
	}
	e := engine.New(opts...)

	l.Info("graphd starting",
		zap.String("addr", cfg.Server.Address),
		zap.Bool("directed", cfg.Graph.Directed),
		zap.Bool("weighted", cfg.Graph.Weighted),
		zap.Bool("metrics", cfg.Metrics.Enabled))

	return server.New(cfg, e, l, m).Start(ctx, cfg.Server.Address)
}
