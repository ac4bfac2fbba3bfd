// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/writer/internal/metrics"
	"github.com/pdiddy/writer/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API used by the web client",
	Long: `Serve exposes template listing, placeholder tables, and document
generation over HTTP, plus Prometheus metrics at /metrics. Requests from
the configured CORS origins are allowed. When the secrets directory holds
a server-token file, every request except GET / must carry it as a
bearer token.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc, cleanup, err := newService(ctx, false)
		if err != nil {
			return err
		}
		defer cleanup()

		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics.MustRegister(registry)

		if cfg.Server.Token == "" {
			log.Warn("no server-token secret found; API is open to any local client")
		}
		return server.New(cfg, svc, registry, log).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default 127.0.0.1:8000)")
	serveCmd.Flags().StringSlice("allowed-origin", nil, "CORS origin allowed to call the API (repeatable)")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("server.allowed_origins", serveCmd.Flags().Lookup("allowed-origin"))

	rootCmd.AddCommand(serveCmd)
}
