package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/bet-ledger/internal/api"
	"github.com/yourusername/bet-ledger/internal/health"
	"github.com/yourusername/bet-ledger/internal/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServe(ctx)
	},
}

func runServe(ctx context.Context) error {
	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	a.log.WithFields(logrus.Fields{
		"environment": a.cfg.App.Environment,
		"log_level":   a.cfg.App.LogLevel,
		"version":     Version,
	}).Info("Bet ledger starting")

	if a.cfg.Metrics.Enabled {
		metrics.InitRegistry()
	}

	checker := health.NewChecker(a.cfg.App.Name, Version, a.db)
	server := api.NewServer(a.cfg, api.Dependencies{
		Bets:    a.bets,
		Reports: a.reports,
		Lookups: a.lookups,
		Health:  checker,
		Logger:  a.log,
	})
	checker.SetReady(true)

	if err := server.Run(ctx); err != nil {
		a.log.WithError(err).Error("API server stopped with error")
		return err
	}
	a.log.Info("Bet ledger stopped")
	return nil
}
