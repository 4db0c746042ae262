// Package main provides the betledger command line: the API server, schema
// migration and direct access to the bet write path and reports.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/bet-ledger/internal/config"
	"github.com/yourusername/bet-ledger/internal/database"
	"github.com/yourusername/bet-ledger/internal/logger"
	"github.com/yourusername/bet-ledger/internal/repository"
	"github.com/yourusername/bet-ledger/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:          "betledger",
	Short:        "Personal sports-betting ledger",
	Long:         `Records bets, settles them and reports profit, ROI and expected value.`,
	Version:      fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")

	rootCmd.AddCommand(serveCmd, migrateCmd, betCmd, reportCmd, evCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// app holds the wired dependencies shared by the subcommands.
type app struct {
	cfg     *config.Config
	log     *logrus.Logger
	db      *database.DB
	repos   *repository.Repositories
	cache   *service.ReportCache
	bets    *service.BetService
	reports *service.ReportService
	lookups *service.LookupService
}

// loadConfig reads, overlays secrets and validates the configuration.
func loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := config.LoadWithDefaults(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if config.SecretsEnabled() {
		if err := config.LoadSecretsFromAWS(ctx, cfg); err != nil {
			return nil, fmt.Errorf("failed to load secrets: %w", err)
		}
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setup connects to the database and builds the services.
func setup(ctx context.Context) (*app, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	appLog := logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)

	loc, err := cfg.Reports.Location()
	if err != nil {
		return nil, err
	}

	db, err := database.NewDB(ctx, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repos, err := repository.NewRepositories(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	cache := service.NewReportCache(cfg.Reports.CacheTTL())

	return &app{
		cfg:     cfg,
		log:     appLog,
		db:      db,
		repos:   repos,
		cache:   cache,
		bets:    service.NewBetService(db, repos, cache, appLog),
		reports: service.NewReportService(repos, service.ReportOptions{Location: loc, Cache: cache, MaxSpanDays: cfg.Reports.MaxSpanDays}, appLog),
		lookups: service.NewLookupService(repos, cache, appLog),
	}, nil
}

func (a *app) Close() {
	a.db.Close()
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
