package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a report as JSON",
}

var (
	reportDays   int
	reportStart  string
	reportEnd    string
	reportLimit  int
	reportWindow int
)

var reportDailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Daily and cumulative profit",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if reportStart != "" || reportEnd != "" {
			loc := a.reports.Location()
			start, err := time.ParseInLocation(dateLayout, reportStart, loc)
			if err != nil {
				return fmt.Errorf("invalid --start %q: %w", reportStart, err)
			}
			end, err := time.ParseInLocation(dateLayout, reportEnd, loc)
			if err != nil {
				return fmt.Errorf("invalid --end %q: %w", reportEnd, err)
			}
			series, err := a.reports.DailyProfit(cmd.Context(), start, end)
			if err != nil {
				return err
			}
			return printJSON(series)
		}

		days := reportDays
		if days == 0 {
			days = a.cfg.Reports.DefaultDays
		}
		series, err := a.reports.ProfitEvolution(cmd.Context(), days)
		if err != nil {
			return err
		}
		return printJSON(series)
	},
}

var reportROICmd = &cobra.Command{
	Use:   "roi",
	Short: "ROI by sport",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		limit := reportLimit
		if limit == 0 {
			limit = a.cfg.Reports.DefaultROILimit
		}
		rows, err := a.reports.ROIBySport(cmd.Context(), limit)
		if err != nil {
			return err
		}
		return printJSON(rows)
	},
}

var reportMonthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Monthly profit summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		window := reportWindow
		if window == 0 {
			window = a.cfg.Reports.DefaultWindowDays
		}
		rows, err := a.reports.MonthlySummary(cmd.Context(), window)
		if err != nil {
			return err
		}
		return printJSON(rows)
	},
}

var reportDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Dashboard snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		snap, err := a.reports.Dashboard(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(snap)
	},
}

func init() {
	reportDailyCmd.Flags().IntVar(&reportDays, "days", 0, "Number of days ending today (default from config)")
	reportDailyCmd.Flags().StringVar(&reportStart, "start", "", "First day (YYYY-MM-DD), used with --end")
	reportDailyCmd.Flags().StringVar(&reportEnd, "end", "", "Last day (YYYY-MM-DD), used with --start")
	reportDailyCmd.MarkFlagsRequiredTogether("start", "end")
	reportDailyCmd.MarkFlagsMutuallyExclusive("days", "start")

	reportROICmd.Flags().IntVar(&reportLimit, "limit", 0, "Maximum number of sports (default from config)")
	reportMonthlyCmd.Flags().IntVar(&reportWindow, "window", 0, "Look-back window in days (default from config)")

	reportCmd.AddCommand(reportDailyCmd, reportROICmd, reportMonthlyCmd, reportDashboardCmd)
}
