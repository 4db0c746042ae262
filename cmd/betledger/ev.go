package main

import (
	"github.com/spf13/cobra"

	"github.com/yourusername/bet-ledger/internal/economics"
)

var evCmd = &cobra.Command{
	Use:   "ev PROBABILITY ODDS STAKE",
	Short: "Quick expected value calculation",
	Long: `Computes expected value, implied probability and potential profit of a
prospective bet without touching the database. PROBABILITY is in percent.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(economics.PreviewFromStrings(args[0], args[1], args[2]))
	},
}
