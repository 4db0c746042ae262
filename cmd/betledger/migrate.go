package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourusername/bet-ledger/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		created, err := database.Migrate(cmd.Context(), a.db)
		if err != nil {
			return err
		}
		if created {
			fmt.Println("Schema applied")
		} else {
			fmt.Println("Schema already up to date")
		}
		return nil
	},
}
