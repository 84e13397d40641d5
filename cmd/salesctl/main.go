package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"sales-browser/config"
	"sales-browser/internal/service"
	"sales-browser/internal/store"
	"sales-browser/internal/util"

	"github.com/spf13/cobra"
)

var databaseURL string

var rootCmd = &cobra.Command{
	Use:   "salesctl",
	Short: "Operator tooling for the sales browser",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if databaseURL == "" {
			databaseURL = cfg.Database.URL
		}
		return util.InitLogger(cfg.Server.Env, cfg.Server.LogLevel)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the sales schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.MigrateUp(databaseURL); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.MigrateDown(databaseURL); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "migration rolled back")
		return nil
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the applied schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		version, dirty, err := store.MigrationVersion(databaseURL)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", version, dirty)
		return nil
	},
}

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Print the current filter options as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.NewStore(databaseURL, store.DefaultOptions())
		if err != nil {
			return err
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		options, err := service.NewSalesService(db).GetFilterOptions(ctx)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(options)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "PostgreSQL URL (defaults to DATABASE_URL)")

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
	rootCmd.AddCommand(migrateCmd, optionsCmd)
}

func main() {
	defer util.SyncLogger()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
