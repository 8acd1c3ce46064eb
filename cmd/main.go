package main

import (
	"context"
	"encoding/json"
	"os"

	"kist-clinic-backend/cmd/bootstrap"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic",
		Short: "Clinic management backend",
		// Bare invocation starts the API server.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	var dryRun bool
	purgeCmd := &cobra.Command{
		Use:   "purge-records",
		Short: "Delete medical records past the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPurge(cmd.Context(), dryRun)
		},
	}
	purgeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report eligible records without deleting anything")

	rootCmd.AddCommand(serveCmd, purgeCmd)

	if err := rootCmd.Execute(); err != nil {
		logrus.Fatalf("Command failed: %v", err)
	}
}

func runServe() error {
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	app.Run()
	return nil
}

func runPurge(ctx context.Context, dryRun bool) error {
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Close()

	result, err := app.Retention.PurgeOldRecords(ctx, dryRun)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
