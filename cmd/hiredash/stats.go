package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tmarques/hiredash/internal/types"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the dashboard counters (admin)",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	if _, err := app.requireView(cmd.Context(), true); err != nil {
		return err
	}

	var (
		stats     types.Stats
		companies []types.CompanyRecord
	)

	group, ctx := errgroup.WithContext(cmd.Context())
	group.Go(func() error {
		var err error
		stats, err = app.client.Stats(ctx)
		return err
	})
	group.Go(func() error {
		var err error
		companies, err = app.client.Companies(ctx)
		return err
	})
	if err := group.Wait(); err != nil {
		return err
	}

	app.printer.PrintStats(stats)
	app.printer.PrintCompanies(companies)
	return nil
}
