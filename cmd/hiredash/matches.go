package main

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmarques/hiredash/internal/logger"
	"github.com/tmarques/hiredash/internal/views"
)

var (
	matchesCompany   string
	matchesCandidate string
	matchesSince     string
	matchesMinScore  float64
	matchesPage      int
	matchesPageSize  int
	matchesToggle    string
)

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Review candidate matches (admin)",
	Long:  "Fetch one page of job/candidate match results. Filtering happens server-side; the page shown is exactly what the server returned.",
	RunE:  runMatches,
}

func init() {
	matchesCmd.Flags().StringVar(&matchesCompany, "company", "", "Filter by company name")
	matchesCmd.Flags().StringVar(&matchesCandidate, "candidate", "", "Filter by candidate name")
	matchesCmd.Flags().StringVar(&matchesSince, "since", "", "Only jobs added since this date (YYYY-MM-DD)")
	matchesCmd.Flags().Float64Var(&matchesMinScore, "min-score", 0, "Minimum relevance score")
	matchesCmd.Flags().IntVar(&matchesPage, "page", 1, "Page number")
	matchesCmd.Flags().IntVar(&matchesPageSize, "page-size", 0, "Results per page (0 uses the configured default)")
	matchesCmd.Flags().StringVar(&matchesToggle, "toggle", "", "Toggle the sent/pending status of a match id on the fetched page")
	rootCmd.AddCommand(matchesCmd)
}

func runMatches(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	if _, err := app.requireView(cmd.Context(), true); err != nil {
		return err
	}

	filters := views.MatchesFilters{
		CompanyName:   matchesCompany,
		CandidateName: matchesCandidate,
		PageSize:      matchesPageSize,
	}
	if filters.PageSize == 0 {
		filters.PageSize = app.cfg.PageSize
	}
	if matchesSince != "" {
		since, err := time.Parse("2006-01-02", matchesSince)
		if err != nil {
			return fmt.Errorf("invalid --since date %q, expected YYYY-MM-DD", matchesSince)
		}
		filters.AddedSince = since
	}
	if cmd.Flags().Changed("min-score") {
		filters.MinScore = &matchesMinScore
	}

	loc := views.NewQueryLocation(url.Values{})
	loc.SetPage(matchesPage)
	controller := views.NewMatchesController(app.client, loc, logger.Get())
	defer controller.Close()

	if err := controller.SetFilters(cmd.Context(), filters); err != nil {
		return err
	}

	if matchesToggle != "" {
		if err := controller.ToggleStatus(cmd.Context(), matchesToggle); err != nil {
			return err
		}
		fmt.Printf("Toggled match %s\n", matchesToggle)
	}

	snap := controller.Snapshot()
	app.printer.PrintMatches(snap.Jobs, snap.Page, snap.TotalPages)
	return nil
}
