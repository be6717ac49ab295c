package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmarques/hiredash/internal/logger"
	"github.com/tmarques/hiredash/internal/types"
	"github.com/tmarques/hiredash/internal/views"
)

var (
	listingsSearch  string
	listingsCompany string
	listingsAge     string
	listingsSort    string
	listingsDesc    bool
)

var listingsCmd = &cobra.Command{
	Use:   "listings",
	Short: "Browse job listings",
	Long:  "Fetch the full listing set and filter/sort it locally. Free-text search covers title, company and id; company and age filters are exact.",
	RunE:  runListings,
}

func init() {
	listingsCmd.Flags().StringVar(&listingsSearch, "search", "", "Free-text search across title, company and id")
	listingsCmd.Flags().StringVar(&listingsCompany, "company", "", "Exact company filter")
	listingsCmd.Flags().StringVar(&listingsAge, "age", "", "Age category filter (New, Fresh, Stale, Old)")
	listingsCmd.Flags().StringVar(&listingsSort, "sort", "", "Sort field (id, title, company, posted, age)")
	listingsCmd.Flags().BoolVar(&listingsDesc, "desc", false, "Sort descending")
	rootCmd.AddCommand(listingsCmd)
}

func runListings(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	if _, err := app.requireView(cmd.Context(), false); err != nil {
		return err
	}

	if listingsAge != "" {
		switch types.AgeCategory(listingsAge) {
		case types.AgeNew, types.AgeFresh, types.AgeStale, types.AgeOld:
		default:
			return fmt.Errorf("invalid --age %q, expected New, Fresh, Stale or Old", listingsAge)
		}
	}

	controller := views.NewListingsController(app.client, logger.Get())
	if err := controller.Load(cmd.Context()); err != nil {
		return err
	}

	controller.SetFilter(views.ListingsFilter{
		Search:      listingsSearch,
		Company:     listingsCompany,
		AgeCategory: types.AgeCategory(listingsAge),
	})
	if listingsSort != "" {
		controller.SortBy(listingsSort)
		if listingsDesc {
			// A second sort on the same field flips the direction.
			controller.SortBy(listingsSort)
		}
	}

	app.printer.PrintListings(controller.Visible())
	return nil
}
