package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmarques/hiredash/internal/logger"
	"github.com/tmarques/hiredash/internal/views"
)

var companiesYes bool

var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "List companies (admin)",
	RunE:  runCompanies,
}

var companiesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a company and its listings (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompaniesDelete,
}

func init() {
	companiesDeleteCmd.Flags().BoolVar(&companiesYes, "yes", false, "Skip the confirmation prompt")
	companiesCmd.AddCommand(companiesDeleteCmd)
	rootCmd.AddCommand(companiesCmd)
}

func runCompanies(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	if _, err := app.requireView(cmd.Context(), true); err != nil {
		return err
	}

	controller := views.NewCompaniesController(app.client, logger.Get())
	if err := controller.Load(cmd.Context()); err != nil {
		return err
	}

	app.printer.PrintCompanies(controller.Records())
	return nil
}

func runCompaniesDelete(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	if _, err := app.requireView(cmd.Context(), true); err != nil {
		return err
	}

	name := args[0]
	controller := views.NewCompaniesController(app.client, logger.Get())

	err = controller.Delete(cmd.Context(), name, func(name string) bool {
		if companiesYes {
			return true
		}
		fmt.Printf("Delete company %q and all of its listings? [y/N] ", name)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		return strings.EqualFold(strings.TrimSpace(answer), "y")
	})
	if err != nil {
		return err
	}

	fmt.Printf("Deleted company %q\n", name)
	return nil
}
