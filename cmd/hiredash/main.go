// Package main provides the entry point for the HireDash dashboard CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tmarques/hiredash/internal/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "hiredash",
	Short: "HireDash recruiting dashboard client",
	Long:  "HireDash is a terminal client for the HireDash recruiting backend: sign in, review candidate matches, browse job listings and companies, and manage uploads.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Print debug logging")
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
