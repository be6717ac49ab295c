package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmarques/hiredash/internal/session"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	app.store.Hydrate(cmd.Context())
	state, identity := app.store.Snapshot()
	if state != session.Authenticated {
		fmt.Println("Not signed in")
		return nil
	}

	fmt.Printf("Email:  %s\n", identity.Email)
	fmt.Printf("Role:   %s\n", identity.EffectiveRole())
	fmt.Printf("CV:     %v\n", identity.HasCV)
	return nil
}
