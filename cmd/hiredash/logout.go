package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmarques/hiredash/internal/session"
)

var logoutForget bool

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the local session",
	RunE:  runLogout,
}

func init() {
	logoutCmd.Flags().BoolVar(&logoutForget, "forget", false, "Also remove the remember-me entry")
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	app.store.Logout(cmd.Context())

	if logoutForget {
		if err := session.Forget(app.cfg.StateDir); err != nil {
			return err
		}
	}

	fmt.Println("Signed out")
	return nil
}
