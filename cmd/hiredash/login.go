package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmarques/hiredash/internal/session"
)

var (
	loginEmail    string
	loginPassword string
	loginRemember bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the dashboard",
	Long:  "Exchange credentials for a dashboard session. With --remember, the email is kept in a sealed remember-me entry; the password is never stored.",
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
	loginCmd.Flags().BoolVar(&loginRemember, "remember", false, "Remember this account for future logins")
	_ = loginCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	email := loginEmail
	if email == "" {
		// Fall back to the remembered account, if any.
		remembered, err := session.Remembered(app.cfg.StateDir)
		if err != nil {
			return err
		}
		if remembered == nil {
			return fmt.Errorf("--email is required (no remembered account found)")
		}
		email = remembered.Email
	}

	identity, err := app.store.Login(cmd.Context(), email, loginPassword)
	if err != nil {
		return err
	}

	if loginRemember {
		if _, err := session.Remember(app.cfg.StateDir, identity.Email); err != nil {
			return err
		}
	}

	fmt.Printf("Signed in as %s (%s)\n", identity.Email, identity.EffectiveRole())
	return nil
}
