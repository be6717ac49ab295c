package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmarques/hiredash/internal/types"
)

var (
	registerName     string
	registerEmail    string
	registerPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE:  runRegister,
}

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "Full name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password (min 8 characters)")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	req := types.RegisterRequest{
		Name:     registerName,
		Email:    registerEmail,
		Password: registerPassword,
	}
	if err := app.client.Register(cmd.Context(), req); err != nil {
		return err
	}

	fmt.Printf("Account created for %s; run 'hiredash login' to sign in\n", registerEmail)
	return nil
}
