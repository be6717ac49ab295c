package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	resetEmail       string
	newPasswordEmail string
	newPasswordValue string
)

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Start the password-reset flow",
	RunE:  runResetPassword,
}

var newPasswordCmd = &cobra.Command{
	Use:   "new-password",
	Short: "Complete the password-reset flow",
	RunE:  runNewPassword,
}

func init() {
	resetPasswordCmd.Flags().StringVar(&resetEmail, "email", "", "Account email")
	_ = resetPasswordCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(resetPasswordCmd)

	newPasswordCmd.Flags().StringVar(&newPasswordEmail, "email", "", "Account email")
	newPasswordCmd.Flags().StringVar(&newPasswordValue, "password", "", "New password (min 8 characters)")
	_ = newPasswordCmd.MarkFlagRequired("email")
	_ = newPasswordCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(newPasswordCmd)
}

func runResetPassword(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	if err := app.client.ResetPassword(cmd.Context(), resetEmail); err != nil {
		return err
	}

	fmt.Printf("Password reset started for %s; check the inbox\n", resetEmail)
	return nil
}

func runNewPassword(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	if err := app.client.NewPassword(cmd.Context(), newPasswordEmail, newPasswordValue); err != nil {
		return err
	}

	fmt.Println("Password updated; run 'hiredash login' to sign in")
	return nil
}
