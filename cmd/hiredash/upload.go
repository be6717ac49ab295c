package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tmarques/hiredash/internal/schemas"
)

var uploadCVCmd = &cobra.Command{
	Use:   "upload-cv <file>",
	Short: "Upload a CV for the signed-in user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUploadCV,
}

var uploadJobCmd = &cobra.Command{
	Use:   "upload-job <file.json>",
	Short: "Upload a new job posting (admin)",
	Long:  "Validate a job posting JSON payload against the job-upload schema and submit it.",
	Args:  cobra.ExactArgs(1),
	RunE:  runUploadJob,
}

func init() {
	rootCmd.AddCommand(uploadCVCmd)
	rootCmd.AddCommand(uploadJobCmd)
}

func runUploadCV(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	if _, err := app.requireView(cmd.Context(), false); err != nil {
		return err
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read CV file: %w", err)
	}

	if err := app.client.UploadCV(cmd.Context(), filepath.Base(args[0]), content); err != nil {
		return err
	}

	fmt.Println("CV uploaded")
	return nil
}

func runUploadJob(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	if _, err := app.requireView(cmd.Context(), true); err != nil {
		return err
	}

	payload, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}

	// Validate client-side before any network call.
	if err := schemas.ValidateJobUpload(payload); err != nil {
		return err
	}

	if err := app.client.UploadJob(cmd.Context(), payload); err != nil {
		return err
	}

	fmt.Println("Job posting uploaded")
	return nil
}
