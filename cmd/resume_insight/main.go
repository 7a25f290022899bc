// Package main provides the entry point for the Resume Insight CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_insight",
	Short: "Resume Insight analysis engine",
	Long:  "Resume Insight extracts skills, experience, and contact details from resumes, scores them, matches them against job descriptions, and suggests improvements.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
