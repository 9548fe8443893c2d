// Package main provides the skillbank_derive CLI for deriving resume
// content from a user's skill bank.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillbank_derive",
	Short: "Skill Bank resume derivation CLI",
	Long:  "skillbank_derive projects a user's canonical skill bank (work history, education, projects, certifications, skills, summaries) into resume-ready section values, honoring per-entity content variations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
