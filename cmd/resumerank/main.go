// Package main provides the entry point for the resume ranking CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumerank",
	Short: "Deterministic resume ranking engine",
	Long:  "resumerank scores a batch of resumes against a job description using skill matching, experience extraction and text similarity, and produces an explained ranking.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
