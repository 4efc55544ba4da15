// Package main provides the cv_engine CLI: normalize, validate, and serve
// CV documents for the portfolio theme gallery.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_engine",
	Short: "CV normalization engine",
	Long:  "cv_engine turns loosely-structured CV YAML documents into the canonical normalized record consumed by portfolio themes.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
