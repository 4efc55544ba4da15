package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ahzs645/portfolio-themes/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a CV YAML document against the schema",
	Long:  "Runs the advisory structural check on a CV YAML file and lists any field problems. The normalizer itself accepts anything that parses; this check is for authors.",
	RunE:  runValidate,
}

var validateInput string

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to input CV YAML file (required)")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(validateInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	err = schemas.ValidateDocument(data)
	if err == nil {
		_, _ = fmt.Fprintf(os.Stdout, "%s is valid\n", validateInput)
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		_, _ = fmt.Fprintf(os.Stdout, "%s has %d problem(s):\n", validateInput, len(validationErr.Errors))
		for _, fieldErr := range validationErr.Errors {
			_, _ = fmt.Fprintf(os.Stdout, "  %s: %s\n", fieldErr.Field, fieldErr.Message)
		}
		return fmt.Errorf("validation failed")
	}

	return err
}
