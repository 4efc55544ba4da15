package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ahzs645/portfolio-themes/internal/config"
	"github.com/ahzs645/portfolio-themes/internal/normalize"
	"github.com/ahzs645/portfolio-themes/internal/observability"
	"github.com/ahzs645/portfolio-themes/internal/parsing"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize a CV YAML document",
	Long:  "Parses a CV YAML file (or every YAML file in a directory), derives the canonical normalized record, and writes it as JSON.",
	RunE:  runNormalize,
}

var (
	normalizeInput    string
	normalizeOutput   string
	normalizeExcluded []string
	normalizeConfig   string
	normalizeVerbose  bool
)

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeInput, "in", "i", "", "Path to input CV YAML file or directory (required)")
	normalizeCmd.Flags().StringVarP(&normalizeOutput, "out", "o", "", "Path to output JSON file or directory (default: stdout)")
	normalizeCmd.Flags().StringArrayVar(&normalizeExcluded, "exclude", nil, "Section name to hide from output (repeatable)")
	normalizeCmd.Flags().StringVar(&normalizeConfig, "config", "", "Path to JSON config file")
	normalizeCmd.Flags().BoolVarP(&normalizeVerbose, "verbose", "v", false, "Print a summary of the normalized CV")

	if err := normalizeCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(_ *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if normalizeConfig != "" {
		fileCfg, err := config.LoadConfig(normalizeConfig)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	excluded := append(append([]string{}, cfg.ExcludedSections...), normalizeExcluded...)

	info, err := os.Stat(normalizeInput)
	if err != nil {
		return fmt.Errorf("failed to stat input: %w", err)
	}

	if info.IsDir() {
		return normalizeDirectory(normalizeInput, normalizeOutput, excluded)
	}
	return normalizeFile(normalizeInput, normalizeOutput, excluded)
}

// normalizeFile normalizes a single document. An empty output path writes
// the JSON to stdout.
func normalizeFile(inputPath, outputPath string, excluded []string) error {
	doc, err := parsing.Load(inputPath)
	if err != nil {
		return fmt.Errorf("failed to load CV: %w", err)
	}

	opts := normalize.Options{ExcludedSections: excluded}
	if normalizeVerbose {
		opts.Logf = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	cv := normalize.NormalizeCV(doc, opts)

	if normalizeVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintIdentity(cv)
		printer.PrintSocialLinks(cv.SocialLinks)
		printer.PrintExperience(cv.Experience)
	}

	jsonBytes, err := json.MarshalIndent(cv, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal normalized CV: %w", err)
	}

	if outputPath == "" {
		_, err = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Normalized %s\n", inputPath)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outputPath)
	return nil
}

// normalizeDirectory normalizes every YAML file in a directory concurrently,
// writing one JSON file per input into the output directory.
func normalizeDirectory(inputDir, outputDir string, excluded []string) error {
	if outputDir == "" {
		return fmt.Errorf("--out directory is required when --in is a directory")
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	dirEntries, err := os.ReadDir(inputDir)
	if err != nil {
		return fmt.Errorf("failed to read input directory: %w", err)
	}

	var group errgroup.Group
	group.SetLimit(4)
	processed := 0

	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(dirEntry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		inputPath := filepath.Join(inputDir, dirEntry.Name())
		outputName := strings.TrimSuffix(dirEntry.Name(), filepath.Ext(dirEntry.Name())) + ".json"
		outputPath := filepath.Join(outputDir, outputName)
		processed++

		group.Go(func() error {
			doc, err := parsing.Load(inputPath)
			if err != nil {
				return fmt.Errorf("%s: %w", inputPath, err)
			}
			cv := normalize.NormalizeCV(doc, normalize.Options{ExcludedSections: excluded})
			jsonBytes, err := json.MarshalIndent(cv, "", "  ")
			if err != nil {
				return fmt.Errorf("%s: failed to marshal: %w", inputPath, err)
			}
			if err := os.WriteFile(outputPath, jsonBytes, 0644); err != nil {
				return fmt.Errorf("%s: failed to write: %w", inputPath, err)
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Normalized %d documents into %s\n", processed, outputDir)
	return nil
}
