package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ahzs645/portfolio-themes/internal/config"
	"github.com/ahzs645/portfolio-themes/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server that exposes CV normalization, validation, and the theme registry.",
	RunE:  runServe,
}

var (
	servePort     int
	serveCV       string
	serveExcluded []string
	serveConfig   string
	serveDev      bool
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveCV, "cv", "", "Path to the default CV YAML file served on GET /cv")
	serveCmd.Flags().StringArrayVar(&serveExcluded, "exclude", nil, "Section name to hide from output (repeatable)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	serveCmd.Flags().BoolVar(&serveDev, "dev", false, "Enable advisory diagnostics")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if serveConfig != "" {
		fileCfg, err := config.LoadConfig(serveConfig)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	flags := config.Config{
		DefaultCV:        serveCV,
		ExcludedSections: serveExcluded,
		Port:             servePort,
	}
	dev := serveDev || cfg.Dev
	cfg = flags.MergeWithDefaults(cfg)
	cfg.Dev = dev
	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:             cfg.Port,
		DefaultCV:        cfg.DefaultCV,
		ExcludedSections: cfg.ExcludedSections,
		Dev:              cfg.Dev,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
