package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/config"
	"github.com/jonathan/resume-insight/internal/server"
)

var (
	serveConfigPath string
	servePort       int
	serveTaxonomy   string
	serveUseBrowser bool
	serveRateLimit  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes resume parsing and analysis endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveTaxonomy, "taxonomy", "t", "", "Path to a taxonomy override JSON file")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Use headless browser for SPA job sites (requires Chrome)")
	serveCmd.Flags().BoolVar(&serveRateLimit, "rate-limit", true, "Enable per-client rate limiting")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		Port:      config.DefaultPort,
		RateLimit: true,
	}
	if serveConfigPath != "" {
		loadedCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if cfg.Port == 0 {
			cfg.Port = config.DefaultPort
		}
	}

	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("taxonomy") {
		cfg.Taxonomy = serveTaxonomy
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = serveUseBrowser
	}
	if cmd.Flags().Changed("rate-limit") {
		cfg.RateLimit = serveRateLimit
	}

	srv, err := server.New(server.Config{
		Port:         cfg.Port,
		TaxonomyPath: cfg.Taxonomy,
		UseBrowser:   cfg.UseBrowser,
		RateLimit:    cfg.RateLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
