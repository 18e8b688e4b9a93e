package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/priya-raman/shopsense/internal/catalog"
	"github.com/priya-raman/shopsense/internal/config"
	"github.com/priya-raman/shopsense/internal/database"
	"github.com/priya-raman/shopsense/internal/enrich"
	"github.com/priya-raman/shopsense/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP server exposing the recommendation API.

Endpoints are served under /api/v1 and protected by the configured
API key (X-API-Key header). An empty key disables authentication.

Examples:
  shopsense serve
  shopsense serve --port 9090`,
	RunE: runServe,
}

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Optional .env for local development; missing file is fine
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	cat, err := catalog.LoadOrDefault(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	var enrichClient *enrich.Client
	if cfg.Enrich.Enabled {
		enrichClient = enrich.New(cfg.Enrich.BaseURL, cfg.EnrichAPIKey())
	}

	fmt.Printf("Listening on :%d\n", cfg.Server.Port)
	return server.New(cfg, db, cat, enrichClient).Run()
}
