package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".config", "shopsense")
	dataDir := filepath.Join(home, ".local", "share", "shopsense")

	// Create directories
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.toml")

	// Check if config already exists
	if _, err := os.Stat(configFile); err == nil {
		fmt.Printf("Config file already exists at %s\n", configFile)
		fmt.Println("Use 'shopsense config show' to view current configuration")
		return nil
	}

	// Write default config
	if err := os.WriteFile(configFile, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Run 'shopsense ingest customers.json' to load a dataset")
	fmt.Println("  2. Run 'shopsense recommend <name>' to score products for a customer")
	fmt.Println()
	fmt.Println("For remote enrichment, set enrich.enabled = true and export:")
	fmt.Println("  export SHOPSENSE_ENRICH_API_KEY=<your key>")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No config file found. Run 'shopsense config init' to create one.")
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Printf("# Config file: %s\n\n", configPath)
	fmt.Println(string(data))
	return nil
}

const defaultConfig = `# ShopSense Configuration

[database]
path = "~/.local/share/shopsense/shopsense.db"

[catalog]
# Optional custom interest-to-product catalog (TOML). Empty uses the
# built-in catalog.
path = ""

[engine]
default_strategy = "hybrid"  # collaborative, contextual, or hybrid

[enrich]
enabled = false
base_url = "https://api.recommendation-engine.com"
# API key read from SHOPSENSE_ENRICH_API_KEY env var

[server]
port = 8080
api_key = ""  # empty disables authentication

[mcp]
enabled = true
transport = "stdio"
`
