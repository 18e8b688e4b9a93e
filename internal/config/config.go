package config

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Engine   EngineConfig   `toml:"engine"`
	Enrich   EnrichConfig   `toml:"enrich"`
	Server   ServerConfig   `toml:"server"`
	MCP      MCPConfig      `toml:"mcp"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// CatalogConfig points at an optional custom interest catalog; empty means
// the built-in catalog.
type CatalogConfig struct {
	Path string `toml:"path"`
}

// EngineConfig contains recommendation engine settings
type EngineConfig struct {
	DefaultStrategy string `toml:"default_strategy"`
}

// EnrichConfig contains settings for the optional remote enrichment service
type EnrichConfig struct {
	Enabled bool   `toml:"enabled"`
	BaseURL string `toml:"base_url"`
	// API key is read from the SHOPSENSE_ENRICH_API_KEY environment variable
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port   int    `toml:"port"`
	APIKey string `toml:"api_key"`
}

// MCPConfig contains MCP server settings
type MCPConfig struct {
	Enabled   bool   `toml:"enabled"`
	Transport string `toml:"transport"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "~/.local/share/shopsense/shopsense.db",
		},
		Catalog: CatalogConfig{
			Path: "",
		},
		Engine: EngineConfig{
			DefaultStrategy: "hybrid",
		},
		Enrich: EnrichConfig{
			Enabled: false,
			BaseURL: "https://api.recommendation-engine.com",
		},
		Server: ServerConfig{
			Port: 8080,
		},
		MCP: MCPConfig{
			Enabled:   true,
			Transport: "stdio",
		},
	}
}
