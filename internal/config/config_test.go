package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Engine.DefaultStrategy != "hybrid" {
		t.Errorf("Engine.DefaultStrategy = %q, want hybrid", cfg.Engine.DefaultStrategy)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.MCP.Transport != "stdio" {
		t.Errorf("MCP.Transport = %q, want stdio", cfg.MCP.Transport)
	}
	if err := cfg.Validate(); err != nil {
		// Default config must always validate
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[database]
path = "/tmp/shopsense-test.db"

[engine]
default_strategy = "contextual"

[server]
port = 9090
api_key = "sesame"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Engine.DefaultStrategy != "contextual" {
		t.Errorf("Engine.DefaultStrategy = %q, want contextual", cfg.Engine.DefaultStrategy)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.APIKey != "sesame" {
		t.Errorf("Server.APIKey = %q, want sesame", cfg.Server.APIKey)
	}
	// Unset sections keep defaults
	if cfg.MCP.Transport != "stdio" {
		t.Errorf("MCP.Transport = %q, want default stdio", cfg.MCP.Transport)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("Load() error = nil, want not-found error")
	}
	if !strings.Contains(err.Error(), "config init") {
		t.Errorf("Load() error = %v, want hint to run config init", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "default is valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty database path",
			mutate:  func(c *Config) { c.Database.Path = "" },
			wantErr: true,
		},
		{
			name:    "bad strategy",
			mutate:  func(c *Config) { c.Engine.DefaultStrategy = "psychic" },
			wantErr: true,
		},
		{
			name:    "enrich enabled without base url",
			mutate:  func(c *Config) { c.Enrich.Enabled = true; c.Enrich.BaseURL = "" },
			wantErr: true,
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: true,
		},
		{
			name:    "unsupported mcp transport",
			mutate:  func(c *Config) { c.MCP.Transport = "websocket" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	got, err := expandPath("~/data/shopsense.db")
	if err != nil {
		t.Fatalf("expandPath() error = %v", err)
	}
	want := filepath.Join(home, "data", "shopsense.db")
	if got != want {
		t.Errorf("expandPath() = %q, want %q", got, want)
	}

	abs, err := expandPath("/var/lib/shopsense.db")
	if err != nil {
		t.Fatalf("expandPath() error = %v", err)
	}
	if abs != "/var/lib/shopsense.db" {
		t.Errorf("expandPath() = %q, want unchanged absolute path", abs)
	}
}

func TestEnrichAPIKey(t *testing.T) {
	t.Setenv("SHOPSENSE_ENRICH_API_KEY", "from-env")

	cfg := Default()
	if got := cfg.EnrichAPIKey(); got != "from-env" {
		t.Errorf("EnrichAPIKey() = %q, want from-env", got)
	}
}
