package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete server configuration.
type Config struct {
	Server *ServerSettings `hcl:"server,block"`
	Match  *MatchSettings  `hcl:"match,block"`
}

// ServerSettings contains listener-level configuration.
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// MatchSettings configures the matches served to clients.
type MatchSettings struct {
	DefaultSeed string `hcl:"default_seed,optional"`
	BotDelayMs  int    `hcl:"bot_delay_ms,optional"`
	AutoPlay    bool   `hcl:"auto_play,optional"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Server: &ServerSettings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
		},
		Match: &MatchSettings{
			BotDelayMs: 400,
			AutoPlay:   true,
		},
	}
}

// LoadConfig reads and parses an HCL configuration file, filling unset
// values from DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(src, path)
}

// ParseConfig parses HCL configuration source. filename is used for
// diagnostics only.
func ParseConfig(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config: %s", diags.Error())
	}

	cfg := &Config{}
	if diags := gohcl.DecodeBody(file.Body, nil, cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	defaults := DefaultConfig()
	if cfg.Server == nil {
		cfg.Server = defaults.Server
	} else {
		if cfg.Server.Address == "" {
			cfg.Server.Address = defaults.Server.Address
		}
		if cfg.Server.Port == 0 {
			cfg.Server.Port = defaults.Server.Port
		}
		if cfg.Server.LogLevel == "" {
			cfg.Server.LogLevel = defaults.Server.LogLevel
		}
	}
	if cfg.Match == nil {
		cfg.Match = defaults.Match
	}
	if cfg.Match.BotDelayMs < 0 {
		return nil, fmt.Errorf("bot_delay_ms must not be negative, got %d", cfg.Match.BotDelayMs)
	}
	return cfg, nil
}

// ListenAddr returns the host:port the server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
