// Package config provides configuration management for the painel CLI.
//
// Precedence follows the usual chain: flags > env vars (PAINEL_ prefix) >
// config file (painel.yaml) > built-in defaults.
package config

// DataConfig describes where the salary CSV comes from. File overrides URL
// when both are present.
type DataConfig struct {
	URL  string `koanf:"url"`
	File string `koanf:"file"`
}

// UIConfig holds configuration for the dashboard server.
type UIConfig struct {
	Port       int  `koanf:"port"`
	AutoOpen   bool `koanf:"auto_open"`
	Watch      bool `koanf:"watch"`
	TableLimit int  `koanf:"table_limit"`
}

// Config holds all CLI configuration options.
type Config struct {
	Data    DataConfig `koanf:"data"`
	UI      UIConfig   `koanf:"ui"`
	Verbose bool       `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultPort       = 8765
	DefaultTableLimit = 200
)
