package config

import (
	"os"
	"path/filepath"
)

// DefaultOutputPath is the report path used when neither flag nor
// configuration specifies one.
const DefaultOutputPath = "files_list.txt"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Hub: HubConfig{
			Endpoint: "https://huggingface.co",
			Token:    "",
			Timeout:  30,
		},
		Output: OutputConfig{
			Path:  DefaultOutputPath,
			Color: true,
			Quiet: false,
		},
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "hublist", "config.toml")
}
