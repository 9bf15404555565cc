package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_ValidTOML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[hub]
endpoint = "https://hub.internal.example"
token = "hf_secret"
timeout = 10

[output]
path = "listing.txt"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Hub.Endpoint != "https://hub.internal.example" {
		t.Errorf("Hub.Endpoint = %q, want %q", cfg.Hub.Endpoint, "https://hub.internal.example")
	}
	if cfg.Hub.Token != "hf_secret" {
		t.Errorf("Hub.Token = %q, want %q", cfg.Hub.Token, "hf_secret")
	}
	if cfg.Hub.Timeout != 10 {
		t.Errorf("Hub.Timeout = %d, want 10", cfg.Hub.Timeout)
	}
	if cfg.Output.Path != "listing.txt" {
		t.Errorf("Output.Path = %q, want %q", cfg.Output.Path, "listing.txt")
	}
}

func TestLoad_PartialConfigMergesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[hub]\ntoken = \"hf_abc\"\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Hub.Endpoint != "https://huggingface.co" {
		t.Errorf("Hub.Endpoint = %q, want default endpoint", cfg.Hub.Endpoint)
	}
	if cfg.Hub.Timeout != 30 {
		t.Errorf("Hub.Timeout = %d, want 30", cfg.Hub.Timeout)
	}
	if cfg.Output.Path != DefaultOutputPath {
		t.Errorf("Output.Path = %q, want %q", cfg.Output.Path, DefaultOutputPath)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[hub\nbroken"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	_, err := NewLoader().Load(path)
	if err == nil {
		t.Fatal("Load() error = nil, want syntax error")
	}
	cfgErr, ok := err.(*ConfigError)
	if !ok {
		t.Fatalf("error type = %T, want *ConfigError", err)
	}
	if cfgErr.Type != ConfigInvalid {
		t.Errorf("error Type = %d, want ConfigInvalid", cfgErr.Type)
	}
}

func TestLoadOrDefault_MissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := NewLoader().LoadOrDefault(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Hub.Endpoint != "https://huggingface.co" {
		t.Errorf("Hub.Endpoint = %q, want default endpoint", cfg.Hub.Endpoint)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:   "default config is valid",
			mutate: func(c *Config) {},
		},
		{
			name:      "negative timeout",
			mutate:    func(c *Config) { c.Hub.Timeout = -1 },
			wantField: "hub.timeout",
		},
		{
			name:      "relative endpoint",
			mutate:    func(c *Config) { c.Hub.Endpoint = "huggingface.co" },
			wantField: "hub.endpoint",
		},
		{
			name:      "trailing slash endpoint",
			mutate:    func(c *Config) { c.Hub.Endpoint = "https://huggingface.co/" },
			wantField: "hub.endpoint",
		},
		{
			name:      "empty output path",
			mutate:    func(c *Config) { c.Output.Path = "" },
			wantField: "output.path",
		},
	}

	loader := &FileLoader{}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := loader.Validate(cfg)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() error = nil, want validation error")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("Validate() error = %v, want mention of field %q", err, tt.wantField)
			}
		})
	}
}
