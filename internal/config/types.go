package config

// Config represents the global hublist configuration.
type Config struct {
	// Hub configuration for registry access.
	Hub HubConfig `toml:"hub"`
	// Output configuration for report writing and display.
	Output OutputConfig `toml:"output"`
}

// HubConfig represents Hugging Face Hub settings.
type HubConfig struct {
	// Endpoint is the Hub base URL (for mirrors or private hubs).
	Endpoint string `toml:"endpoint"`
	// Token is the bearer token for private or gated repositories.
	Token string `toml:"token,omitempty"`
	// Timeout is the metadata request timeout in seconds.
	Timeout int `toml:"timeout"`
}

// OutputConfig represents report and display settings.
type OutputConfig struct {
	// Path is the default report file path.
	Path string `toml:"path"`
	// Color enables colored terminal output.
	Color bool `toml:"color"`
	// Quiet suppresses non-error output.
	Quiet bool `toml:"quiet"`
}
