package cli

import (
	"fmt"
	"os"
	"regexp"

	"github.com/tacogips/hublist/internal/config"
)

// Common flag names and descriptions
const (
	// Flag names
	FlagOutput   = "output"
	FlagRevision = "revision"
	FlagType     = "type"
	FlagToken    = "token"
	FlagEndpoint = "endpoint"
	FlagConfig   = "config"
	FlagNoColor  = "no-color"
	FlagQuiet    = "quiet"
	FlagDebug    = "debug"

	// Flag descriptions
	DescOutput   = "Report output file path"
	DescRevision = "Branch, tag, or commit SHA (default: repository's primary branch)"
	DescType     = "Repository type: models, datasets, or spaces"
	DescToken    = "Hub access token for private or gated repositories"
	DescEndpoint = "Hub endpoint URL (for mirrors or private hubs)"
	DescConfig   = "Path to config file"
	DescNoColor  = "Disable colored output"
	DescQuiet    = "Suppress non-error output"
	DescDebug    = "Enable debug logging"
)

// Repository identifier pattern: "owner/name". Shape only; whether the
// identifier resolves is delegated to the Hub.
var repoIDPattern = regexp.MustCompile(`^[^/\s]+/[^/\s]+$`)

// ValidateRepoID validates a repository identifier in "owner/name" form.
func ValidateRepoID(repoID string) error {
	if repoID == "" {
		return fmt.Errorf("repository identifier cannot be empty")
	}
	if !repoIDPattern.MatchString(repoID) {
		return fmt.Errorf("invalid repository identifier (expected owner/name): %s", repoID)
	}
	return nil
}

// getHubToken resolves the Hub access token.
// Priority: --token flag > config file > HF_TOKEN env > HUGGING_FACE_HUB_TOKEN env
func getHubToken(flagToken string, cfg *config.Config) string {
	if flagToken != "" {
		return flagToken
	}
	if cfg != nil && cfg.Hub.Token != "" {
		return cfg.Hub.Token
	}
	if token := os.Getenv("HF_TOKEN"); token != "" {
		return token
	}
	if token := os.Getenv("HUGGING_FACE_HUB_TOKEN"); token != "" {
		return token
	}
	return ""
}

// loadConfig loads the configuration from --config or the default path.
// A missing file yields defaults; an explicit --config path must exist.
func loadConfig() (*config.Config, error) {
	loader := config.NewLoader()
	if globalConfigPath != "" {
		cfg, err := loader.Load(globalConfigPath)
		if err != nil {
			return nil, err
		}
		if err := loader.Validate(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	cfg, err := loader.LoadOrDefault(config.DefaultConfigPath())
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
