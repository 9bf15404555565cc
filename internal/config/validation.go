package config

import (
	"net/url"
	"strings"
)

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	if config.Hub.Timeout < 0 {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "hub.timeout", "timeout cannot be negative")
	}
	if config.Hub.Endpoint != "" {
		u, err := url.Parse(config.Hub.Endpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return NewConfigErrorWithField(ConfigValidationFailed, "", "hub.endpoint", "endpoint must be an absolute URL")
		}
		if strings.HasSuffix(config.Hub.Endpoint, "/") {
			return NewConfigErrorWithField(ConfigValidationFailed, "", "hub.endpoint", "endpoint must not end with a slash")
		}
	}
	if config.Output.Path == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "output.path", "output path cannot be empty")
	}
	return nil
}
