// Package config handles configuration loading, saving, and schema
// definition, plus the optional profiles.yaml connection registry.
package config

// Config is the top-level configuration.
// Uses json tags in camelCase to match the JSON config file format.
type Config struct {
	Airtable AirtableConfig `json:"airtable"`
	Serve    ServeConfig    `json:"serve"`
}

// AirtableConfig holds connection settings for the Airtable API.
type AirtableConfig struct {
	// APIKey stored directly in the config file. Environment variables
	// take precedence; storing the key here is discouraged.
	APIKey string `json:"apiKey,omitempty"`
	// APIKeyEnv names a single environment variable to read the key
	// from, instead of the default accepted spellings.
	APIKeyEnv string `json:"apiKeyEnv,omitempty"`
	// BaseURL overrides the API endpoint.
	BaseURL string `json:"baseUrl,omitempty"`
	// Timeout is the per-request timeout in seconds.
	Timeout int `json:"timeout,omitempty"`
}

// ServeConfig holds MCP serving settings.
type ServeConfig struct {
	// Profile selects a connection profile from profiles.yaml.
	Profile string `json:"profile,omitempty"`
	// ProfilesFile overrides the profiles.yaml location.
	ProfilesFile string `json:"profilesFile,omitempty"`
	// Tools whitelists the tools to expose; empty exposes all.
	Tools []string `json:"tools,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Airtable: AirtableConfig{
			Timeout: 30,
		},
	}
}
