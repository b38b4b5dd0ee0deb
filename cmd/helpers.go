package cmd

import (
	"time"

	"github.com/dayuer/airtable-mcp-go/internal/airtable"
	"github.com/dayuer/airtable-mcp-go/internal/config"
	"github.com/dayuer/airtable-mcp-go/internal/credentials"
)

// makeCredentials picks the credential source: profile key, profile
// env var, config key, config env var, then the default environment
// spellings.
func makeCredentials(cfg config.Config, profile *config.Profile) credentials.Provider {
	if profile != nil {
		if profile.APIKey != "" {
			return credentials.Static(profile.APIKey)
		}
		if profile.APIKeyEnv != "" {
			return &credentials.Env{Keys: []string{profile.APIKeyEnv}}
		}
	}
	if cfg.Airtable.APIKey != "" {
		return credentials.Static(cfg.Airtable.APIKey)
	}
	if cfg.Airtable.APIKeyEnv != "" {
		return &credentials.Env{Keys: []string{cfg.Airtable.APIKeyEnv}}
	}
	return credentials.NewEnv()
}

// makeClientOptions derives airtable client options from config and
// the selected profile.
func makeClientOptions(cfg config.Config, profile *config.Profile) []airtable.Option {
	var opts []airtable.Option
	baseURL := cfg.Airtable.BaseURL
	if profile != nil && profile.BaseURL != "" {
		baseURL = profile.BaseURL
	}
	if baseURL != "" {
		opts = append(opts, airtable.WithBaseURL(baseURL))
	}
	if cfg.Airtable.Timeout > 0 {
		opts = append(opts, airtable.WithTimeout(time.Duration(cfg.Airtable.Timeout)*time.Second))
	}
	return opts
}
