package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Profile defines a named Airtable connection (from profiles.yaml).
// Profiles let one installation serve different workspaces with
// different keys and tool whitelists.
type Profile struct {
	ID          string   `yaml:"id" json:"id"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	APIKeyEnv   string   `yaml:"api_key_env,omitempty" json:"apiKeyEnv,omitempty"`
	APIKey      string   `yaml:"api_key,omitempty" json:"apiKey,omitempty"`
	BaseURL     string   `yaml:"base_url,omitempty" json:"baseUrl,omitempty"`
	Tools       []string `yaml:"tools,omitempty" json:"tools,omitempty"`
	IsDefault   bool     `yaml:"is_default,omitempty" json:"isDefault,omitempty"`
}

// profilesFile is the top-level structure of profiles.yaml.
type profilesFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// GetProfilesPath returns the default profiles file path
// (~/.airtable-mcp/profiles.yaml).
func GetProfilesPath() string {
	return filepath.Join(GetDataPath(), "profiles.yaml")
}

// LoadProfiles reads and parses a profiles.yaml file.
func LoadProfiles(path string) ([]Profile, error) {
	if path == "" {
		path = GetProfilesPath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // no profiles.yaml → single-connection mode
		}
		return nil, fmt.Errorf("read profiles.yaml: %w", err)
	}

	var f profilesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse profiles.yaml: %w", err)
	}
	for _, p := range f.Profiles {
		if p.ID == "" {
			return nil, fmt.Errorf("profiles.yaml: profile without id")
		}
	}
	return f.Profiles, nil
}

// SelectProfile picks a profile by ID, or the default profile when id
// is empty. Returns nil when no profiles exist and no id was asked for.
func SelectProfile(profiles []Profile, id string) (*Profile, error) {
	if id == "" {
		for i := range profiles {
			if profiles[i].IsDefault {
				return &profiles[i], nil
			}
		}
		return nil, nil
	}
	for i := range profiles {
		if profiles[i].ID == id {
			return &profiles[i], nil
		}
	}
	return nil, fmt.Errorf("profile %q not found", id)
}
