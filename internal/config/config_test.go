package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Schema Tests ---

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 30, cfg.Airtable.Timeout)
	assert.Empty(t, cfg.Airtable.APIKey)
	assert.Empty(t, cfg.Serve.Profile)
}

func TestConfig_JSON_RoundTrip(t *testing.T) {
	original := Config{
		Airtable: AirtableConfig{
			APIKeyEnv: "MY_AIRTABLE_KEY",
			BaseURL:   "https://proxy.internal/v0",
			Timeout:   10,
		},
		Serve: ServeConfig{
			Profile: "prod",
			Tools:   []string{"list_records", "get_record"},
		},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Config
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)

	assert.Equal(t, "MY_AIRTABLE_KEY", decoded.Airtable.APIKeyEnv)
	assert.Equal(t, "https://proxy.internal/v0", decoded.Airtable.BaseURL)
	assert.Equal(t, 10, decoded.Airtable.Timeout)
	assert.Equal(t, "prod", decoded.Serve.Profile)
	assert.Equal(t, []string{"list_records", "get_record"}, decoded.Serve.Tools)
}

func TestConfig_CamelCaseJSON(t *testing.T) {
	jsonStr := `{
		"airtable": {"apiKeyEnv": "KEY_ENV", "baseUrl": "http://localhost:9999", "timeout": 5},
		"serve": {"profile": "dev", "profilesFile": "/tmp/profiles.yaml"}
	}`

	var cfg Config
	err := json.Unmarshal([]byte(jsonStr), &cfg)
	require.NoError(t, err)

	assert.Equal(t, "KEY_ENV", cfg.Airtable.APIKeyEnv)
	assert.Equal(t, "http://localhost:9999", cfg.Airtable.BaseURL)
	assert.Equal(t, 5, cfg.Airtable.Timeout)
	assert.Equal(t, "dev", cfg.Serve.Profile)
	assert.Equal(t, "/tmp/profiles.yaml", cfg.Serve.ProfilesFile)
}

// --- Loader Tests ---

func TestLoad_FileNotExist(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"airtable": {"apiKeyEnv": "CUSTOM_KEY"}}`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "CUSTOM_KEY", cfg.Airtable.APIKeyEnv)
	// Defaults should be preserved for unset fields
	assert.Equal(t, 30, cfg.Airtable.Timeout)
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	err := os.WriteFile(path, []byte("{invalid json}"), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	assert.Error(t, err)
	// Should return defaults on error
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSave_And_Load_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "config.json")

	cfg := DefaultConfig()
	cfg.Serve.Profile = "prod"
	cfg.Airtable.BaseURL = "http://localhost:1234"

	err := Save(cfg, path)
	require.NoError(t, err)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "prod", loaded.Serve.Profile)
	assert.Equal(t, "http://localhost:1234", loaded.Airtable.BaseURL)
}

func TestSave_CreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "config.json")

	err := Save(DefaultConfig(), path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
