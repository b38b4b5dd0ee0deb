// Package credentials resolves the Airtable API key from the process
// environment or from configuration. A .env file in the working
// directory is loaded automatically at startup.
package credentials

import (
	"errors"
	"os"

	// Autoloads .env into the process environment before key lookup.
	_ "github.com/joho/godotenv/autoload"
)

// EnvKeys are the accepted environment variable spellings for the API
// key, checked in order.
var EnvKeys = []string{
	"AIRTABLE_API_KEY",
	"AIRTABLE_PERSONAL_ACCESS_TOKEN",
	"AIRTABLE_TOKEN",
}

// ErrNoAPIKey means no usable key was found in any credential source.
var ErrNoAPIKey = errors.New("no Airtable API key found (set AIRTABLE_API_KEY)")

// Provider yields an API key for client construction. Implementations
// must be side-effect-free and repeatable.
type Provider interface {
	APIKey() (string, error)
}

// Env resolves the key from environment variables. Keys lists the
// variable names to check; empty means EnvKeys.
type Env struct {
	Keys []string
}

// NewEnv returns an Env provider over the default accepted spellings.
func NewEnv() *Env {
	return &Env{}
}

func (e *Env) APIKey() (string, error) {
	keys := e.Keys
	if len(keys) == 0 {
		keys = EnvKeys
	}
	for _, name := range keys {
		if v := os.Getenv(name); v != "" {
			return v, nil
		}
	}
	return "", ErrNoAPIKey
}

// Static holds a fixed key, sourced from a config file or profile.
type Static string

func (s Static) APIKey() (string, error) {
	if s == "" {
		return "", ErrNoAPIKey
	}
	return string(s), nil
}

// SetEnvName returns the name of the first accepted environment
// variable that currently holds a value, or "" if none is set.
// Used for status reporting; never exposes the key itself.
func SetEnvName() string {
	for _, name := range EnvKeys {
		if os.Getenv(name) != "" {
			return name
		}
	}
	return ""
}
