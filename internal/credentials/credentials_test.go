package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnvKeys(t *testing.T) {
	t.Helper()
	for _, name := range EnvKeys {
		t.Setenv(name, "")
	}
}

func TestEnv_AcceptedSpellings(t *testing.T) {
	for _, name := range EnvKeys {
		t.Run(name, func(t *testing.T) {
			clearEnvKeys(t)
			t.Setenv(name, "keyFromEnv")
			key, err := NewEnv().APIKey()
			require.NoError(t, err)
			assert.Equal(t, "keyFromEnv", key)
		})
	}
}

func TestEnv_Precedence(t *testing.T) {
	clearEnvKeys(t)
	t.Setenv("AIRTABLE_API_KEY", "primary")
	t.Setenv("AIRTABLE_TOKEN", "fallback")
	key, err := NewEnv().APIKey()
	require.NoError(t, err)
	assert.Equal(t, "primary", key)
}

func TestEnv_NoKey(t *testing.T) {
	clearEnvKeys(t)
	_, err := NewEnv().APIKey()
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestEnv_CustomKeys(t *testing.T) {
	clearEnvKeys(t)
	t.Setenv("MY_AIRTABLE_KEY", "custom")
	key, err := (&Env{Keys: []string{"MY_AIRTABLE_KEY"}}).APIKey()
	require.NoError(t, err)
	assert.Equal(t, "custom", key)
}

func TestStatic(t *testing.T) {
	key, err := Static("fixed").APIKey()
	require.NoError(t, err)
	assert.Equal(t, "fixed", key)

	_, err = Static("").APIKey()
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestSetEnvName(t *testing.T) {
	clearEnvKeys(t)
	assert.Empty(t, SetEnvName())

	t.Setenv("AIRTABLE_TOKEN", "x")
	assert.Equal(t, "AIRTABLE_TOKEN", SetEnvName())
}

func TestEnv_Repeatable(t *testing.T) {
	clearEnvKeys(t)
	t.Setenv("AIRTABLE_API_KEY", "stable")
	p := NewEnv()
	for i := 0; i < 3; i++ {
		key, err := p.APIKey()
		require.NoError(t, err)
		assert.Equal(t, "stable", key)
	}
}
