package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("LLM_TIMEOUT_SECONDS", "")
	t.Setenv("LLM_MAX_TOKENS", "")
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LLM_MODEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Empty(t, cfg.LLM.APIKey)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 1200, cfg.LLM.MaxTokens)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "gigachat")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("LLM_API_KEY", "secret")
	t.Setenv("LLM_TIMEOUT_SECONDS", "5")
	t.Setenv("DB_MAX_CONNS", "not-a-number")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderGigaChat, cfg.LLM.Provider)
	assert.Equal(t, "GigaChat", cfg.LLM.Model)
	assert.Equal(t, "secret", cfg.LLM.APIKey)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
}
