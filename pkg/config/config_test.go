package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("TOKEN_SECRET", "")
	t.Setenv("TOKEN_ISSUER", "")
	t.Setenv("TOKEN_TTL_MINUTES", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "accounts-service", cfg.TokenIssuer)
	assert.Equal(t, 24*60, cfg.TokenTTLMinutes)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/accounts")
	t.Setenv("TOKEN_SECRET", "supersecret")
	t.Setenv("TOKEN_TTL_MINUTES", "15")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://localhost/accounts", cfg.DatabaseURL)
	assert.Equal(t, "supersecret", cfg.TokenSecret)
	assert.Equal(t, 15, cfg.TokenTTLMinutes)
}
