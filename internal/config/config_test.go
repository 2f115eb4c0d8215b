package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)
	t.Setenv("JWT_SECRET", "test_jwt_secret_32_chars_minimum!")
	t.Setenv("COSMOS_URI", "mongodb://localhost:27017")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "SASU", cfg.CosmosDatabase)
	assert.Equal(t, "carnets_id", cfg.ContainerCarnets)
	assert.Equal(t, "cita_id", cfg.ContainerCitas)
	assert.Equal(t, 7, cfg.JWTExpiresDays)
	assert.Equal(t, 8, cfg.JWTAdminExpHours)
	assert.Equal(t, 5, cfg.MaxLoginAttempts)
	assert.Equal(t, 30, cfg.LockoutMinutes)
	assert.Equal(t, 100, cfg.RateLimitMaxPerMin)
	assert.Equal(t, 20, cfg.LoginRateLimit)
}

func TestLoad_Overrides(t *testing.T) {
	resetViper(t)
	t.Setenv("JWT_SECRET", "test_jwt_secret_32_chars_minimum!")
	t.Setenv("COSMOS_URI", "mongodb://cosmos.example:10255")
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOGIN_RATE_LIMIT", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "mongodb://cosmos.example:10255", cfg.CosmosURI)
	assert.Equal(t, 5, cfg.LoginRateLimit)
}

func TestLoad_SinSecret(t *testing.T) {
	resetViper(t)
	t.Setenv("JWT_SECRET", "")
	t.Setenv("COSMOS_URI", "mongodb://localhost:27017")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestLoad_SinCosmosURI(t *testing.T) {
	resetViper(t)
	t.Setenv("JWT_SECRET", "test_jwt_secret_32_chars_minimum!")
	t.Setenv("COSMOS_URI", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingCosmosURI)
}
