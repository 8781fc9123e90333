package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(envFrom(map[string]string{
		"PORT":         "8080",
		"DATABASE_URL": "postgres://localhost/weighroom",
		"JWT_SECRET":   "s3cret",
	}))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshGrace)
	assert.Equal(t, "MASTER_ADMIN", cfg.AdminToken)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.AdminLoginEnabled())
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := load(envFrom(map[string]string{
		"PORT":           "3000",
		"DATABASE_URL":   "postgres://localhost/weighroom",
		"JWT_SECRET":     "s3cret",
		"TOKEN_TTL":      "30m",
		"ADMIN_USERNAME": "coach",
		"ADMIN_PASSWORD": "pw",
		"ADMIN_TOKEN":    "other",
		"LOG_LEVEL":      "DEBUG",
		"APP_ENV":        "production",
	}))
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "other", cfg.AdminToken)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "production", cfg.Environment)
	assert.True(t, cfg.AdminLoginEnabled())
}

func TestLoadMissingRequired(t *testing.T) {
	base := map[string]string{
		"PORT":         "8080",
		"DATABASE_URL": "postgres://localhost/weighroom",
		"JWT_SECRET":   "s3cret",
	}
	for _, key := range []string{"PORT", "DATABASE_URL", "JWT_SECRET"} {
		env := map[string]string{}
		for k, v := range base {
			if k != key {
				env[k] = v
			}
		}
		_, err := load(envFrom(env))
		assert.Error(t, err, "expected error when %s is missing", key)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	_, err := load(envFrom(map[string]string{
		"PORT":         "eighty",
		"DATABASE_URL": "postgres://localhost/weighroom",
		"JWT_SECRET":   "s3cret",
	}))
	assert.Error(t, err)

	_, err = load(envFrom(map[string]string{
		"PORT":         "8080",
		"DATABASE_URL": "postgres://localhost/weighroom",
		"JWT_SECRET":   "s3cret",
		"TOKEN_TTL":    "soon",
	}))
	assert.Error(t, err)
}
