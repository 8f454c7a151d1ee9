package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storelane/auth-service/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_URL", "postgres://localhost:5432/auth")
	t.Setenv("TOKEN_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "test-secret", cfg.TokenSecret)
	assert.Equal(t, 60, cfg.TokenExpiryMin)
	assert.Equal(t, 5, cfg.LoginMaxAttempts)
	assert.Equal(t, 15, cfg.LockoutWindowMin)
	assert.Equal(t, 8, cfg.PasswordMinLength)
	assert.Equal(t, 72, cfg.PasswordMaxLength)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TOKEN_EXPIRY_MINUTES", "30")
	t.Setenv("LOGIN_MAX_ATTEMPTS", "3")
	t.Setenv("LOCKOUT_WINDOW_MINUTES", "5")

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.TokenExpiryMin)
	assert.Equal(t, 3, cfg.LoginMaxAttempts)
	assert.Equal(t, 5, cfg.LockoutWindowMin)
}

func TestLoad_MissingSigningSecret(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost:5432/auth")
	// t.Setenv registers the restore; the variable itself must be absent.
	t.Setenv("TOKEN_SECRET", "placeholder")
	require.NoError(t, os.Unsetenv("TOKEN_SECRET"))

	_, err := config.Load(context.Background())
	assert.Error(t, err, "missing signing material must fail startup")
}
