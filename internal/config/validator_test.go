package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_PASSWORD", "password")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_NAME", "carpacks")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
}

func TestValidateEnv_MissingVersion(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidateEnvWithWarnings(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("DEV_MODE", "")

		warnings, err := ValidateEnvWithWarnings()
		require.NoError(t, err)
		assert.Empty(t, warnings)
	})

	t.Run("weak secret and dev mode in prod", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("JWT_SECRET", "short")
		t.Setenv("DEV_MODE", "true")
		t.Setenv("ENVIRONMENT", "prod")

		warnings, err := ValidateEnvWithWarnings()
		require.NoError(t, err)
		assert.Len(t, warnings, 2)
	})
}
