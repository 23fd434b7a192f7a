package config_test

import (
	"os"
	"testing"

	"github.com/caltrack/caltrack/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv unsets a variable for the duration of the test. t.Setenv with an
// empty value is not enough: envconfig only applies defaults to unset vars.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "") // registers restoration
	os.Unsetenv(key)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "test")
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_NAME", "DB_SSL_MODE", "LOG_LEVEL", "JWT_SECRET"} {
		unsetEnv(t, key)
	}

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "caltrack", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "info", cfg.LogLevel)
	// outside production a development secret is substituted
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "test")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "caltrack")
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("DB_NAME", "caltrack_test")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Contains(t, cfg.DSN(), "host=db.internal")
	assert.Contains(t, cfg.DSN(), "port=5433")
	assert.Contains(t, cfg.DSN(), "dbname=caltrack_test")
}

func TestValidateConfigProductionRequiresSecrets(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "production")

	cfg := &config.Config{
		DBHost: "localhost",
		DBUser: "postgres",
		DBName: "caltrack",
	}
	err := config.ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestValidateConfigRejectsEmptyHost(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "test")

	cfg := &config.Config{DBUser: "postgres", DBName: "caltrack"}
	err := config.ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_HOST")
}
