package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/negociacion/admin/internal/config"
)

const testAPIURL = "http://localhost:3000"

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"API_URL", "LOG_LEVEL", "SESSION_BACKEND", "SESSION_PATH", "DETAIL_ASSET_URL", "VERSION",
		"PORT", "ADMIN_EMAIL", "ADMIN_PASSWORD", "BCRYPT_COST", "REQUIRE_AUTH",
	} {
		os.Unsetenv(key)
		os.Unsetenv("ADMIN_" + key)
		os.Unsetenv("MOCKAPI_" + key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ADMIN_API_URL", testAPIURL)

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, testAPIURL, cfg.APIURL)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "file", cfg.SessionBackend)
	assert.Equal(t, "", cfg.SessionPath)
	assert.Equal(t, config.DefaultDetailAssetURL, cfg.DetailAssetURL)
	assert.Equal(t, "dev", cfg.Version)
}

func TestLoad_EnvVarOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		assertFn func(t *testing.T, cfg *config.Config)
	}{
		{
			name:    "custom log level",
			envVars: map[string]string{"ADMIN_LOG_LEVEL": "debug"},
			assertFn: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
		{
			name:    "keyring session backend",
			envVars: map[string]string{"ADMIN_SESSION_BACKEND": "keyring"},
			assertFn: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "keyring", cfg.SessionBackend)
			},
		},
		{
			name:    "custom session path",
			envVars: map[string]string{"ADMIN_SESSION_PATH": "/tmp/admin/session.json"},
			assertFn: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "/tmp/admin/session.json", cfg.SessionPath)
			},
		},
		{
			name:    "detail asset host follows api",
			envVars: map[string]string{"ADMIN_DETAIL_ASSET_URL": testAPIURL},
			assertFn: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, testAPIURL, cfg.DetailAssetURL)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv("ADMIN_API_URL", testAPIURL)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := config.Load()

			require.NoError(t, err)
			tt.assertFn(t, cfg)
		})
	}
}

func TestLoad_MissingAPIURL(t *testing.T) {
	clearEnvVars(t)

	cfg, err := config.Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadMock_Defaults(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("MOCKAPI_ADMIN_PASSWORD", "secret")

	cfg, err := config.LoadMock()

	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "admin@negociacion.local", cfg.AdminEmail)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.False(t, cfg.RequireAuth)
}

func TestLoadMock_RequireAuth(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("MOCKAPI_ADMIN_PASSWORD", "secret")
	t.Setenv("MOCKAPI_REQUIRE_AUTH", "true")

	cfg, err := config.LoadMock()

	require.NoError(t, err)
	assert.True(t, cfg.RequireAuth)
}

func TestLoadMock_InvalidPort(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("MOCKAPI_ADMIN_PASSWORD", "secret")
	t.Setenv("MOCKAPI_PORT", "not-a-number")

	cfg, err := config.LoadMock()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}
