package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"myregistry/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		helpers.EnvEnvFile, helpers.EnvConfigPath,
		"SERVICE_NAME", "SERVICE_BASE_URL", "REGISTRY_URL", "HEARTBEAT_INTERVAL",
		"REGISTRY_TIMEOUT_MS", "SIDECAR_PORT_HTTP", "REDIS_ADDR", "RESOLVE_CACHE_TTL_MS",
	} {
		t.Setenv(key, "")
	}
}

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SERVICE_NAME", "users")
	t.Setenv("SERVICE_BASE_URL", "http://users:8000")
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	setRequired(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "users", cfg.ServiceName)
	assert.Equal(t, "http://users:8000", cfg.ServiceBaseURL)
	assert.Equal(t, "http://localhost:5000", cfg.RegistryURL)
	assert.Equal(t, 10*time.Second, cfg.HeartbeatInterval)
	assert.Equal(t, 5*time.Second, cfg.RegistryTimeout)
	assert.Zero(t, cfg.HTTPPort)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 2*time.Second, cfg.ResolveCacheTTL)
}

func TestLoadConfig_Required(t *testing.T) {
	t.Run("service name", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SERVICE_BASE_URL", "http://users:8000")

		cfg, err := LoadConfig()
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "SERVICE_NAME is required")
	})
	t.Run("base url", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SERVICE_NAME", "users")

		cfg, err := LoadConfig()
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "SERVICE_BASE_URL is required")
	})
}

func TestLoadConfig_Env(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("REGISTRY_URL", "http://registry:5000")
	t.Setenv("HEARTBEAT_INTERVAL", "0.5")
	t.Setenv("REGISTRY_TIMEOUT_MS", "750")
	t.Setenv("SIDECAR_PORT_HTTP", "9100")
	t.Setenv("REDIS_ADDR", "redis://redis:6379")
	t.Setenv("RESOLVE_CACHE_TTL_MS", "0")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://registry:5000", cfg.RegistryURL)
	assert.Equal(t, 500*time.Millisecond, cfg.HeartbeatInterval)
	assert.Equal(t, 750*time.Millisecond, cfg.RegistryTimeout)
	assert.Equal(t, 9100, cfg.HTTPPort)
	assert.Equal(t, "redis://redis:6379", cfg.RedisAddr)
	assert.Zero(t, cfg.ResolveCacheTTL)
}

func TestLoadConfig_YAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "sidecar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"service_name: posts\nservice_base_url: http://posts:8000\nregistry_timeout_ms: 1000\n"), 0o600))
	t.Setenv(helpers.EnvConfigPath, path)
	t.Setenv("SERVICE_BASE_URL", "http://posts:9000")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "posts", cfg.ServiceName)
	assert.Equal(t, "http://posts:9000", cfg.ServiceBaseURL)
	assert.Equal(t, time.Second, cfg.RegistryTimeout)
	assert.Equal(t, 10*time.Second, cfg.HeartbeatInterval)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"registry url without scheme", "REGISTRY_URL", "registry:5000", "invalid REGISTRY_URL"},
		{"interval zero", "HEARTBEAT_INTERVAL", "0", "HEARTBEAT_INTERVAL must be positive"},
		{"interval not a number", "HEARTBEAT_INTERVAL", "often", "HEARTBEAT_INTERVAL must be a number of seconds"},
		{"timeout not a number", "REGISTRY_TIMEOUT_MS", "1.5", "REGISTRY_TIMEOUT_MS must be an integer"},
		{"timeout zero", "REGISTRY_TIMEOUT_MS", "0", "REGISTRY_TIMEOUT_MS must be positive"},
		{"port out of range", "SIDECAR_PORT_HTTP", "-1", "invalid SIDECAR_PORT_HTTP"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			setRequired(t)
			t.Setenv(tt.key, tt.val)

			cfg, err := LoadConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
