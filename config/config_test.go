package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DEFAULT_LISTEN_ADDRESS, cfg.GetListenAddress())
	assert.Equal(t, DEFAULT_REDIS_ADDRESS, cfg.GetRedisAddress())
	assert.Equal(t, DEFAULT_TOKEN_EXPIRY_MINUTES, cfg.GetTokenExpiryMinutes())
	assert.Equal(t, DEFAULT_REFRESH_INTERVAL_MINUTES, cfg.GetRefreshIntervalMinutes())
	assert.Equal(t, "dev", cfg.GetEnv())
}

func TestLoad_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "env: prod\n" +
		"listen_address: \":9090\"\n" +
		"redis_address: \"localhost:6379\"\n" +
		"token_expiry_minutes: 60\n" +
		"inference:\n" +
		"  base_url: \"http://models.internal/api\"\n" +
		"mqtt:\n" +
		"  enabled: true\n" +
		"  broker: \"localhost:1883\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.GetEnv())
	assert.Equal(t, ":9090", cfg.GetListenAddress())
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddress())
	assert.Equal(t, 60, cfg.GetTokenExpiryMinutes())
	assert.Equal(t, "http://models.internal/api", cfg.Inference.BaseURL)
	assert.True(t, cfg.MQTT.Enabled)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_address: \":9090\"\n"), 0o600))

	t.Setenv("SE_LISTEN_ADDRESS", ":7070")
	t.Setenv("SE_JWT_SECRET", "prod-secret")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.GetListenAddress())
	assert.Equal(t, "prod-secret", cfg.GetJWTSecret())
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_address: [\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
