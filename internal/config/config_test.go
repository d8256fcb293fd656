package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := writeConfig(t, "storage:\n  type: minio\n")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, BackendDatabase, cfg.Store.Backend)
	assert.Equal(t, 10*time.Second, cfg.Telemetry.Timeout)
	assert.Equal(t, "http://oecd2026.edu/course", cfg.Telemetry.ActivityBase)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.ConfigFile)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "9000"
  mode: debug
store:
  backend: redis
storage:
  type: minio
telemetry:
  timeout_seconds: 3
`)
	t.Setenv("SERVER_PORT", "9100")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, BackendRedis, cfg.Store.Backend)
	assert.Equal(t, 3*time.Second, cfg.Telemetry.Timeout)
}

func TestLoadConfig_RejectsUnknownBackend(t *testing.T) {
	dir := writeConfig(t, "store:\n  backend: etcd\nstorage:\n  type: minio\n")

	_, err := LoadConfig(dir)
	assert.ErrorContains(t, err, "unsupported store backend")
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "minio")
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "", cfg.ConfigFile)
	assert.Equal(t, "release", cfg.Server.Mode)
}
