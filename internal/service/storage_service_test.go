package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"oecd_explorer/internal/config"
	"oecd_explorer/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_PutOverwrites(t *testing.T) {
	dir := t.TempDir()
	s := &StorageService{Provider: &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: dir}}}
	ctx := context.Background()

	url, err := s.Put(ctx, "exports/a.json", []byte(`{"v":1}`), util.MimeJSON)
	require.NoError(t, err)
	assert.Equal(t, "/exports/a.json", url)

	_, err = s.Put(ctx, "exports/a.json", []byte(`{"v":2}`), util.MimeJSON)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "exports", "a.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(data))

	entries, err := os.ReadDir(filepath.Join(dir, "exports"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestNewStorageService_FallsBackToLocal(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Type: util.StorageMinio, LocalPath: t.TempDir()}}
	s := NewStorageService(cfg)
	assert.Equal(t, util.StorageLocal, s.Backend())
}
