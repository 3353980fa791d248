package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "age.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[window]
title = "demo"
width = 1280
backend = "glfw"

[assets]
root = "/srv/game"
watch = true

[random]
seed = 7
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Window.Title)
	assert.Equal(t, int32(1280), cfg.Window.Width)
	assert.Equal(t, int32(600), cfg.Window.Height)
	assert.Equal(t, BackendGLFW, cfg.Window.Backend)
	assert.Equal(t, "/srv/game", cfg.Assets.Root)
	assert.True(t, cfg.Assets.Watch)
	assert.Equal(t, uint64(7), cfg.Random.Seed)
	assert.Equal(t, "DejaVu Serif", cfg.Font.Family)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[window]\nfullscreen = true\n")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.Width = 0
	cfg.Window.Backend = "wayland"
	cfg.Font.Size = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window size")
	assert.Contains(t, err.Error(), "wayland")
	assert.Contains(t, err.Error(), "font size")
}
