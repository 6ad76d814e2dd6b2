package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/world.ini", cfg.WorldFile)
	assert.Equal(t, int64(-1), cfg.Seed)
	assert.False(t, cfg.HasSeed())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "dev", cfg.Environment)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DIGGER_WORLD_FILE", "/tmp/cave.ini")
	t.Setenv("DIGGER_SEED", "7")
	t.Setenv("DIGGER_LOG_LEVEL", "debug")
	t.Setenv("DIGGER_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/cave.ini", cfg.WorldFile)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.True(t, cfg.HasSeed())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadRejectsBadSeed(t *testing.T) {
	t.Setenv("DIGGER_SEED", "lots")

	_, err := Load()
	assert.Error(t, err)
}

func TestHasSeed(t *testing.T) {
	tests := map[int64]bool{-1: false, -42: false, 0: true, 7: true}
	for seed, want := range tests {
		cfg := Config{Seed: seed}
		assert.Equal(t, want, cfg.HasSeed(), "seed %d", seed)
	}
}
