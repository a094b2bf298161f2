package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "Player", cfg.PlayerName)
	assert.Empty(t, cfg.DBPath)
	assert.Zero(t, cfg.Seed)
}

func TestParseFromEnvironment(t *testing.T) {
	t.Setenv("GAMIFY_DB", "/tmp/test.db")
	t.Setenv("GAMIFY_PLAYER", "Mirza")
	t.Setenv("GAMIFY_CATALOG", "/tmp/catalog.yaml")
	t.Setenv("GAMIFY_SEED", "42")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, "Mirza", cfg.PlayerName)
	assert.Equal(t, "/tmp/catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestParseRejectsBadSeed(t *testing.T) {
	t.Setenv("GAMIFY_SEED", "not-a-number")
	_, err := Parse()
	assert.Error(t, err)
}
