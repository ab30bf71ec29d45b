package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"galeria/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfigHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home) // windows
	log.Initialize()
	t.Cleanup(log.Close)
	return home
}

func TestLoadConfigCreatesDefaults(t *testing.T) {
	home := setupConfigHome(t)

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "grid", cfg.Layout)
	assert.Equal(t, defaultPageSize, cfg.PageSize)
	assert.True(t, cfg.Lightbox)

	// First load writes the default config file.
	_, err := os.Stat(filepath.Join(home, ".galeria", ConfigFileName))
	assert.NoError(t, err)
}

func TestLoadConfigRoundTrip(t *testing.T) {
	setupConfigHome(t)

	cfg := DefaultConfig()
	cfg.Layout = "masonry"
	cfg.Columns = 4
	cfg.MultiSelect = true
	require.NoError(t, SaveConfig(cfg))

	loaded := LoadConfig()
	assert.Equal(t, "masonry", loaded.Layout)
	assert.Equal(t, 4, loaded.Columns)
	assert.True(t, loaded.MultiSelect)
}

func TestLoadConfigCorruptFallsBack(t *testing.T) {
	home := setupConfigHome(t)

	configDir := filepath.Join(home, ".galeria")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, ConfigFileName), []byte("{not json"), 0644))

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig().Layout, cfg.Layout)

	// The corrupted file is backed up alongside the config.
	entries, err := os.ReadDir(configDir)
	require.NoError(t, err)
	backedUp := false
	for _, e := range entries {
		if len(e.Name()) > len(ConfigFileName) && e.Name()[:len(ConfigFileName)] == ConfigFileName {
			backedUp = true
		}
	}
	assert.True(t, backedUp, "corrupt config should be backed up")
}

func TestLoadConfigFixesPageSize(t *testing.T) {
	setupConfigHome(t)

	cfg := DefaultConfig()
	cfg.PageSize = 0
	require.NoError(t, SaveConfig(cfg))

	loaded := LoadConfig()
	assert.Equal(t, defaultPageSize, loaded.PageSize)
}

func TestStateRoundTrip(t *testing.T) {
	setupConfigHome(t)

	state := DefaultState()
	state.AddRecentPath("/photos/vacation")
	state.MarkHelpScreenSeen(1)
	require.NoError(t, SaveState(state))

	loaded := LoadState()
	assert.Equal(t, []string{"/photos/vacation"}, loaded.RecentPaths)
	assert.True(t, loaded.HasSeenHelpScreen(1))
	assert.False(t, loaded.HasSeenHelpScreen(2))
}

func TestAddRecentPathDedupesAndCaps(t *testing.T) {
	state := DefaultState()
	state.AddRecentPath("/a")
	state.AddRecentPath("/b")
	state.AddRecentPath("/a")
	assert.Equal(t, []string{"/a", "/b"}, state.RecentPaths)

	for i := 0; i < maxRecentDirs+5; i++ {
		state.AddRecentPath(filepath.Join("/dir", string(rune('a'+i))))
	}
	assert.Len(t, state.RecentPaths, maxRecentDirs)
}

func TestStateCorruptFallsBack(t *testing.T) {
	home := setupConfigHome(t)

	configDir := filepath.Join(home, ".galeria")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, StateFileName), []byte("nope"), 0644))

	loaded := LoadState()
	assert.Equal(t, uint32(0), loaded.HelpScreensSeen)
	assert.Empty(t, loaded.RecentPaths)
}

func TestConfigJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"infinite_scroll"`)
	assert.Contains(t, string(data), `"page_size"`)
}
