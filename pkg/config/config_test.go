package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join("data", "jsons"), cfg.DataDir)
	assert.Equal(t, "cleanup_menu_items.sql", cfg.SQLOut)
	assert.Equal(t, "menu_items", cfg.Table)
	assert.Equal(t, 100, cfg.CalorieThreshold)
	assert.Empty(t, cfg.ExtraKidsPatterns)
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seekeatz.toml")
	content := `data_dir = "menus"
calorie_threshold = 150
extra_kids_patterns = ["junior", "little"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "menus", cfg.DataDir)
	assert.Equal(t, 150, cfg.CalorieThreshold)
	assert.Equal(t, []string{"junior", "little"}, cfg.ExtraKidsPatterns)
	// Unset fields keep their defaults.
	assert.Equal(t, "menu_items", cfg.Table)
	assert.Equal(t, "cleanup_menu_items.sql", cfg.SQLOut)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seekeatz.yml")
	content := `sql_out: out.sql
table: staging_menu_items
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "out.sql", cfg.SQLOut)
	assert.Equal(t, "staging_menu_items", cfg.Table)
	assert.Equal(t, 100, cfg.CalorieThreshold)
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seekeatz.ini")
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "seekeatz.toml"))
	assert.Error(t, err)
}

func TestDiscoverPrefersTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seekeatz.toml"), []byte(`calorie_threshold = 50`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seekeatz.yml"), []byte(`calorie_threshold: 75`), 0644))

	cfg, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.CalorieThreshold)
}

func TestDiscoverFallsBackToYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seekeatz.yml"), []byte(`calorie_threshold: 75`), 0644))

	cfg, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, 75, cfg.CalorieThreshold)
}

func TestDiscoverDefaultsWhenNoFile(t *testing.T) {
	cfg, err := Discover(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
