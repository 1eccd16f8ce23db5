package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the tunable settings of the cleanup run. Every field is
// optional in the file; missing values fall back to the defaults below.
type Config struct {
	// DataDir is the directory scanned for *_raw.json menu files.
	DataDir string `toml:"data_dir" yaml:"data_dir" json:"data_dir,omitempty"`
	// SQLOut is the path of the generated cleanup SQL script.
	SQLOut string `toml:"sql_out" yaml:"sql_out" json:"sql_out,omitempty"`
	// Table is the backing-store table the SQL targets.
	Table string `toml:"table" yaml:"table" json:"table,omitempty"`
	// CalorieThreshold removes items at or below this calorie count.
	CalorieThreshold int `toml:"calorie_threshold" yaml:"calorie_threshold" json:"calorie_threshold,omitempty"`
	// ExtraKidsPatterns adds substrings to the built-in kids-menu pattern set.
	ExtraKidsPatterns []string `toml:"extra_kids_patterns" yaml:"extra_kids_patterns" json:"extra_kids_patterns,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:          filepath.Join("data", "jsons"),
		SQLOut:           "cleanup_menu_items.sql",
		Table:            "menu_items",
		CalorieThreshold: 100,
	}
}

// Load reads a config file, chosen by extension (.toml, .yml or .yaml), and
// applies it on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config format: %s", path)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Discover looks for seekeatz.toml or seekeatz.yml in dir, TOML first, and
// returns the defaults when neither exists.
func Discover(dir string) (Config, error) {
	for _, name := range []string{"seekeatz.toml", "seekeatz.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default(), nil
}
