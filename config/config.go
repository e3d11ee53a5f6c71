package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TAIL_INSPECTIONS_"

// Config holds everything the viewer reads at startup.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	View    ViewConfig    `yaml:"view"`
	Log     LogConfig     `yaml:"log"`
}

type CatalogConfig struct {
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"`
}

// ViewConfig holds the initial filter state. Values use the same words as
// the command-line flags (e.g. date: week, media: video, group: date).
type ViewConfig struct {
	Date  string `yaml:"date"`
	Media string `yaml:"media"`
	Group string `yaml:"group"`
	Now   string `yaml:"now"` // optional YYYY-MM-DD pin for "now"
}

type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Catalog: CatalogConfig{Watch: true},
		View: ViewConfig{
			Date:  "all",
			Media: "all",
			Group: "inspection",
		},
		Log: LogConfig{Level: "info"},
	}
}

// DefaultPath is ~/.config/tail-inspections/config.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tail-inspections", "config.yaml")
}

// Load builds a Config from defaults, then the YAML file at path, then
// environment overrides. An empty path tries DefaultPath and tolerates it
// being absent; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			if explicit || !os.IsNotExist(err) {
				return Config{}, err
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvPrefix + "CATALOG"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv(EnvPrefix + "WATCH"); v != "" {
		watch, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sWATCH: %w", EnvPrefix, err)
		}
		cfg.Catalog.Watch = watch
	}
	if v := os.Getenv(EnvPrefix + "DATE"); v != "" {
		cfg.View.Date = v
	}
	if v := os.Getenv(EnvPrefix + "MEDIA"); v != "" {
		cfg.View.Media = v
	}
	if v := os.Getenv(EnvPrefix + "GROUP"); v != "" {
		cfg.View.Group = v
	}
	if v := os.Getenv(EnvPrefix + "NOW"); v != "" {
		cfg.View.Now = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_PATH"); v != "" {
		cfg.Log.Path = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return nil
}
