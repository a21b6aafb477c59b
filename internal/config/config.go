package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ladenctl", "config.yml")
}

// Load reads the config from disk and environment. A missing config
// file yields the defaults — the init command creates one.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("shop.name", "Das Leseparadies Online")
	v.SetDefault("data.file", defaultDataFile())
	v.SetDefault("data.covers_dir", defaultCoversDir())
	v.SetDefault("data.seed_file", "")
	v.SetDefault("openlibrary.user_agent", "ladenctl/1.0 (book cover lookup)")
	v.SetDefault("openlibrary.requests_per_second", 2)
	v.SetDefault("openlibrary.max_retries", 2)

	v.SetEnvPrefix("LADENCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := os.Getenv("LADENCTL_CONFIG")
	if configPath == "" {
		configPath = DefaultPath()
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		// Not finding the config file is fine — the init command creates it.
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Data.File = ExpandHome(cfg.Data.File)
	cfg.Data.CoversDir = ExpandHome(cfg.Data.CoversDir)
	cfg.Data.SeedFile = ExpandHome(cfg.Data.SeedFile)

	return &cfg, nil
}

// Save writes the config to the default path.
func Save(cfg *Config) error {
	path := DefaultPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func defaultDataFile() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "ladenctl", "buecher.json")
}

func defaultCoversDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "ladenctl", "covers")
}
