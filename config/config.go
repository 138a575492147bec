package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the server's runtime settings
type Config struct {
	Addr      string `toml:"addr"`
	DBPath    string `toml:"db_path"`
	UploadDir string `toml:"upload_dir"`
}

// Default returns the configuration used when no file is provided
func Default() *Config {
	return &Config{
		Addr:      ":8000",
		DBPath:    "data/badger",
		UploadDir: "uploads",
	}
}

// Load reads a TOML config file, applying defaults for missing fields.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %v", path, err)
	}
	return cfg, nil
}
