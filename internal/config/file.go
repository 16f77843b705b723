package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors the optional TOML configuration file. Every field is
// optional; unset values fall through to environment variables and defaults.
type fileConfig struct {
	Input       string          `toml:"input"`
	Output      string          `toml:"output"`
	Directory   fileDirectory   `toml:"directory"`
	Balldontlie fileBalldontlie `toml:"balldontlie"`
	Log         fileLog         `toml:"log"`
	Metrics     fileMetrics     `toml:"metrics"`
}

type fileDirectory struct {
	Kind    string `toml:"kind"`
	Dataset string `toml:"dataset"`
}

type fileBalldontlie struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
	Timeout string `toml:"timeout"`
}

type fileLog struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type fileMetrics struct {
	Enabled      *bool  `toml:"enabled"`
	Textfile     string `toml:"textfile"`
	OtlpEndpoint string `toml:"otlp_endpoint"`
	OtlpInsecure *bool  `toml:"otlp_insecure"`
	ServiceName  string `toml:"service_name"`
}

func readFile(path string) (fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return fc, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fc, fmt.Errorf("config file %s not found", path)
		}
		return fc, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}
