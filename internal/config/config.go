package config

import (
	"fmt"
	"strings"
)

// Config holds runtime configuration for a lookup run.
type Config struct {
	InputPath  string
	OutputPath string
	Directory  DirectoryConfig
	Log        LogConfig
	Metrics    MetricsConfig
}

// DirectoryConfig selects and configures the player directory.
type DirectoryConfig struct {
	Kind        string
	Dataset     string // optional dataset file for the static directory
	Balldontlie BalldontlieConfig
}

// LogConfig controls logger level and output format.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from an optional TOML file at path, then applies
// environment overrides and defaults. An empty path skips the file.
func Load(path string) (Config, error) {
	fc, err := readFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		InputPath:  envOrDefault(envInput, firstNonEmpty(fc.Input, DefaultInput)),
		OutputPath: envOrDefault(envOutput, firstNonEmpty(fc.Output, DefaultOutput)),
		Directory: DirectoryConfig{
			Kind:        strings.ToLower(strings.TrimSpace(envOrDefault(envDirectory, firstNonEmpty(fc.Directory.Kind, defaultDirectory)))),
			Dataset:     envOrDefault(envDirectoryDataset, fc.Directory.Dataset),
			Balldontlie: loadBalldontlie(fc.Balldontlie),
		},
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, firstNonEmpty(fc.Log.Level, defaultLogLevel)),
			Format: envOrDefault(envLogFormat, firstNonEmpty(fc.Log.Format, defaultLogFormat)),
		},
		Metrics: loadMetrics(fc.Metrics),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports configuration values that cannot produce a working run.
func (c Config) Validate() error {
	switch c.Directory.Kind {
	case DirectoryStatic, DirectoryBalldontlie:
	default:
		return fmt.Errorf("unknown directory %q (want %s or %s)", c.Directory.Kind, DirectoryStatic, DirectoryBalldontlie)
	}
	if strings.TrimSpace(c.InputPath) == "" {
		return fmt.Errorf("input path is required")
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return fmt.Errorf("output path is required")
	}
	return nil
}
