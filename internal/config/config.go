package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Input struct {
		CSVPath string `yaml:"csv_path"`
	} `yaml:"input"`
	Output struct {
		SVGPath string `yaml:"svg_path"`
	} `yaml:"output"`
	Schedule struct {
		// RenderCron re-renders the chart on a cron schedule; empty means a
		// single one-shot render.
		RenderCron string `yaml:"render_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("CSV_PATH"); v != "" {
		cfg.Input.CSVPath = v
	}
	if v := os.Getenv("SVG_PATH"); v != "" {
		cfg.Output.SVGPath = v
	}
	if v := os.Getenv("RENDER_CRON"); v != "" {
		cfg.Schedule.RenderCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Input.CSVPath == "" {
		cfg.Input.CSVPath = "data/abtc_btc_prices.csv"
	}
	if cfg.Output.SVGPath == "" {
		cfg.Output.SVGPath = "abtc_btc_trend.svg"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Input.CSVPath == "" {
		return fmt.Errorf("input.csv_path is required")
	}
	if c.Output.SVGPath == "" {
		return fmt.Errorf("output.svg_path is required")
	}
	return nil
}
