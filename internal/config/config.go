// Package config loads the optional ~/.webwall/config.yaml. Every
// field has a default; a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"webwall/internal/metafetch"
	"webwall/internal/website"
)

const configFile = "config.yaml"

// Config holds process-wide settings.
type Config struct {
	LogLevel     string        // debug | info | warn | error
	LogFile      string        // default <dataDir>/webwall.log
	FetchTimeout time.Duration // title metadata fetch bound
	OTLPEndpoint string        // empty = tracing off

	// DataDir is resolved from WEBWALL_DIR or ~/.webwall, not from the
	// file itself.
	DataDir string
}

// fileConfig is the on-disk YAML shape. Durations are strings in
// time.ParseDuration syntax ("5s", "1500ms").
type fileConfig struct {
	LogLevel     string `yaml:"logLevel"`
	LogFile      string `yaml:"logFile"`
	FetchTimeout string `yaml:"fetchTimeout"`
	OTLPEndpoint string `yaml:"otlpEndpoint"`
}

// Load resolves the data dir, reads config.yaml if present, and fills
// in defaults.
func Load() (*Config, error) {
	dataDir, err := website.ResolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := &Config{
		LogLevel:     "info",
		FetchTimeout: metafetch.DefaultTimeout,
		DataDir:      dataDir,
	}

	data, err := os.ReadFile(filepath.Join(dataDir, configFile))
	if err == nil {
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", configFile, err)
		}
		if fc.LogLevel != "" {
			cfg.LogLevel = fc.LogLevel
		}
		if fc.LogFile != "" {
			cfg.LogFile = fc.LogFile
		}
		if fc.OTLPEndpoint != "" {
			cfg.OTLPEndpoint = fc.OTLPEndpoint
		}
		if fc.FetchTimeout != "" {
			d, err := time.ParseDuration(fc.FetchTimeout)
			if err != nil {
				return nil, fmt.Errorf("parse fetchTimeout: %w", err)
			}
			cfg.FetchTimeout = d
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", configFile, err)
	}

	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(dataDir, "webwall.log")
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = metafetch.DefaultTimeout
	}
	return cfg, nil
}
