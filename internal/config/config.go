package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the dashboard configuration loaded from an optional YAML
// file in the user config directory. Missing fields fall back to
// defaults; command-line flags override the file.
type Config struct {
	Sampling SamplingConfig `yaml:"sampling"`
	Probe    ProbeConfig    `yaml:"probe"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SamplingConfig controls the render loop cadence.
type SamplingConfig struct {
	IntervalSeconds int `yaml:"interval_seconds"`
}

// ProbeConfig controls the internet reachability probe.
type ProbeConfig struct {
	Enabled         bool   `yaml:"enabled"`
	URL             string `yaml:"url"`
	IntervalSeconds int    `yaml:"interval_seconds"`
}

// LoggingConfig controls the diagnostic log sink.
type LoggingConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Sampling: SamplingConfig{IntervalSeconds: 1},
		Probe: ProbeConfig{
			Enabled:         true,
			URL:             "http://connectivity-check.ubuntu.com",
			IntervalSeconds: 30,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the YAML file at path over the defaults. A missing file
// is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("can't read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("can't parse config: %w", err)
	}

	if cfg.Sampling.IntervalSeconds <= 0 {
		cfg.Sampling.IntervalSeconds = 1
	}
	if cfg.Probe.IntervalSeconds <= 0 {
		cfg.Probe.IntervalSeconds = 30
	}

	return cfg, nil
}

// SamplingInterval returns the render loop tick period.
func (c Config) SamplingInterval() time.Duration {
	return time.Duration(c.Sampling.IntervalSeconds) * time.Second
}

// ProbeInterval returns the reachability probe period.
func (c Config) ProbeInterval() time.Duration {
	return time.Duration(c.Probe.IntervalSeconds) * time.Second
}
