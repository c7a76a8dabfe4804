// Package config loads the application configuration from environment
// variables and an optional YAML file. Every setting has a working
// default, so the demo binary runs without any environment or files.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"datawash/internal/errors"
)

// envPrefix is the prefix of all environment variables, e.g.
// DATAWASH_LOGGING_LEVEL.
const envPrefix = "DATAWASH"

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"text"`
	Output string `yaml:"output" envconfig:"OUTPUT" default:"stderr"`
}

// Load loads configuration from environment variables and an optional
// config file. Precedence: environment, then file, then defaults.
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, errors.NewConfigError("failed to load config from env", err)
	}

	// Load from config file if exists
	if configFile := getConfigFilePath(); configFile != "" {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, errors.NewConfigError("failed to load config from file", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the built-in configuration without consulting the
// environment or any config file.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config into env config. A file value applies
// only when the matching environment variable is unset, so the
// precedence stays environment, file, default.
func mergeConfigs(fileConfig, envConfig Config) Config {
	if !envSet("LOGGING_LEVEL") && fileConfig.Logging.Level != "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if !envSet("LOGGING_FORMAT") && fileConfig.Logging.Format != "" {
		envConfig.Logging.Format = fileConfig.Logging.Format
	}
	if !envSet("LOGGING_OUTPUT") && fileConfig.Logging.Output != "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	return envConfig
}

func envSet(suffix string) bool {
	_, ok := os.LookupEnv(envPrefix + "_" + suffix)
	return ok
}

// validate validates the configuration
func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.NewConfigError(
			fmt.Sprintf("invalid logging level: %q", c.Logging.Level), nil)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return errors.NewConfigError(
			fmt.Sprintf("invalid logging format: %q", c.Logging.Format), nil)
	}

	switch c.Logging.Output {
	case "stderr", "stdout":
	default:
		return errors.NewConfigError(
			fmt.Sprintf("invalid logging output: %q", c.Logging.Output), nil)
	}

	return nil
}

// getConfigFilePath returns the path of the first config file found, or
// an empty string when none exists.
func getConfigFilePath() string {
	locations := []string{
		"datawash.yaml",
		"configs/datawash.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}
