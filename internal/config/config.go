// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for aqlens.
type Config struct {
	Separator     string `mapstructure:"separator" yaml:"separator"`
	Worksheet     int    `mapstructure:"worksheet" yaml:"worksheet"`
	Sheet         string `mapstructure:"sheet" yaml:"sheet"`
	OutPrefix     string `mapstructure:"out_prefix" yaml:"out_prefix"`
	ClickHouseDSN string `mapstructure:"clickhouse_dsn" yaml:"clickhouse_dsn"`
	LogLevel      string `mapstructure:"log_level" yaml:"log_level"`
	LogFile       string `mapstructure:"log_file" yaml:"log_file"`
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("aqlens")

	v.SetDefault("separator", ",")
	v.SetDefault("worksheet", 0)
	v.SetDefault("sheet", "")
	v.SetDefault("out_prefix", "aq_")
	v.SetDefault("clickhouse_dsn", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	// Setup ENV binding with AQLENS_ prefix
	v.SetEnvPrefix("AQLENS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit ENV bindings for better int parsing
	for key, env := range map[string]string{
		"separator":      "AQLENS_SEPARATOR",
		"worksheet":      "AQLENS_WORKSHEET",
		"sheet":          "AQLENS_SHEET",
		"out_prefix":     "AQLENS_OUT_PREFIX",
		"clickhouse_dsn": "AQLENS_CLICKHOUSE_DSN",
		"log_level":      "AQLENS_LOG_LEVEL",
		"log_file":       "AQLENS_LOG_FILE",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		// Need to set config file explicitly for merge
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Separator == "" {
		return fmt.Errorf("separator cannot be empty")
	}
	if len([]rune(c.Separator)) > 1 {
		return fmt.Errorf("separator must be a single character, got %q", c.Separator)
	}
	if c.Worksheet < 0 {
		return fmt.Errorf("worksheet gid must be >= 0, got %d", c.Worksheet)
	}
	return nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/aqlens/aqlens.yml or $XDG_CONFIG_HOME/aqlens/aqlens.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "aqlens", "aqlens.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "aqlens", "aqlens.yml")
}

// ProjectPath returns the project-local config path.
// Returns ./aqlens.yml in the current working directory.
func ProjectPath() string {
	return "aqlens.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return writeFile(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return writeFile(ProjectPath(), cfg)
}

func writeFile(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
