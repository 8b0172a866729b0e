package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

const envPrefix = "SCHEMAGATE_"

// Load builds the configuration from defaults, an optional yaml file, and
// SCHEMAGATE_* environment overrides, in that order.
func Load(filename string) (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, err
	}

	if filename != "" {
		content, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, err
		}
	}

	if err := loadEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(envPrefix + "LISTEN"); ok {
		cfg.Listen = v
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_FILE"); ok {
		cfg.Log.File = v
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_LEVEL"); ok {
		cfg.Log.Level = LogLevel(v)
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_FORMAT"); ok {
		cfg.Log.Format = LogFormat(v)
	}
	if v, ok := os.LookupEnv(envPrefix + "ACCESS_LOG_FILE"); ok {
		cfg.AccessLog.File = v
	}
	if v, ok := os.LookupEnv(envPrefix + "ACCESS_LOG_FORMAT"); ok {
		cfg.AccessLog.Format = LogFormat(v)
	}
	if v, ok := os.LookupEnv(envPrefix + "GATE_DRAFT"); ok {
		cfg.Gate.Draft = v
	}
	if v, ok := os.LookupEnv(envPrefix + "GATE_SCHEMA_ECHO"); ok {
		echo, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sGATE_SCHEMA_ECHO: %s", envPrefix, v)
		}
		cfg.Gate.SchemaEcho = &echo
	}
	return nil
}
