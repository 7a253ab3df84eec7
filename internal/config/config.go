package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config is the optional YAML config file. Flags and environment variables
// take precedence over anything set here.
type Config struct {
	API struct {
		URL string `yaml:"url"`
		Key string `yaml:"key"`
	} `yaml:"api"`
	Game struct {
		Pause string `yaml:"pause"`
	} `yaml:"game"`
	Reports struct {
		DatabaseURL string `yaml:"database_url"`
	} `yaml:"reports"`
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// PauseDuration parses a duration string or returns the fallback if empty or
// malformed.
func PauseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

// ReportsEnv carries the error-report database credentials. They normally
// live in a .env file next to the binary, the way the hosted-database admin
// tooling expects.
type ReportsEnv struct {
	DatabaseURL string `envconfig:"SUPABASE_DB_URL"`
}

// LoadReportsEnv loads .env when present and reads the report credentials
// from the environment.
func LoadReportsEnv() (ReportsEnv, error) {
	_ = godotenv.Load()
	var env ReportsEnv
	if err := envconfig.Process("", &env); err != nil {
		return env, fmt.Errorf("read report settings: %w", err)
	}
	return env, nil
}
