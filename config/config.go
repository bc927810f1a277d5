// Package config loads the host configuration from the environment (and an
// optional .env file) and the balancing rules from YAML.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables.
const (
	EnvWorldDir  = "WAYFARER_WORLD_DIR"
	EnvRulesFile = "WAYFARER_RULES_FILE"
	EnvLogLevel  = "WAYFARER_LOG_LEVEL"
	EnvLogFormat = "WAYFARER_LOG_FORMAT"
	EnvLogFile   = "WAYFARER_LOG_FILE"
	EnvSeed      = "WAYFARER_SEED"
	EnvFoldCase  = "WAYFARER_FOLD_CASE"
)

// Config holds the host configuration.
type Config struct {
	WorldDir  string // empty means the embedded default world
	RulesFile string // empty means DefaultRules
	LogLevel  string `validate:"oneof=debug info warn warning error"`
	LogFormat string `validate:"oneof=text json"`
	LogFile   string // empty discards logs
	Seed      int64
	FoldCase  bool

	Rules Rules
}

// Load reads the configuration from environment variables, loading a .env
// file first if one exists, then the rules file if one is named.
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		WorldDir:  getEnv(EnvWorldDir, ""),
		RulesFile: getEnv(EnvRulesFile, ""),
		LogLevel:  getEnv(EnvLogLevel, "info"),
		LogFormat: getEnv(EnvLogFormat, "text"),
		LogFile:   getEnv(EnvLogFile, ""),
		Seed:      time.Now().UnixNano(),
		Rules:     DefaultRules(),
	}

	if s, ok := os.LookupEnv(EnvSeed); ok && s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	fold, err := strconv.ParseBool(getEnv(EnvFoldCase, "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvFoldCase, err)
	}
	cfg.FoldCase = fold

	if cfg.RulesFile != "" {
		rules, err := LoadRules(cfg.RulesFile)
		if err != nil {
			return nil, err
		}
		cfg.Rules = rules
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
