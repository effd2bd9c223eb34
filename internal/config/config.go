// Package config assembles runtime settings from the environment.
//
// Sources, highest priority first: explicit overrides (CLI flags), process
// environment, an optional .env file, then DefaultConfig.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/skillmatch/skillmatch/internal/llm"
	"github.com/skillmatch/skillmatch/internal/store"
)

// DefaultEnvFile is loaded when present and no other file is named.
const DefaultEnvFile = ".env"

// Config is the resolved application configuration.
type Config struct {
	// DBPath is the SQLite file holding accounts, session and LLM logs.
	DBPath string `env:"DB"`

	LogLevel string `env:"LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error disabled"`

	// PasswordHash selects how new passwords are stored: "plain" or "bcrypt".
	PasswordHash string `env:"PASSWORD_HASH" validate:"omitempty,oneof=plain bcrypt"`

	// EvaluationTimeout bounds a single evaluation request.
	EvaluationTimeout time.Duration `env:"EVALUATION_TIMEOUT" validate:"gte=0"`

	// LLM is replaced by llm.ConfigFromEnv after parsing so provider
	// discovery applies.
	LLM llm.Config
}

// Overrides are values set on the command line.
type Overrides struct {
	DBPath  string
	EnvFile string
}

// DefaultConfig returns the built-in settings. DBPath is resolved lazily
// by Load because it touches the filesystem.
func DefaultConfig() Config {
	return Config{
		LogLevel:          "info",
		PasswordHash:      "plain",
		EvaluationTimeout: 30 * time.Second,
		LLM:               llm.DefaultConfig(),
	}
}

// Load builds a Config from the environment and over.
func Load(over Overrides) (Config, error) {
	if err := loadEnvFile(over.EnvFile); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: llm.EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env config: %w", err)
	}

	llmCfg, err := llm.ConfigFromEnv()
	if err != nil {
		return Config{}, err
	}
	cfg.LLM = llmCfg

	if over.DBPath != "" {
		cfg.DBPath = over.DBPath
	}

	if err := mergo.Merge(&cfg, DefaultConfig()); err != nil {
		return Config{}, fmt.Errorf("merge default config: %w", err)
	}

	if cfg.DBPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return Config{}, fmt.Errorf("resolve database path: %w", err)
		}
		cfg.DBPath = p
	}

	return cfg, cfg.Validate()
}

// Validate checks the non-LLM fields. LLM settings are validated when a
// provider is built, so a missing API key does not block the rest of the
// app.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// loadEnvFile populates unset variables from path. A missing default file
// is not an error; a missing named file is.
func loadEnvFile(path string) error {
	named := path != ""
	if !named {
		path = DefaultEnvFile
	}
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !named && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load env file %s: %w", path, err)
}
