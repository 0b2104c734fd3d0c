package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains application configuration parameters. Every field can
// be overridden by a LEARNPY_-prefixed environment variable; commands
// layer flag values on top.
type Config struct {
	DBPath        string `env:"DB"`
	LessonsPath   string `env:"LESSONS"`
	PlaygroundURL string `env:"PLAYGROUND_URL"`
	HTTPPort      string `env:"HTTP_PORT" envDefault:"8642"`
	LogLevel      int    `env:"LOG_LEVEL" envDefault:"0"`
}

// New loads configuration from environment variables.
func New() (*Config, error) {
	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "LEARNPY_"}); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
