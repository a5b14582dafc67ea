package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Env                  string `env:"ENV" envDefault:"development"`
	Port                 string `env:"PORT" envDefault:"8080"`
	DBURL                string `env:"DB_URL,required,notEmpty"`
	TokenSecret          string `env:"TOKEN_SECRET,required,notEmpty"`
	AccessExpiryMin      int    `env:"ACCESS_TOKEN_EXPIRY" envDefault:"15"`
	RenewalLifetimeHours int    `env:"RENEWAL_LIFETIME_HOURS" envDefault:"168"`
	AttemptWindowMin     int    `env:"ATTEMPT_WINDOW_MINUTES" envDefault:"15"`
	MaxEmailAttempts     int    `env:"MAX_EMAIL_ATTEMPTS" envDefault:"5"`
	MaxOriginFailures    int    `env:"MAX_ORIGIN_FAILURES" envDefault:"10"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
