package config

import (
	"fmt"

	"rps_tourney/internal/tourney"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string `env:"LOG_FORMAT" envDefault:"text"`
	OnInvalid       string `env:"ON_INVALID" envDefault:"abort"`
	OutputLocale    string `env:"OUTPUT_LOCALE" envDefault:"en"`
	MetricsTextfile string `env:"METRICS_TEXTFILE"`

	// Set from the command line only.
	Path  string `env:"-"`
	Tally bool   `env:"-"`
}

// Load reads .env when present, then the environment. The result is not
// validated so command line flags can still override it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := c.Policy(); err != nil {
		return err
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}

	if _, err := c.Locale(); err != nil {
		return err
	}
	return nil
}

// Policy parses OnInvalid.
func (c *Config) Policy() (tourney.Policy, error) {
	p, err := tourney.ParsePolicy(c.OnInvalid)
	if err != nil {
		return "", fmt.Errorf("ON_INVALID: %w", err)
	}
	return p, nil
}

// Locale parses OutputLocale.
func (c *Config) Locale() (language.Tag, error) {
	tag, err := language.Parse(c.OutputLocale)
	if err != nil {
		return language.Und, fmt.Errorf("OUTPUT_LOCALE %q: %w", c.OutputLocale, err)
	}
	return tag, nil
}

func (c *Config) JSONLogs() bool {
	return c.LogFormat == "json"
}
