package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	AppEnv         string        `env:"APP_ENV" envDefault:"development"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`

	Email    EmailConfig
	Database DatabaseConfig
}

type EmailConfig struct {
	APIKey    string        `env:"RESEND_API_KEY"`
	BaseURL   string        `env:"RESEND_BASE_URL" envDefault:"https://api.resend.com"`
	FromEmail string        `env:"FROM_EMAIL" envDefault:"noreply@resend.dev"`
	SiteURL   string        `env:"SITE_URL" envDefault:"http://localhost:3000"`
	Timeout   time.Duration `env:"EMAIL_TIMEOUT" envDefault:"10s"`
}

// Configured reports whether a provider key is set. Without one, sends are
// simulated.
func (c EmailConfig) Configured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

type DatabaseConfig struct {
	URL string `env:"DATABASE_URL"`
	Key string `env:"DATABASE_KEY"`
}

func (c DatabaseConfig) Configured() bool {
	return strings.TrimSpace(c.URL) != ""
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the configuration from the given variables only.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Email.SiteURL = strings.TrimRight(strings.TrimSpace(cfg.Email.SiteURL), "/")
	cfg.Email.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Email.BaseURL), "/")
	if cfg.RequestTimeout <= 0 {
		return Config{}, fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	return cfg, nil
}
