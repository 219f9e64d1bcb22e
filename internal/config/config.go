package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

type RecaptchaConfig struct {
	SecretScore     string        `env:"SECRET_SCORE"`
	SecretCheckbox  string        `env:"SECRET_CHECKBOX"`
	SiteKeyScore    string        `env:"SITE_KEY_SCORE"`
	SiteKeyCheckbox string        `env:"SITE_KEY_CHECKBOX"`
	Origin          string        `env:"ORIGIN"`
	Locale          string        `env:"LOCALE"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
	ScoreThreshold  float64       `env:"SCORE_THRESHOLD" envDefault:"0.5"`
}

type Config struct {
	IsTestMode     bool            `env:"TEST_MODE" envDefault:"false"`
	Port           uint16          `env:"PORT" envDefault:"9090"`
	AppLocale      string          `env:"APP_LOCALE" envDefault:"en"`
	AllowedOrigins []string        `env:"ALLOWED_ORIGINS" envSeparator:","`
	SentryDsn      *url.URL        `env:"SENTRY_DSN"`
	Recaptcha      RecaptchaConfig `envPrefix:"RECAPTCHA_"`
}

func Load() (*Config, error) {
	return LoadWith(env.Options{})
}

// LoadWith exists so tests can pass Environment instead of touching the process env.
func LoadWith(opts env.Options) (*Config, error) {
	config := &Config{}
	if err := env.Parse(config, opts); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	if config.Recaptcha.ScoreThreshold < 0 || config.Recaptcha.ScoreThreshold > 1 {
		return nil, fmt.Errorf("RECAPTCHA_SCORE_THRESHOLD must be within [0, 1], got %v", config.Recaptcha.ScoreThreshold)
	}
	if config.Recaptcha.RequestTimeout <= 0 {
		return nil, fmt.Errorf("RECAPTCHA_REQUEST_TIMEOUT must be positive, got %v", config.Recaptcha.RequestTimeout)
	}
	return config, nil
}
