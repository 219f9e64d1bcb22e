package recaptcha

import (
	"errors"
	"fmt"
	"net/http"
	e "recaptchav3/internal/core/domain/errors"
	"recaptchav3/internal/core/domain/logging"
	"recaptchav3/internal/core/services/captcha"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const DEFAULT_ORIGIN = "https://www.google.com/recaptcha"

var ErrInvalidConfig = errors.New("invalid recaptcha configuration")

type ConfigurationError struct {
	cause error
}

func (err *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrInvalidConfig, err.cause)
}

func (err *ConfigurationError) Unwrap() error {
	return err.cause
}

func (err *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// TransportError means the provider could not be asked or did not answer sensibly.
// It is never used for a token the provider rejected.
type TransportError struct {
	Op  string
	Err error
}

func (err *TransportError) Error() string {
	return fmt.Sprintf("recaptcha %s: %v", err.Op, err.Err)
}

func (err *TransportError) Unwrap() error {
	return err.Err
}

func (err *TransportError) Is(target error) bool {
	return target == captcha.ErrCaptchaUnavailable
}

type Config struct {
	SecretScore     string `json:"secretScore"`
	SecretCheckbox  string `json:"secretCheckbox"`
	SiteKeyScore    string `json:"siteKeyScore"`
	SiteKeyCheckbox string `json:"siteKeyCheckbox"`
	Origin          string `json:"origin"`
	Locale          string `json:"locale"`
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.SecretScore, validation.Required),
		validation.Field(&c.SecretCheckbox, validation.Required),
		validation.Field(&c.SiteKeyScore, validation.Required),
		validation.Field(&c.SiteKeyCheckbox, validation.Required),
		validation.Field(&c.Origin, is.URL),
	)
}

type HTTPClient interface {
	Do(request *http.Request) (*http.Response, error)
}

type Service struct {
	log        logging.Logger
	httpClient HTTPClient

	secretScore     string
	secretCheckbox  string
	siteKeyScore    string
	siteKeyCheckbox string
	origin          string
	locale          string
}

var (
	_ captcha.ScoreVerifier    = (*Service)(nil)
	_ captcha.CheckboxVerifier = (*Service)(nil)
	_ captcha.Widget           = (*Service)(nil)
)

// New fails if any credential is missing. appLocale is used only when cfg.Locale is empty.
func New(cfg Config, appLocale string, httpClient HTTPClient, log logging.Logger) (*Service, error) {
	if httpClient == nil {
		panic(e.NewNilArgumentError("httpClient"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if err := cfg.Validate(); err != nil {
		return nil, &ConfigurationError{cause: err}
	}

	origin := strings.TrimRight(cfg.Origin, "/")
	if origin == "" {
		origin = DEFAULT_ORIGIN
	}
	locale := cfg.Locale
	if locale == "" {
		locale = appLocale
	}

	return &Service{
		log:             log,
		httpClient:      httpClient,
		secretScore:     cfg.SecretScore,
		secretCheckbox:  cfg.SecretCheckbox,
		siteKeyScore:    cfg.SiteKeyScore,
		siteKeyCheckbox: cfg.SiteKeyCheckbox,
		origin:          origin,
		locale:          locale,
	}, nil
}

func (s *Service) SiteKeyScore() string {
	return s.siteKeyScore
}

func (s *Service) SiteKeyCheckbox() string {
	return s.siteKeyCheckbox
}

func (s *Service) Origin() string {
	return s.origin
}

func (s *Service) Locale() string {
	return s.locale
}
