package deps

import (
	"context"
	"fmt"
	"net/http"
	"recaptchav3/internal/config"
	dl "recaptchav3/internal/core/domain/logging"
	"recaptchav3/internal/core/services/captcha"
	"recaptchav3/internal/implementations/logging"
	"recaptchav3/internal/implementations/recaptcha"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	HTTPClient *http.Client

	Now func() time.Time

	Recaptcha        *recaptcha.Service
	ScoreVerifier    captcha.ScoreVerifier
	CheckboxVerifier captcha.CheckboxVerifier
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	flushSentry := deps.initSentry()

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.HTTPClient = &http.Client{Timeout: deps.Config.Recaptcha.RequestTimeout}
	deps.initRecaptcha()

	return deps, func() {
		closeFuncs := []func(){
			closeLogger,
			flushSentry,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initRecaptcha() {
	c := deps.Config.Recaptcha
	service, err := recaptcha.New(
		recaptcha.Config{
			SecretScore:     c.SecretScore,
			SecretCheckbox:  c.SecretCheckbox,
			SiteKeyScore:    c.SiteKeyScore,
			SiteKeyCheckbox: c.SiteKeyCheckbox,
			Origin:          c.Origin,
			Locale:          c.Locale,
		},
		deps.Config.AppLocale,
		deps.HTTPClient,
		deps.Logger,
	)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not configure reCAPTCHA.", dl.Entry("err", err))
		panic(err)
	}
	deps.Recaptcha = service

	if deps.Config.IsTestMode {
		deps.Logger.Warning(context.Background(), "Test mode is on, every captcha token is accepted.")
		allowAlways := captcha.NewAllowAlwaysCaptchaValidator()
		deps.ScoreVerifier = allowAlways
		deps.CheckboxVerifier = allowAlways
		return
	}
	deps.ScoreVerifier = service
	deps.CheckboxVerifier = service
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDsn != nil {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDsn.String(),
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}
