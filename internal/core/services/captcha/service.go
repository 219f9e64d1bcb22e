package captcha

import (
	"context"
	e "recaptchav3/internal/core/domain/errors"
	"recaptchav3/internal/core/domain/logging"
	"recaptchav3/internal/core/services"
)

type scoreService[T any, S any] struct {
	log       logging.Logger
	verifier  ScoreVerifier
	action    string
	threshold float64
	inner     services.Service[T, S]
}

// WithScoreCaptcha runs inner only if the request token scores at least threshold for action.
func WithScoreCaptcha[T any, S any](
	log logging.Logger,
	verifier ScoreVerifier,
	action string,
	threshold float64,
	inner services.Service[T, S],
) services.Service[T, S] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if verifier == nil {
		panic(e.NewNilArgumentError("verifier"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &scoreService[T, S]{
		log:       log,
		verifier:  verifier,
		action:    action,
		threshold: threshold,
		inner:     inner,
	}
}

func (s *scoreService[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	token := CaptchaTokenFromContext(ctx)
	if token.IsZero() {
		s.log.Info(ctx, "Captcha token is not provided.", logging.Entry("action", s.action))
		return result, ErrInvalidCaptcha
	}

	score, err := s.verifier.VerifyScore(ctx, token, s.action)
	if err != nil {
		return result, err
	}
	if !score.IsPresent || score.Value < s.threshold {
		s.log.Info(
			ctx,
			"Captcha score is too low.",
			logging.Entry("action", s.action),
			logging.Entry("score", score.String()),
			logging.Entry("threshold", s.threshold),
		)
		return result, ErrInvalidCaptcha
	}
	return s.inner.Run(ctx, input)
}

type checkboxService[T any, S any] struct {
	log      logging.Logger
	verifier CheckboxVerifier
	inner    services.Service[T, S]
}

func WithCheckboxCaptcha[T any, S any](
	log logging.Logger,
	verifier CheckboxVerifier,
	inner services.Service[T, S],
) services.Service[T, S] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if verifier == nil {
		panic(e.NewNilArgumentError("verifier"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &checkboxService[T, S]{log: log, verifier: verifier, inner: inner}
}

func (s *checkboxService[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	token := CaptchaTokenFromContext(ctx)
	if token.IsZero() {
		s.log.Info(ctx, "Captcha token is not provided.")
		return result, ErrInvalidCaptcha
	}

	ok, err := s.verifier.VerifyCheckbox(ctx, token)
	if err != nil {
		return result, err
	}
	if !ok {
		return result, ErrInvalidCaptcha
	}
	return s.inner.Run(ctx, input)
}
