package captcha

import (
	"context"
	"errors"
	c "recaptchav3/internal/core/domain/common"
)

var (
	ErrInvalidCaptcha     = errors.New("invalid captcha")
	ErrCaptchaUnavailable = errors.New("captcha verification is unavailable")
)

type CaptchaToken string

func (t CaptchaToken) IsZero() bool {
	return string(t) == ""
}

// Score is absent when the provider rejected the token.
type Score = c.Optional[float64]

type ScoreVerifier interface {
	VerifyScore(ctx context.Context, token CaptchaToken, expectedAction string) (Score, error)
}

type CheckboxVerifier interface {
	VerifyCheckbox(ctx context.Context, token CaptchaToken) (bool, error)
}
