package submitmessage

import (
	"context"
	"recaptchav3/internal/core/domain/logging"
	"recaptchav3/internal/core/services"
	"strings"
	"time"

	e "recaptchav3/internal/core/domain/errors"
)

// CAPTCHA_ACTION is the reCAPTCHA action the submit form requests tokens for.
const CAPTCHA_ACTION = "submit_message"

type Input struct {
	Author  string
	Message string
}

type Result struct {
	Author     string
	Message    string
	AcceptedAt time.Time
}

type service struct {
	log logging.Logger
	now func() time.Time
}

func New(log logging.Logger, now func() time.Time) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	result = Result{
		Author:     strings.TrimSpace(input.Author),
		Message:    strings.TrimSpace(input.Message),
		AcceptedAt: s.now(),
	}
	s.log.Info(
		ctx,
		"Message has been accepted.",
		logging.Entry("author", result.Author),
		logging.Entry("length", len(result.Message)),
	)
	return result, nil
}
