package services

import (
	"recaptchav3/internal/app/deps"
	"recaptchav3/internal/core/services"
	"recaptchav3/internal/core/services/captcha"
	submitmessage "recaptchav3/internal/core/services/submit_message"
)

type Services struct {
	SubmitMessageWithScore    services.Service[submitmessage.Input, submitmessage.Result]
	SubmitMessageWithCheckbox services.Service[submitmessage.Input, submitmessage.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SubmitMessageWithScore = captcha.WithScoreCaptcha(
		deps.Logger,
		deps.ScoreVerifier,
		submitmessage.CAPTCHA_ACTION,
		deps.Config.Recaptcha.ScoreThreshold,
		submitmessage.New(deps.Logger, deps.Now),
	)
	s.SubmitMessageWithCheckbox = captcha.WithCheckboxCaptcha(
		deps.Logger,
		deps.CheckboxVerifier,
		submitmessage.New(deps.Logger, deps.Now),
	)

	return s
}
