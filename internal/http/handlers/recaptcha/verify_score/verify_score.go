package verifyscore

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	e "recaptchav3/internal/core/domain/errors"
	"recaptchav3/internal/core/services/captcha"
	"recaptchav3/internal/http/handlers/response"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
)

var actionPattern = regexp.MustCompile(`^[A-Za-z0-9/_]+$`)

type Handler struct {
	verifier captcha.ScoreVerifier
}

func New(verifier captcha.ScoreVerifier) *Handler {
	if verifier == nil {
		panic(e.NewNilArgumentError("verifier"))
	}
	return &Handler{verifier: verifier}
}

type Input struct {
	Token  string `json:"token"`
	Action string `json:"action"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Token, validation.Required, validation.Length(0, 4096)),
		validation.Field(&i.Action, validation.Length(0, 100), validation.Match(actionPattern)),
	)
}

type Response struct {
	Success bool     `json:"success"`
	Score   *float64 `json:"score"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	score, err := h.verifier.VerifyScore(r.Context(), captcha.CaptchaToken(input.Token), input.Action)
	if err != nil {
		switch {
		case errors.Is(err, captcha.ErrCaptchaUnavailable):
			response.RenderCaptchaUnavailable(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	if !score.IsPresent {
		response.Render(rw, Response{Success: false}, http.StatusOK)
		return
	}
	value := score.Value
	response.Render(rw, Response{Success: true, Score: &value}, http.StatusOK)
}
