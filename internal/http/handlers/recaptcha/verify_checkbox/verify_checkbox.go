package verifycheckbox

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	e "recaptchav3/internal/core/domain/errors"
	"recaptchav3/internal/core/services/captcha"
	"recaptchav3/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	verifier captcha.CheckboxVerifier
}

func New(verifier captcha.CheckboxVerifier) *Handler {
	if verifier == nil {
		panic(e.NewNilArgumentError("verifier"))
	}
	return &Handler{verifier: verifier}
}

type Input struct {
	Token string `json:"token"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Token, validation.Required, validation.Length(0, 4096)),
	)
}

type Response struct {
	Success bool `json:"success"`
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

	ok, err := h.verifier.VerifyCheckbox(r.Context(), captcha.CaptchaToken(input.Token))
	if err != nil {
		switch {
		case errors.Is(err, captcha.ErrCaptchaUnavailable):
			response.RenderCaptchaUnavailable(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}
	response.Render(rw, Response{Success: ok}, http.StatusOK)
}
