package widget

import (
	"net/http"
	e "recaptchav3/internal/core/domain/errors"
	"recaptchav3/internal/core/services/captcha"
	"recaptchav3/internal/http/handlers/response"
	"regexp"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	MODE_SCORE    = "score"
	MODE_CHECKBOX = "checkbox"
)

// reCAPTCHA accepts only these characters in action names.
var actionPattern = regexp.MustCompile(`^[A-Za-z0-9/_]+$`)

var fieldNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type ScriptHandler struct {
	widget captcha.Widget
}

func NewScript(widget captcha.Widget) *ScriptHandler {
	if widget == nil {
		panic(e.NewNilArgumentError("widget"))
	}
	return &ScriptHandler{widget: widget}
}

func (h *ScriptHandler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "mode") {
	case MODE_SCORE:
		response.RenderHTML(rw, h.widget.ScriptTagScore(), http.StatusOK)
	case MODE_CHECKBOX:
		response.RenderHTML(rw, h.widget.ScriptTagCheckbox(), http.StatusOK)
	default:
		response.RenderError(rw, "unknown captcha mode", http.StatusNotFound)
	}
}

type FieldHandler struct {
	widget captcha.Widget
}

func NewField(widget captcha.Widget) *FieldHandler {
	if widget == nil {
		panic(e.NewNilArgumentError("widget"))
	}
	return &FieldHandler{widget: widget}
}

type FieldInput struct {
	Action string `json:"action"`
	Name   string `json:"name"`
}

func (i FieldInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Action, validation.Required, validation.Length(1, 100), validation.Match(actionPattern)),
		validation.Field(&i.Name, validation.Length(0, 100), validation.Match(fieldNamePattern)),
	)
}

func (h *FieldHandler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "mode") {
	case MODE_SCORE:
		input := FieldInput{Action: r.URL.Query().Get("action"), Name: r.URL.Query().Get("name")}
		if err := input.Validate(); err != nil {
			response.Render(rw, err, http.StatusBadRequest)
			return
		}
		response.RenderHTML(rw, h.widget.RenderFieldScore(input.Action, input.Name), http.StatusOK)
	case MODE_CHECKBOX:
		response.RenderHTML(rw, h.widget.RenderFieldCheckbox(), http.StatusOK)
	default:
		response.RenderError(rw, "unknown captcha mode", http.StatusNotFound)
	}
}
