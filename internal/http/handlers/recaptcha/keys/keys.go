package keys

import (
	"net/http"
	e "recaptchav3/internal/core/domain/errors"
	"recaptchav3/internal/core/services/captcha"
	"recaptchav3/internal/http/handlers/response"
)

type Handler struct {
	widget captcha.Widget
}

func New(widget captcha.Widget) *Handler {
	if widget == nil {
		panic(e.NewNilArgumentError("widget"))
	}
	return &Handler{widget: widget}
}

type Response struct {
	ScoreSiteKey    string `json:"scoreSiteKey"`
	CheckboxSiteKey string `json:"checkboxSiteKey"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	response.Render(rw, Response{
		ScoreSiteKey:    h.widget.SiteKeyScore(),
		CheckboxSiteKey: h.widget.SiteKeyCheckbox(),
	}, http.StatusOK)
}
