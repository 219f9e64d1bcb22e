package demo

import (
	"errors"
	"html/template"
	"net/http"
	e "recaptchav3/internal/core/domain/errors"
	"recaptchav3/internal/core/services"
	"recaptchav3/internal/core/services/captcha"
	service "recaptchav3/internal/core/services/submit_message"
	"recaptchav3/internal/http/handlers/response"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{.Script}}
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Notice}}<p>{{.Notice}}</p>{{end}}
<form method="post" action="{{.Action}}">
<input type="text" name="author" placeholder="Name">
<textarea name="message" placeholder="Message"></textarea>
{{.Field}}
<button type="submit">Send</button>
</form>
</body>
</html>
`))

type page struct {
	Title  string
	Notice string
	Action string
	Script template.HTML
	Field  template.HTML
}

func renderPage(rw http.ResponseWriter, p page, status int) {
	var b strings.Builder
	if err := pageTemplate.Execute(&b, p); err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.RenderHTML(rw, b.String(), status)
}

type PageHandler struct {
	widget captcha.Widget
	mode   string
}

func NewScorePage(widget captcha.Widget) *PageHandler {
	if widget == nil {
		panic(e.NewNilArgumentError("widget"))
	}
	return &PageHandler{widget: widget, mode: "score"}
}

func NewCheckboxPage(widget captcha.Widget) *PageHandler {
	if widget == nil {
		panic(e.NewNilArgumentError("widget"))
	}
	return &PageHandler{widget: widget, mode: "checkbox"}
}

func (h *PageHandler) page(notice string) page {
	if h.mode == "checkbox" {
		return page{
			Title:  "Checkbox captcha",
			Notice: notice,
			Action: "/demo/checkbox",
			Script: template.HTML(h.widget.ScriptTagCheckbox()),
			Field:  template.HTML(h.widget.RenderFieldCheckbox()),
		}
	}
	return page{
		Title:  "Score captcha",
		Notice: notice,
		Action: "/demo/score",
		Script: template.HTML(h.widget.ScriptTagScore()),
		Field:  template.HTML(h.widget.RenderFieldScore(service.CAPTCHA_ACTION, "")),
	}
}

func (h *PageHandler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	renderPage(rw, h.page(""), http.StatusOK)
}

type SubmitHandler struct {
	page    *PageHandler
	service services.Service[service.Input, service.Result]
}

func NewSubmit(page *PageHandler, service services.Service[service.Input, service.Result]) *SubmitHandler {
	if page == nil {
		panic(e.NewNilArgumentError("page"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &SubmitHandler{page: page, service: service}
}

type Input struct {
	Author  string `json:"author"`
	Message string `json:"message"`
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Author, validation.Required, validation.Length(0, 100)),
		validation.Field(&i.Message, validation.Required, validation.Length(0, 2000)),
	)
}

func (h *SubmitHandler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{Author: r.PostFormValue("author"), Message: r.PostFormValue("message")}
	if err := input.Validate(); err != nil {
		renderPage(rw, h.page.page(err.Error()), http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Author: input.Author, Message: input.Message})
	if err != nil {
		switch {
		case errors.Is(err, captcha.ErrInvalidCaptcha):
			renderPage(rw, h.page.page("Captcha verification failed, please try again."), http.StatusUnprocessableEntity)
		case errors.Is(err, captcha.ErrCaptchaUnavailable):
			renderPage(rw, h.page.page("Captcha verification is unavailable, please try later."), http.StatusServiceUnavailable)
		default:
			renderPage(rw, h.page.page("Something went wrong."), http.StatusInternalServerError)
		}
		return
	}

	renderPage(rw, h.page.page("Thank you, "+result.Author+"! Your message has been accepted."), http.StatusOK)
}
