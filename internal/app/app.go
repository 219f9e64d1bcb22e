package app

import (
	"fmt"
	"net/http"
	"recaptchav3/internal/app/deps"
	"recaptchav3/internal/app/services"
	"recaptchav3/internal/http/handlers/captcha"
	"recaptchav3/internal/http/handlers/demo"
	"recaptchav3/internal/http/handlers/recaptcha/keys"
	verifycheckbox "recaptchav3/internal/http/handlers/recaptcha/verify_checkbox"
	verifyscore "recaptchav3/internal/http/handlers/recaptcha/verify_score"
	"recaptchav3/internal/http/handlers/recaptcha/widget"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	return &http.Server{
		Handler:           NewRouter(deps, s),
		Addr:              fmt.Sprintf("0.0.0.0:%d", deps.Config.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func NewRouter(deps *deps.Deps, s *services.Services) http.Handler {
	recaptchaRouter := chi.NewRouter()
	recaptchaRouter.Method(http.MethodGet, "/keys", keys.New(deps.Recaptcha))
	recaptchaRouter.Method(http.MethodGet, "/script/{mode}", widget.NewScript(deps.Recaptcha))
	recaptchaRouter.Method(http.MethodGet, "/field/{mode}", widget.NewField(deps.Recaptcha))
	recaptchaRouter.Method(http.MethodPost, "/verify/score", verifyscore.New(deps.ScoreVerifier))
	recaptchaRouter.Method(http.MethodPost, "/verify/checkbox", verifycheckbox.New(deps.CheckboxVerifier))

	scorePage := demo.NewScorePage(deps.Recaptcha)
	checkboxPage := demo.NewCheckboxPage(deps.Recaptcha)
	demoRouter := chi.NewRouter()
	demoRouter.Use(captcha.SetCaptchaTokenToContext)
	demoRouter.Method(http.MethodPost, "/score", demo.NewSubmit(scorePage, s.SubmitMessageWithScore))
	demoRouter.Method(http.MethodPost, "/checkbox", demo.NewSubmit(checkboxPage, s.SubmitMessageWithCheckbox))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Use(captcha.SetClientRequestToContext)
	router.Method(http.MethodGet, "/", scorePage)
	router.Method(http.MethodGet, "/checkbox", checkboxPage)
	router.Mount("/recaptcha", recaptchaRouter)
	router.Mount("/demo", demoRouter)

	return router
}
