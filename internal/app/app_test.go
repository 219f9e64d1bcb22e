package app

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"recaptchav3/internal/app/deps"
	"recaptchav3/internal/app/services"
	"recaptchav3/internal/config"
	"recaptchav3/internal/core/domain/logging"
	"recaptchav3/internal/implementations/recaptcha"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	provider     *httptest.Server
	providerBody string
	lock         sync.Mutex
	forms        []url.Values
	router       http.Handler
}

func (s *testSuite) SetupTest() {
	s.forms = nil
	s.providerBody = `{"success": true, "score": 0.9, "action": "submit_message"}`
	s.provider = httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		s.lock.Lock()
		s.forms = append(s.forms, r.PostForm)
		body := s.providerBody
		s.lock.Unlock()
		rw.Write([]byte(body))
	}))

	cfg := &config.Config{
		Port:      9090,
		AppLocale: "en",
		Recaptcha: config.RecaptchaConfig{ScoreThreshold: 0.5, RequestTimeout: time.Second},
	}
	log := logging.NewFakeLogger()
	service, err := recaptcha.New(recaptcha.Config{
		SecretScore:     "secret-score",
		SecretCheckbox:  "secret-checkbox",
		SiteKeyScore:    "site-key-score",
		SiteKeyCheckbox: "site-key-checkbox",
		Origin:          s.provider.URL,
	}, cfg.AppLocale, s.provider.Client(), log)
	s.Require().Nil(err)

	d := &deps.Deps{
		Config:           cfg,
		Logger:           log,
		HTTPClient:       s.provider.Client(),
		Now:              func() time.Time { return time.Now().UTC() },
		Recaptcha:        service,
		ScoreVerifier:    service,
		CheckboxVerifier: service,
	}
	s.router = NewRouter(d, services.InitServices(d))
}

func (s *testSuite) TearDownTest() {
	s.provider.Close()
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) respond(body string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.providerBody = body
}

func (s *testSuite) received() []url.Values {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.forms
}

func (s *testSuite) serve(r *http.Request) *httptest.ResponseRecorder {
	rw := httptest.NewRecorder()
	s.router.ServeHTTP(rw, r)
	return rw
}

func (s *testSuite) TestKeys() {
	rw := s.serve(httptest.NewRequest(http.MethodGet, "/recaptcha/keys", nil))

	s.Equal(http.StatusOK, rw.Code)
	s.JSONEq(`{"scoreSiteKey": "site-key-score", "checkboxSiteKey": "site-key-checkbox"}`, rw.Body.String())
}

func (s *testSuite) TestScorePage() {
	rw := s.serve(httptest.NewRequest(http.MethodGet, "/", nil))

	s.Equal(http.StatusOK, rw.Code)
	s.Contains(rw.Body.String(), "/api.js?hl=en&amp;render=site-key-score")
	s.Contains(rw.Body.String(), `{action: "submit_message"}`)
	s.NotContains(rw.Body.String(), "secret-score")
}

func (s *testSuite) TestSubmitScoreSendsClientIP() {
	form := url.Values{"author": {"Bob"}, "message": {"Hi"}, "g-recaptcha-response": {"token"}}
	r := httptest.NewRequest(http.MethodPost, "/demo/score", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.Header.Set("CF-Connecting-IP", "203.0.113.7")
	r.RemoteAddr = "172.68.1.1:5555"

	rw := s.serve(r)

	s.Equal(http.StatusOK, rw.Code)
	s.Contains(rw.Body.String(), "Thank you, Bob!")
	forms := s.received()
	s.Len(forms, 1)
	s.Equal("secret-score", forms[0].Get("secret"))
	s.Equal("token", forms[0].Get("response"))
	s.Equal("203.0.113.7", forms[0].Get("remoteip"))
}

func (s *testSuite) TestSubmitScoreWrongAction() {
	s.respond(`{"success": true, "score": 0.9, "action": "login"}`)
	form := url.Values{"author": {"Bob"}, "message": {"Hi"}, "g-recaptcha-response": {"token"}}
	r := httptest.NewRequest(http.MethodPost, "/demo/score", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rw := s.serve(r)

	s.Equal(http.StatusUnprocessableEntity, rw.Code)
}

func (s *testSuite) TestVerifyCheckboxUsesPeerIP() {
	s.respond(`{"success": true}`)
	r := httptest.NewRequest(http.MethodPost, "/recaptcha/verify/checkbox", strings.NewReader(`{"token": "t"}`))
	r.RemoteAddr = "198.51.100.2:1234"

	rw := s.serve(r)

	s.Equal(http.StatusOK, rw.Code)
	s.JSONEq(`{"success": true}`, rw.Body.String())
	forms := s.received()
	s.Len(forms, 1)
	s.Equal("secret-checkbox", forms[0].Get("secret"))
	s.Equal("198.51.100.2", forms[0].Get("remoteip"))
}

func (s *testSuite) TestVerifyScoreProviderDown() {
	s.provider.Close()

	rw := s.serve(httptest.NewRequest(http.MethodPost, "/recaptcha/verify/score", strings.NewReader(`{"token": "t"}`)))

	s.Equal(http.StatusServiceUnavailable, rw.Code)
}
