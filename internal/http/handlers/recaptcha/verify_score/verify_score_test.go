package verifyscore

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	c "recaptchav3/internal/core/domain/common"
	"recaptchav3/internal/core/services/captcha"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyScore(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		score          captcha.Score
		verifierErr    error
		expectedStatus int
		expectedBody   string
		expectedCalls  []captcha.FakeVerifierCall
	}{
		{
			id:             "valid",
			body:           `{"token": "t", "action": "login"}`,
			score:          c.NewOptional(0.9, true),
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success": true, "score": 0.9}`,
			expectedCalls:  []captcha.FakeVerifierCall{{Token: "t", Action: "login"}},
		},
		{
			id:             "rejected",
			body:           `{"token": "t", "action": "login"}`,
			score:          c.Absent[float64](),
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success": false, "score": null}`,
			expectedCalls:  []captcha.FakeVerifierCall{{Token: "t", Action: "login"}},
		},
		{
			id:             "unavailable",
			body:           `{"token": "t"}`,
			verifierErr:    fmt.Errorf("timeout: %w", captcha.ErrCaptchaUnavailable),
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"error": "captcha verification is unavailable"}`,
			expectedCalls:  []captcha.FakeVerifierCall{{Token: "t"}},
		},
		{
			id:             "missing token",
			body:           `{"action": "login"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"token": "cannot be blank"}`,
		},
		{
			id:             "invalid action",
			body:           `{"token": "t", "action": "log in!"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"action": "must be in a valid format"}`,
		},
		{
			id:             "invalid json",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "invalid request data"}`,
		},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			assert := require.New(t)
			verifier := captcha.NewFakeVerifier()
			verifier.Score = testcase.score
			verifier.Err = testcase.verifierErr

			rw := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/recaptcha/verify/score", strings.NewReader(testcase.body))
			New(verifier).ServeHTTP(rw, r)

			assert.Equal(testcase.expectedStatus, rw.Code)
			assert.JSONEq(testcase.expectedBody, rw.Body.String())
			assert.Equal(testcase.expectedCalls, verifier.Calls)
		})
	}
}
