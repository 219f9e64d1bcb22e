package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	assert := require.New(t)
	rw := httptest.NewRecorder()

	Render(rw, map[string]bool{"success": true}, http.StatusOK)

	assert.Equal(http.StatusOK, rw.Code)
	assert.Equal("application/json", rw.Header().Get("Content-Type"))
	assert.JSONEq(`{"success": true}`, rw.Body.String())
}

func TestRenderCaptchaUnavailable(t *testing.T) {
	assert := require.New(t)
	rw := httptest.NewRecorder()

	RenderCaptchaUnavailable(rw)

	assert.Equal(http.StatusServiceUnavailable, rw.Code)
	assert.JSONEq(`{"error": "captcha verification is unavailable"}`, rw.Body.String())
}

func TestRenderHTML(t *testing.T) {
	assert := require.New(t)
	rw := httptest.NewRecorder()

	RenderHTML(rw, "<p>hi</p>", http.StatusOK)

	assert.Equal("text/html; charset=utf-8", rw.Header().Get("Content-Type"))
	assert.Equal("<p>hi</p>", rw.Body.String())
}
