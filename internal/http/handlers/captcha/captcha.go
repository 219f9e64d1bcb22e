package captcha

import (
	"net"
	"net/http"
	"recaptchav3/internal/core/services/captcha"
	"strings"
)

const CAPTCHA_TOKEN_HEADER = "X-Captcha-Token"
const CAPTCHA_TOKEN_FORM_FIELD = "g-recaptcha-response"

func SetCaptchaTokenToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(CAPTCHA_TOKEN_HEADER)
		if token == "" && isForm(r) {
			token = r.PostFormValue(CAPTCHA_TOKEN_FORM_FIELD)
		}
		if token != "" {
			r = r.WithContext(captcha.WithCaptchaToken(r.Context(), captcha.CaptchaToken(token)))
		}
		next.ServeHTTP(w, r)
	})
}

func SetClientRequestToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientRequest := captcha.ClientRequest{
			PeerIP: peerIP(r.RemoteAddr),
			Header: r.Header.Clone(),
		}
		r = r.WithContext(captcha.WithClientRequest(r.Context(), clientRequest))
		next.ServeHTTP(w, r)
	})
}

func isForm(r *http.Request) bool {
	contentType := r.Header.Get("Content-Type")
	return strings.HasPrefix(contentType, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(contentType, "multipart/form-data")
}

func peerIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
