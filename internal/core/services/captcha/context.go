package captcha

import (
	"context"
	"net/http"
)

type contextCaptchaToken string
type contextClientRequest string

const CONTEXT_CAPTCHA_TOKEN_KEY = contextCaptchaToken("captchaToken")
const CONTEXT_CLIENT_REQUEST_KEY = contextClientRequest("clientRequest")

// ClientRequest is what the verifier needs to know about the incoming request.
type ClientRequest struct {
	PeerIP string
	Header http.Header
}

func WithCaptchaToken(ctx context.Context, token CaptchaToken) context.Context {
	return context.WithValue(ctx, CONTEXT_CAPTCHA_TOKEN_KEY, token)
}

func CaptchaTokenFromContext(ctx context.Context) CaptchaToken {
	token, _ := ctx.Value(CONTEXT_CAPTCHA_TOKEN_KEY).(CaptchaToken)
	return token
}

func WithClientRequest(ctx context.Context, r ClientRequest) context.Context {
	return context.WithValue(ctx, CONTEXT_CLIENT_REQUEST_KEY, r)
}

func ClientRequestFromContext(ctx context.Context) (ClientRequest, bool) {
	r, ok := ctx.Value(CONTEXT_CLIENT_REQUEST_KEY).(ClientRequest)
	return r, ok
}
