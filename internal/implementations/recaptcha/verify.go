package recaptcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	c "recaptchav3/internal/core/domain/common"
	"recaptchav3/internal/core/domain/logging"
	"recaptchav3/internal/core/services/captcha"
	"strings"
	"time"

	"github.com/golang-module/carbon/v2"
)

// Cloudflare puts the visitor address here, RemoteAddr is the edge node.
const CLOUDFLARE_CONNECTING_IP_HEADER = "CF-Connecting-IP"

const maxResponseSize = 1 << 20

type Kind int

const (
	ScoreKind Kind = iota
	CheckboxKind
)

func (k Kind) String() string {
	if k == CheckboxKind {
		return "checkbox"
	}
	return "score"
}

type SiteVerifyResponse struct {
	Success       bool
	Score         c.Optional[float64]
	Action        c.Optional[string]
	Hostname      string
	ChallengeTime c.Optional[time.Time]
	ErrorCodes    []string
}

func (r *SiteVerifyResponse) FromJSON(reader io.Reader) error {
	var body map[string]interface{}
	if err := json.NewDecoder(reader).Decode(&body); err != nil {
		return err
	}
	if body == nil {
		return errors.New("response body is not a JSON object")
	}

	success, _ := body["success"].(bool)
	r.Success = success
	if score, ok := body["score"].(float64); ok {
		r.Score = c.NewOptional(score, true)
	}
	if action, ok := body["action"].(string); ok {
		r.Action = c.NewOptional(action, true)
	}
	r.Hostname, _ = body["hostname"].(string)
	if ts, ok := body["challenge_ts"].(string); ok {
		parsed := carbon.Parse(ts, carbon.UTC)
		if parsed.Error == nil {
			r.ChallengeTime = c.NewOptional(parsed.Carbon2Time(), true)
		}
	}
	if codes, ok := body["error-codes"].([]interface{}); ok {
		for _, code := range codes {
			if s, ok := code.(string); ok {
				r.ErrorCodes = append(r.ErrorCodes, s)
			}
		}
	}
	return nil
}

// VerifyScore returns an absent score if the token is rejected, the action does not
// match or the provider sent no score. An empty expectedAction skips the action check.
func (s *Service) VerifyScore(
	ctx context.Context,
	token captcha.CaptchaToken,
	expectedAction string,
) (captcha.Score, error) {
	response, err := s.Fetch(ctx, ScoreKind, token)
	if err != nil {
		return c.Absent[float64](), err
	}
	if !response.Success {
		return c.Absent[float64](), nil
	}
	if expectedAction != "" && (!response.Action.IsPresent || response.Action.Value != expectedAction) {
		s.log.Info(
			ctx,
			"Recaptcha action mismatch.",
			logging.Entry("expected", expectedAction),
			logging.Entry("actual", response.Action.String()),
		)
		return c.Absent[float64](), nil
	}
	return response.Score, nil
}

func (s *Service) VerifyCheckbox(ctx context.Context, token captcha.CaptchaToken) (bool, error) {
	response, err := s.Fetch(ctx, CheckboxKind, token)
	if err != nil {
		return false, err
	}
	return response.Success, nil
}

func (s *Service) Fetch(ctx context.Context, kind Kind, token captcha.CaptchaToken) (SiteVerifyResponse, error) {
	secret := s.secretScore
	if kind == CheckboxKind {
		secret = s.secretCheckbox
	}
	remoteIP := s.resolveClientIP(ctx)

	requestBody := url.Values{}
	requestBody.Add("secret", secret)
	requestBody.Add("response", string(token))
	requestBody.Add("remoteip", remoteIP)

	result := SiteVerifyResponse{}
	request, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.origin+"/api/siteverify",
		strings.NewReader(requestBody.Encode()),
	)
	if err != nil {
		return result, s.transportError(ctx, kind, "build request", err)
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := s.httpClient.Do(request)
	if err != nil {
		return result, s.transportError(ctx, kind, "send request", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return result, s.transportError(
			ctx,
			kind,
			"send request",
			fmt.Errorf("unexpected status code %d", response.StatusCode),
		)
	}
	if err := result.FromJSON(io.LimitReader(response.Body, maxResponseSize)); err != nil {
		return result, s.transportError(ctx, kind, "decode response", err)
	}

	s.log.Info(
		ctx,
		"Recaptcha token has been verified.",
		logging.Entry("kind", kind.String()),
		logging.Entry("success", result.Success),
		logging.Entry("score", result.Score.String()),
		logging.Entry("action", result.Action.String()),
		logging.Entry("hostname", result.Hostname),
		logging.Entry("errorCodes", result.ErrorCodes),
		logging.Entry("remoteIP", remoteIP),
	)
	return result, nil
}

func (s *Service) transportError(ctx context.Context, kind Kind, op string, err error) error {
	transportErr := &TransportError{Op: op, Err: err}
	logging.Error(ctx, s.log, transportErr, logging.Entry("kind", kind.String()))
	return transportErr
}

func (s *Service) resolveClientIP(ctx context.Context) string {
	r, ok := captcha.ClientRequestFromContext(ctx)
	if !ok {
		return ""
	}
	if ip := r.Header.Get(CLOUDFLARE_CONNECTING_IP_HEADER); ip != "" {
		return ip
	}
	return r.PeerIP
}
