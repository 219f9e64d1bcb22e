package captcha

import (
	"context"
	"sync"
)

type FakeVerifierCall struct {
	Token  CaptchaToken
	Action string
}

type FakeVerifier struct {
	Score    Score
	Checkbox bool
	Err      error

	Calls []FakeVerifierCall
	lock  sync.Mutex
}

func NewFakeVerifier() *FakeVerifier {
	return &FakeVerifier{}
}

func (v *FakeVerifier) VerifyScore(ctx context.Context, token CaptchaToken, expectedAction string) (Score, error) {
	v.record(token, expectedAction)
	if v.Err != nil {
		return Score{}, v.Err
	}
	return v.Score, nil
}

func (v *FakeVerifier) VerifyCheckbox(ctx context.Context, token CaptchaToken) (bool, error) {
	v.record(token, "")
	if v.Err != nil {
		return false, v.Err
	}
	return v.Checkbox, nil
}

func (v *FakeVerifier) record(token CaptchaToken, action string) {
	v.lock.Lock()
	defer v.lock.Unlock()
	v.Calls = append(v.Calls, FakeVerifierCall{Token: token, Action: action})
}

type FakeWidget struct {
	ScoreSiteKey    string
	CheckboxSiteKey string
}

func NewFakeWidget() *FakeWidget {
	return &FakeWidget{ScoreSiteKey: "score-key", CheckboxSiteKey: "checkbox-key"}
}

func (w *FakeWidget) SiteKeyScore() string {
	return w.ScoreSiteKey
}

func (w *FakeWidget) SiteKeyCheckbox() string {
	return w.CheckboxSiteKey
}

func (w *FakeWidget) ScriptTagScore() string {
	return "<script score></script>"
}

func (w *FakeWidget) ScriptTagCheckbox() string {
	return "<script checkbox></script>"
}

func (w *FakeWidget) RenderFieldScore(action string, fieldName string) string {
	return "<field " + fieldName + ":" + action + ">"
}

func (w *FakeWidget) RenderFieldCheckbox() string {
	return "<div checkbox>"
}
