package captcha

// Widget renders what the browser needs to obtain a token. Only site keys end up in the markup.
type Widget interface {
	SiteKeyScore() string
	SiteKeyCheckbox() string
	ScriptTagScore() string
	ScriptTagCheckbox() string
	RenderFieldScore(action string, fieldName string) string
	RenderFieldCheckbox() string
}
