package recaptcha

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const DEFAULT_FIELD_NAME = "g-recaptcha-response"

var (
	scriptTagScoreTemplate    = template.Must(template.New("scriptTagScore").Parse(`<script src="{{.}}"></script>`))
	scriptTagCheckboxTemplate = template.Must(
		template.New("scriptTagCheckbox").Parse(`<script src="{{.}}" async defer></script>`),
	)
	fieldCheckboxTemplate = template.Must(
		template.New("fieldCheckbox").Parse(`<div class="g-recaptcha" data-sitekey="{{.}}"></div>`),
	)
	fieldScoreTemplate = template.Must(template.New("fieldScore").Parse(fieldScoreMarkup))
)

// The submit handler stays attached, but it does nothing once the token is set,
// so form.submit() happens once.
const fieldScoreMarkup = `<input type="hidden" name="{{.Name}}" id="{{.ID}}">
<script>
document.addEventListener('DOMContentLoaded', function () {
    var input = document.getElementById({{.ID}});
    if (!input) {
        return;
    }
    var form = input.closest('form');
    if (!form) {
        return;
    }
    form.addEventListener('submit', function (event) {
        if (input.value !== '') {
            return;
        }
        event.preventDefault();
        grecaptcha.ready(function () {
            grecaptcha.execute({{.SiteKey}}, {action: {{.Action}}}).then(function (token) {
                input.value = token;
                form.submit();
            });
        });
    });
});
</script>`

type fieldScoreData struct {
	ID      string
	Name    string
	SiteKey string
	Action  string
}

func (s *Service) ScriptTagScore() string {
	query := url.Values{}
	query.Set("hl", s.locale)
	query.Set("render", s.siteKeyScore)
	return render(scriptTagScoreTemplate, s.scriptURL(query))
}

func (s *Service) ScriptTagCheckbox() string {
	query := url.Values{}
	query.Set("hl", s.locale)
	return render(scriptTagCheckboxTemplate, s.scriptURL(query))
}

// RenderFieldScore renders a hidden token field and the script that fills it
// with a token for action right before the enclosing form is submitted.
func (s *Service) RenderFieldScore(action string, fieldName string) string {
	if fieldName == "" {
		fieldName = DEFAULT_FIELD_NAME
	}
	return render(fieldScoreTemplate, fieldScoreData{
		ID:      fieldID(fieldName),
		Name:    fieldName,
		SiteKey: s.siteKeyScore,
		Action:  action,
	})
}

func (s *Service) RenderFieldCheckbox() string {
	return render(fieldCheckboxTemplate, s.siteKeyCheckbox)
}

func (s *Service) scriptURL(query url.Values) string {
	return fmt.Sprintf("%s/api.js?%s", s.origin, query.Encode())
}

func fieldID(fieldName string) string {
	return fmt.Sprintf("%s-%s", fieldName, strings.ReplaceAll(uuid.NewString(), "-", ""))
}

func render(t *template.Template, data interface{}) string {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		panic(fmt.Sprintf("could not render %s: %v", t.Name(), err))
	}
	return b.String()
}
