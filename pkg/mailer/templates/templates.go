// Package templates renders the transactional emails this service sends.
package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

const confirmationHTML = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Welcome{{if .Name}}, {{.Name}}{{end}}!</h2>
  <p>Your account <strong>{{.Email}}</strong> has been registered.</p>
  {{if .Role}}<p>Account type: {{.Role}}.</p>{{end}}
  <p>If you did not create this account, please contact support.</p>
</body>
</html>`

const confirmationText = `Welcome{{if .Name}}, {{.Name}}{{end}}!

Your account {{.Email}} has been registered.
If you did not create this account, please contact support.`

var tmpls = map[string]struct {
	subject string
	text    *template.Template
	html    *template.Template
}{
	"confirmation": {
		subject: "Your account has been registered",
		text:    template.Must(template.New("confirmation_text").Parse(confirmationText)),
		html:    template.Must(template.New("confirmation_html").Parse(confirmationHTML)),
	},
}

// Render produces subject, text and HTML bodies for a named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	t, ok := tmpls[name]
	if !ok {
		return "", "", "", fmt.Errorf("unknown email template: %s", name)
	}

	var textBuf, htmlBuf bytes.Buffer
	if err := t.text.Execute(&textBuf, data); err != nil {
		return "", "", "", err
	}
	if err := t.html.Execute(&htmlBuf, data); err != nil {
		return "", "", "", err
	}
	return t.subject, textBuf.String(), htmlBuf.String(), nil
}
