package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

var verifyEmailHTML = template.Must(template.New("verify_email").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">Welcome to NHEA 2025!</h2>
  <p>Hi {{.Name}},</p>
  <p>Your verification code is:</p>
  <div style="background: #f3f4f6; padding: 20px; text-align: center; font-size: 32px; font-weight: bold; letter-spacing: 5px; margin: 20px 0;">
    {{.Code}}
  </div>
  <p>This code will expire in {{.ExpiresIn}}.</p>
</div>
`))

// Render produces subject, text and HTML bodies for a named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case "verify_email":
		var buf bytes.Buffer
		if err := verifyEmailHTML.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		subject = "NHEA - Verify Your Email"
		text = fmt.Sprintf("Your NHEA verification code is %v. It expires in %v.", data["Code"], data["ExpiresIn"])
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
