package notifications

import (
	"bytes"
	"html/template"
)

// ContactNotice is the part of a contact message included in the owner e-mail.
type ContactNotice struct {
	ID      string
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

const contactNotificationTemplate = `<!DOCTYPE html>
<html>
<body>
  <h3>New message from the portfolio contact form</h3>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  {{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
  {{if .Subject}}<p><strong>Subject:</strong> {{.Subject}}</p>{{end}}
  <p><strong>ID:</strong> {{.ID}}</p>
  <p><strong>Message:</strong><br/>{{.Message}}</p>
</body>
</html>`

var contactNotificationTmpl = template.Must(template.New("contact_notification").Parse(contactNotificationTemplate))

func buildContactNotificationHTML(notice ContactNotice) (string, error) {
	var buf bytes.Buffer
	if err := contactNotificationTmpl.Execute(&buf, notice); err != nil {
		return "", err
	}
	return buf.String(), nil
}
