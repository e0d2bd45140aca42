package resume

import (
	"bytes"
	"html/template"
	"strings"
)

const printTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Name}}</title>
  <style>
    @page { size: A4; margin: 18mm; }
    body { font-family: Helvetica, Arial, sans-serif; font-size: 12pt; color: #111; }
    h1 { font-size: 22pt; text-decoration: underline; margin: 0; }
    h2 { font-size: 16pt; font-weight: normal; margin: 4pt 0 12pt; }
    h3 { font-size: 14pt; text-decoration: underline; margin: 14pt 0 4pt; }
    p, li { margin: 2pt 0; }
    ul { list-style: none; padding: 0; margin: 0; }
    .desc { font-size: 11pt; margin-left: 20pt; margin-bottom: 6pt; }
  </style>
</head>
<body>
  <h1>{{.Name}}</h1>
  <h2>{{.Title}}</h2>
  <p>{{.Summary}}</p>

  <h3>Contact</h3>
  <ul>
  {{- range .Contact.Fields}}
    <li>{{.Label}}: {{.Value}}</li>
  {{- end}}
  </ul>

  <h3>Education</h3>
  <ul>
  {{- range .Education}}
    <li>{{.Degree}}, {{.School}} ({{.Year}})</li>
  {{- end}}
  </ul>

  <h3>Experience</h3>
  {{- range .Experience}}
  <p>{{.Role}} at {{.Company}} ({{.Year}})</p>
  <p class="desc">{{.Description}}</p>
  {{- end}}

  <h3>Skills</h3>
  <p>{{join .Skills ", "}}</p>

  <h3>Certifications</h3>
  <ul>
  {{- range .Certifications}}
    <li>{{.}}</li>
  {{- end}}
  </ul>
</body>
</html>`

var printTmpl = template.Must(template.New("resume_print").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(printTemplate))

// RenderHTML builds the printable page used for the PDF export.
func RenderHTML(doc Resume) (string, error) {
	var buf bytes.Buffer
	if err := printTmpl.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
