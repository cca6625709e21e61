package dashboard

import (
	"bytes"
	"embed"
	"html/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// ptBR renders numbers with Brazilian separators.
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

var templates = template.Must(template.New("painel").Funcs(template.FuncMap{
	"usd": func(v float64) string { return ptBR.Sprintf("US$ %.0f", v) },
	"num": func(v int) string { return ptBR.Sprintf("%d", v) },
	"pct": func(v float64) string { return ptBR.Sprintf("%+.1f%%", v) },
}).ParseFS(templatesFS, "templates/*.tmpl"))

// renderFragment renders a named template into a string for SSE patching.
func renderFragment(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
