// Package web holds the embedded page templates.
package web

import (
	"embed"
	"html/template"

	"github.com/fireview/backend/internal/report"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses the embedded page templates with the shared helper
// functions.
func Templates() (*template.Template, error) {
	funcs := template.FuncMap{
		"money": report.FormatAmount,
		"date":  report.FormatDate,
		"add":   func(a, b int) int { return a + b },
		"has": func(values []string, value string) bool {
			for _, v := range values {
				if v == value {
					return true
				}
			}
			return false
		},

		// The CSS sanitizer does not know conic-gradient, the gradient
		// is built from numbers and palette constants only.
		"css": func(s string) template.CSS { return template.CSS(s) },
	}

	return template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
}
