package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.New("").
	Funcs(template.FuncMap{
		// inc turns zero-based range indexes into 1-based ranking positions.
		"inc": func(i int) int { return i + 1 },
	}).
	ParseFS(templatesFS, "templates/*.html"))

// renderPage writes the index template. Template execution only fails on
// a broken template, which ships inside the binary, so a failure here is a
// build defect surfaced as a 500.
func renderPage(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.Error("failed to render page template", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
