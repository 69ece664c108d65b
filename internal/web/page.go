package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/otey247/diagram-creator/internal/templates"
	"go.uber.org/zap"
)

//go:embed templates static
var content embed.FS

type pageData struct {
	Templates []templates.Template
	Selected  templates.ID
	Label     string
	// lower-cased label used in the input placeholder
	Subject string
}

type Page struct {
	logger *zap.Logger
	index  *template.Template
}

func NewPage(logger *zap.Logger) *Page {
	return &Page{
		logger: logger.Named("web"),
		index:  template.Must(template.ParseFS(content, "templates/index.html")),
	}
}

// Index renders the form. ?template=<id> preselects a template.
func (p *Page) Index(w http.ResponseWriter, r *http.Request) {
	selected, err := templates.Parse(r.URL.Query().Get("template"))
	if err != nil {
		selected = templates.Default
	}

	data := pageData{
		Templates: templates.List(),
		Selected:  selected,
		Label:     selected.Label(),
		Subject:   strings.ToLower(selected.Label()),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.index.Execute(w, data); err != nil {
		p.logger.Error("template render error", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Static serves the embedded assets; mount it with the /static/ prefix stripped.
func (p *Page) Static() http.Handler {
	staticFS, _ := fs.Sub(content, "static")
	return http.FileServer(http.FS(staticFS))
}
