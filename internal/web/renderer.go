package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// Branding is exposed to every template, mirroring the values the header
// and footer partials expect.
type Branding struct {
	SiteName      string
	LogoURL       string
	StaticVersion string
}

// Page is the root object every template executes against.
type Page struct {
	Branding Branding
	Data     any
}

type Renderer struct {
	templates *template.Template
	branding  Branding
	logger    *zap.Logger
}

func NewRenderer(branding Branding, logger *zap.Logger) (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t, branding: branding, logger: logger}, nil
}

// Render executes the named template into a buffer first so a render
// failure can still become a clean 500 instead of a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	page := Page{Branding: r.branding, Data: data}
	if err := r.templates.ExecuteTemplate(&buf, name, page); err != nil {
		r.logger.Error("template render failed", zap.String("template", name), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
