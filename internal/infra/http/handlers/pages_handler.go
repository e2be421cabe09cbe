package handlers

import (
	"net/http"

	"github.com/greatowlmarketing/site/internal/config"
	"github.com/greatowlmarketing/site/internal/web"
)

// PagesHandler serves the static marketing pages.
type PagesHandler struct {
	renderer *web.Renderer
	cfg      config.Config
}

func NewPagesHandler(renderer *web.Renderer, cfg config.Config) *PagesHandler {
	return &PagesHandler{renderer: renderer, cfg: cfg}
}

type calendlyData struct {
	CalendlyURL string
}

func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "home.html", calendlyData{h.cfg.CalendlyURL})
}

func (h *PagesHandler) Pricing(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "pricing.html", nil)
}

func (h *PagesHandler) Book(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "book.html", calendlyData{h.cfg.CalendlyURL})
}

func (h *PagesHandler) Terms(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "terms.html", nil)
}

func (h *PagesHandler) Privacy(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "privacy.html", nil)
}

// Start is the post-payment onboarding page. When an embed URL is
// configured it renders as an iframe; otherwise the page shows
// instructions.
func (h *PagesHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "start.html", struct{ EmbedURL string }{h.cfg.OnboardingEmbedURL})
}

// GomOnboarding serves the standalone onboarding form at its exact
// requested filename.
func (h *PagesHandler) GomOnboarding(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "gom-onboarding.html", nil)
}

// SmartProAgreement serves the standalone agreement page.
func (h *PagesHandler) SmartProAgreement(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "smartpro-agreement.html", nil)
}
