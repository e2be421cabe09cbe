package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/greatowlmarketing/site/internal/infra/http/handlers"
	"github.com/greatowlmarketing/site/internal/infra/http/middleware"
)

// NewRouter wires the full URL table: marketing pages, the capture flow,
// permanent redirects for the legacy lead-magnet paths, and the
// operational endpoints.
func NewRouter(
	pages *handlers.PagesHandler,
	lead *handlers.LeadHandler,
	health *handlers.HealthHandler,
	allowedOrigins []string,
) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Headers)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Get("/", pages.Home)
	r.Get("/pricing/", pages.Pricing)
	r.Get("/book/", pages.Book)
	r.Get("/terms/", pages.Terms)
	r.Get("/privacy/", pages.Privacy)
	r.Get("/start/", pages.Start)
	r.Get("/gom-onboarding.html", pages.GomOnboarding)
	r.Get("/smartpro-agreement.html", pages.SmartProAgreement)

	r.Get("/free-guide/", lead.ShowForm)
	r.Post("/free-guide/", lead.Capture)
	r.Get("/free-guide/thanks/", lead.Thanks)

	// Canonical paths moved; keep the old links working forever.
	r.Get("/lead-magnet/", redirectPermanent("/free-guide/"))
	r.Get("/lead-magnet/thanks/", redirectPermanent("/free-guide/thanks/"))

	r.Get("/healthz", health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func redirectPermanent(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target, http.StatusMovedPermanently)
	}
}
