package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/greatowlmarketing/site/internal/config"
	"github.com/greatowlmarketing/site/internal/infra/http/handlers"
	"github.com/greatowlmarketing/site/internal/usecase"
	"github.com/greatowlmarketing/site/internal/web"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := zap.NewNop()
	cfg := config.Config{
		CalendlyURL:        "https://calendly.com/example/intro",
		OnboardingEmbedURL: "https://forms.example.com/onboarding",
		AllowedOrigins:     []string{"*"},
	}

	renderer, err := web.NewRenderer(web.Branding{SiteName: "Great Owl Marketing"}, logger)
	assert.NoError(t, err)

	pages := handlers.NewPagesHandler(renderer, cfg)
	lead := handlers.NewLeadHandler(usecase.NewCaptureLeadUseCase(nil, nil, logger), renderer, logger)
	health := handlers.NewHealthHandler(nil, cfg.GetResponse)

	return NewRouter(pages, lead, health, cfg.AllowedOrigins)
}

func TestCorePagesReturn200(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/",
		"/pricing/",
		"/book/",
		"/free-guide/",
		"/terms/",
		"/privacy/",
		"/start/",
		"/gom-onboarding.html",
		"/smartpro-agreement.html",
		"/free-guide/thanks/",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "path %s", path)
	}
}

func TestLegacyLeadMagnetRedirectsPermanently(t *testing.T) {
	router := newTestRouter(t)

	cases := map[string]string{
		"/lead-magnet/":        "/free-guide/",
		"/lead-magnet/thanks/": "/free-guide/thanks/",
	}
	for path, target := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusMovedPermanently, w.Code, "path %s", path)
		assert.Equal(t, target, w.Header().Get("Location"))
	}
}

func TestPermissionsPolicyHeadersOnEveryPage(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "payment=*", w.Header().Get("Permissions-Policy"))
	assert.Equal(t, "payment *", w.Header().Get("Feature-Policy"))
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"getresponse":"not configured"`)
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}
