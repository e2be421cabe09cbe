package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/greatowlmarketing/site/internal/usecase"
	"github.com/greatowlmarketing/site/internal/web"
)

const (
	freeGuidePath  = "/free-guide/"
	leadThanksPath = "/free-guide/thanks/"
	noticeCookie   = "gom_notice"
	noticeSent     = "sent"
	noticeSaved    = "saved"
)

// leadFormData is what the capture template renders: the echoed input
// plus per-field error messages.
type leadFormData struct {
	Name    string
	Email   string
	Consent bool
	Errors  map[string]string
}

type LeadHandler struct {
	uc          *usecase.CaptureLeadUseCase
	renderer    *web.Renderer
	logger      *zap.Logger
	rateLimiter *RateLimiter
}

func NewLeadHandler(uc *usecase.CaptureLeadUseCase, renderer *web.Renderer, logger *zap.Logger) *LeadHandler {
	return &LeadHandler{
		uc:          uc,
		renderer:    renderer,
		logger:      logger,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 submissions/min per IP
	}
}

// ShowForm renders the empty capture form.
func (h *LeadHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "free_guide.html", leadFormData{})
}

// Capture runs validate -> persist -> subscribe -> redirect. Validation
// failures redisplay the form with the input echoed; a store failure is
// the one hard error; a failed subscription only softens the notice.
func (h *LeadHandler) Capture(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.rateLimiter.Allow(clientIP(r)) {
		http.Error(w, "too many requests, please try again later", http.StatusTooManyRequests)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	input, validationErrs := usecase.ValidateLeadForm(r.PostForm)
	if len(validationErrs) > 0 {
		data := leadFormData{
			Name:    r.PostForm.Get("name"),
			Email:   r.PostForm.Get("email"),
			Consent: r.PostForm.Get("consent") != "",
			Errors:  make(map[string]string, len(validationErrs)),
		}
		for _, ve := range validationErrs {
			data.Errors[ve.Field] = ve.Message
		}
		h.renderer.Render(w, http.StatusOK, "free_guide.html", data)
		return
	}

	output, err := h.uc.Execute(ctx, input)
	if err != nil {
		// The lead is not captured without persistence; no fallback.
		http.Error(w, "something went wrong, please try again", http.StatusInternalServerError)
		return
	}

	notice := noticeSaved
	if output.Subscribed {
		notice = noticeSent
	}
	http.SetCookie(w, &http.Cookie{
		Name:     noticeCookie,
		Value:    notice,
		Path:     freeGuidePath,
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, leadThanksPath, http.StatusSeeOther)
}

// Thanks renders the post-capture page with the transient notice, then
// clears it.
func (h *LeadHandler) Thanks(w http.ResponseWriter, r *http.Request) {
	notice := "Thanks for your interest!"
	if c, err := r.Cookie(noticeCookie); err == nil {
		switch c.Value {
		case noticeSent:
			notice = "Check your inbox! Your free guide is on its way."
		case noticeSaved:
			notice = "Thanks! We saved your email. We will send the guide shortly."
		}
		http.SetCookie(w, &http.Cookie{Name: noticeCookie, Path: freeGuidePath, MaxAge: -1})
	}

	h.renderer.Render(w, http.StatusOK, "lead_thanks.html", struct{ Notice string }{notice})
}
