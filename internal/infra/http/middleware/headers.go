package middleware

import "net/http"

// ComputeHeaders returns the response headers every page carries. Kept as
// a pure function so tests can assert the exact set without a request.
//
// The permissions-policy pair silences Chrome's "potential permissions
// policy violation" console noise from embeds (Calendly, onboarding
// iframes) probing the Payment Request API. Both the modern and the
// legacy header are sent for older Chromium.
func ComputeHeaders() map[string]string {
	return map[string]string{
		"Permissions-Policy": "payment=*",
		"Feature-Policy":     "payment *",
	}
}

// Headers applies ComputeHeaders to every response unconditionally.
func Headers(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range ComputeHeaders() {
			w.Header().Set(k, v)
		}
		next.ServeHTTP(w, r)
	})
}
