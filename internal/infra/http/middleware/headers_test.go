package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeHeaders(t *testing.T) {
	headers := ComputeHeaders()

	assert.Equal(t, "payment=*", headers["Permissions-Policy"])
	assert.Equal(t, "payment *", headers["Feature-Policy"])
	assert.Len(t, headers, 2)
}

func TestHeadersMiddlewareAppliesUnconditionally(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	w := httptest.NewRecorder()
	Headers(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "payment=*", w.Header().Get("Permissions-Policy"))
	assert.Equal(t, "payment *", w.Header().Get("Feature-Policy"))
}
