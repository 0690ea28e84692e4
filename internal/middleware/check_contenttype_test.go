package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pantherbooks/identity/internal/middleware"
	"github.com/pantherbooks/identity/internal/pkg/web"
)

func TestCheckContentType(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name        string
		method      string
		contentType string
		wantStatus  int
	}{
		{"POST with JSON", http.MethodPost, web.MimeJSON, http.StatusOK},
		{"PUT with JSON", http.MethodPut, web.MimeJSON, http.StatusOK},
		{"POST with form data", http.MethodPost, "application/x-www-form-urlencoded", http.StatusUnsupportedMediaType},
		{"POST without content-type", http.MethodPost, "", http.StatusUnsupportedMediaType},
		{"PATCH with plain text", http.MethodPatch, "text/plain", http.StatusUnsupportedMediaType},
		{"GET without content-type", http.MethodGet, "", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/api/register", nil)
			if tt.contentType != "" {
				req.Header.Set(web.HeaderContentType, tt.contentType)
			}
			rec := httptest.NewRecorder()

			middleware.CheckContentType(next).ServeHTTP(rec, req)

			if got, want := rec.Code, tt.wantStatus; got != want {
				t.Errorf("rec.Code = %d\nwant: %d", got, want)
			}
		})
	}
}
