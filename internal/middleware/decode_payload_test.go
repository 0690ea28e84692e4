package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pantherbooks/identity/internal/middleware"
	"github.com/pantherbooks/identity/internal/pkg/web"
)

type loginPayload struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

func TestDecodePayload(t *testing.T) {
	t.Parallel()

	const bodySize = 1 << 10

	var tests = []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"Valid payload", `{"email":"pounce@uwm.edu","password":"password123"}`, http.StatusOK},
		{"Empty body", ``, http.StatusBadRequest},
		{"Malformed json", `{"email":`, http.StatusBadRequest},
		{"Unknown field", `{"email":"pounce@uwm.edu","admin":true}`, http.StatusUnprocessableEntity},
		{"Trailing data", `{"email":"pounce@uwm.edu"}{"email":"again@uwm.edu"}`, http.StatusBadRequest},
		{"Body too large", `{"email":"` + strings.Repeat("a", bodySize) + `@uwm.edu"}`, http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var decoded loginPayload
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				params, err := web.ParamsFromContext[loginPayload](r.Context())
				if err != nil {
					t.Errorf("web.ParamsFromContext() error = %v\nwant: %v", err, nil)
				}
				decoded = params
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			middleware.DecodePayload[loginPayload](bodySize)(next).ServeHTTP(rec, req)

			if got, want := rec.Code, tt.wantStatus; got != want {
				t.Errorf("rec.Code = %d\nwant: %d", got, want)
			}

			if tt.wantStatus == http.StatusOK && decoded.Email != "pounce@uwm.edu" {
				t.Errorf("decoded.Email = %q\nwant: %q", decoded.Email, "pounce@uwm.edu")
			}
		})
	}
}
