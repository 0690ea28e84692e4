package middleware

import (
	"fmt"
	"net/http"

	"github.com/pantherbooks/identity/internal/pkg/message"
	"github.com/pantherbooks/identity/internal/pkg/web"
)

// CheckContentType rejects payload-bearing requests that are not JSON.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			contentType := r.Header.Get(web.HeaderContentType)
			if contentType != web.MimeJSON {
				err := fmt.Errorf("invalid content-type: %s", contentType)
				web.Fail(w, http.StatusUnsupportedMediaType, err, message.InvalidInput, nil)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
