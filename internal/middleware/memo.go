package middleware

import (
	"net/http"

	"go-wp-front/internal/wp"
)

// Memo installs a fresh request-scoped CMS memo into the request context,
// so identical upstream calls within one render pass are deduplicated. The
// memo dies with the request; nothing is shared across requests.
func Memo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(wp.WithMemo(r.Context())))
	})
}
