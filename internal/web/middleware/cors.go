// Package middleware holds the HTTP middleware the API server mounts.
package middleware

import (
	"net/http"
	"os"
	"strings"
)

// allowedOrigins reads the comma-separated WEB_ALLOWED_ORIGINS env var.
func allowedOrigins() map[string]struct{} {
	origins := make(map[string]struct{})
	for _, o := range strings.Split(os.Getenv("WEB_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins[o] = struct{}{}
		}
	}
	return origins
}

// localhostOrigin reports whether origin is http(s)://localhost with an
// optional port. Local development needs no WEB_ALLOWED_ORIGINS setup.
func localhostOrigin(origin string) bool {
	rest, ok := strings.CutPrefix(origin, "http://localhost")
	if !ok {
		rest, ok = strings.CutPrefix(origin, "https://localhost")
	}
	if !ok {
		return false
	}
	return rest == "" || strings.HasPrefix(rest, ":")
}

// CORS lets the browser client call the JSON API from another origin.
// Only whitelisted or localhost origins get the allow headers echoed.
func CORS() func(http.Handler) http.Handler {
	allowed := allowedOrigins()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			_, whitelisted := allowed[origin]
			if origin != "" && (whitelisted || localhostOrigin(origin)) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type")
			w.Header().Set("Access-Control-Max-Age", "86400")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
