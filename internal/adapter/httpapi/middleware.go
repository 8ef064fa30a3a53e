package httpapi

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
)

// RequireAdmin rejects requests without `Authorization: Bearer <token>`.
// An empty token disables the check.
func RequireAdmin(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				RenderJSON(w, r, ResponseError(CodeAuthRequired, "Admin token required", nil), Render.Status(http.StatusUnauthorized))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// recoverer turns a handler panic into the 500 envelope.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			s.logger.Error("Handler panic", "method", r.Method, "path", r.URL.Path, "panic", fmt.Sprint(rec), "stack", string(debug.Stack()))
			renderInternal(w, r)
		}()
		next.ServeHTTP(w, r)
	})
}

// baseURL is the scheme and host links should point at.
func (s *Server) baseURL(r *http.Request) string {
	if s.config.PublicBaseURL != "" {
		return strings.TrimSuffix(s.config.PublicBaseURL, "/")
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	host := r.Host
	if !s.config.TrustProxyHeaders {
		return scheme + "://" + host
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}
	if fwd := r.Header.Get("X-Forwarded-Host"); fwd != "" {
		host = strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	return scheme + "://" + host
}

// varyOnBase marks responses whose body embeds baseURL(r).
func (s *Server) varyOnBase(w http.ResponseWriter) {
	if s.config.PublicBaseURL != "" {
		return
	}
	w.Header().Add("Vary", "Host")
	if s.config.TrustProxyHeaders {
		w.Header().Add("Vary", "X-Forwarded-Host")
		w.Header().Add("Vary", "X-Forwarded-Proto")
	}
}
