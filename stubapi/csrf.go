package stubapi

import (
	"crypto/subtle"
	"net/http"

	"github.com/google/uuid"
)

// csrfMiddleware enforces double-submit cookie CSRF protection for
// cookie-authenticated mutating requests, matching the behavior the real
// backend's framework applies. Safe methods and requests without a session
// cookie are exempt — cross-origin requests cannot set custom headers.
func (s *Server) csrfMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		if _, err := r.Cookie(SessionCookieName); err != nil {
			next.ServeHTTP(w, r)
			return
		}

		cookie, err := r.Cookie(CSRFCookieName)
		if err != nil || cookie.Value == "" {
			writeError(w, http.StatusForbidden, "missing CSRF token")
			return
		}
		header := r.Header.Get(CSRFHeaderName)
		if subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(header)) != 1 {
			writeError(w, http.StatusForbidden, "invalid CSRF token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeSessionCookies sets the session cookie plus the CSRF double-submit
// cookie. The CSRF cookie is intentionally NOT HttpOnly so the client can
// read it and echo it as a request header on mutating requests.
func writeSessionCookies(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     CSRFCookieName,
		Value:    uuid.NewString(),
		Path:     "/",
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookies removes both cookies on logout.
func clearSessionCookies(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	http.SetCookie(w, &http.Cookie{
		Name:   CSRFCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}
