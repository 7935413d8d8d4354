// Package stubapi is an in-process stand-in for the remote storefront
// backend. It implements just enough of the real API — cookie sessions,
// CSRF double-submit protection, DRF-style pagination and the checkout
// redirect on buy — to develop and test the client without network access.
package stubapi

import (
	_ "embed"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-openapi/runtime/middleware"

	"github.com/adaeze/nairamart/market"
)

const (
	// SessionCookieName is the session cookie the stub issues on login.
	SessionCookieName = "sessionid"
	// CSRFCookieName matches the cookie the client reads the token from.
	CSRFCookieName = "csrftoken"
	// CSRFHeaderName matches the header the client echoes the token in.
	CSRFHeaderName = "X-CSRFToken"
)

//go:embed openapi.yaml
var openapiSpec []byte

type account struct {
	email        string
	passwordHash []byte
}

type purchase struct {
	URL       string `json:"url"`
	Reference string `json:"reference"`
}

// Option configures the stub server.
type Option func(*Server)

// WithCoins replaces the seeded coin set.
func WithCoins(coins []market.Coin) Option {
	return func(s *Server) {
		s.coins = coins
	}
}

// WithCheckoutBase overrides the base URL of the synthetic hosted checkout
// pages returned from buy.
func WithCheckoutBase(base string) Option {
	return func(s *Server) {
		s.checkoutBase = base
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// Server holds the stub backend's in-memory state.
type Server struct {
	mu        sync.Mutex
	accounts  map[string]account  // keyed by username
	sessions  map[string]string   // session token -> username
	purchases map[string]purchase // idempotency key -> replayed result
	coins     []market.Coin

	checkoutBase string
	logger       *slog.Logger
}

// New creates a stub backend seeded with the default coin set.
func New(opts ...Option) *Server {
	s := &Server{
		accounts:     make(map[string]account),
		sessions:     make(map[string]string),
		purchases:    make(map[string]purchase),
		coins:        seedCoins(),
		checkoutBase: "https://checkout.example.com/pay",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	return s
}

// Router returns the stub's routes. Callers mount it under /api to match
// the real backend's layout.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(s.csrfMiddleware)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(openapiSpec)
	})
	r.Handle("/docs*", middleware.SwaggerUI(middleware.SwaggerUIOpts{
		SpecURL: "/api/openapi.yaml",
		Path:    "api/docs",
	}, nil))
	r.Handle("/redoc*", middleware.Redoc(middleware.RedocOpts{
		SpecURL: "/api/openapi.yaml",
		Path:    "api/redoc",
	}, nil))

	r.Post("/auth/register/", s.handleRegister)
	r.Post("/auth/login/", s.handleLogin)
	r.Post("/auth/logout/", s.handleLogout)

	r.Get("/cryptos/", s.handleList)
	r.Get("/cryptos/{id}/", s.handleGetByID)
	r.Post("/cryptos/buy/", s.handleBuy)

	return r
}

// username resolves the request's session cookie to a logged-in username.
func (s *Server) username(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	name, ok := s.sessions[cookie.Value]
	return name, ok
}
