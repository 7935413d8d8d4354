package session

import (
	"context"
	"net/http"
	"net/url"

	"golang.org/x/text/unicode/norm"
)

// Doer is the slice of the HTTP layer the auth client needs.
type Doer interface {
	Do(ctx context.Context, method, path string, query url.Values, body, out any) error
}

// API calls the backend's auth endpoints. Passwords are NFKD-normalized
// before transmission so visually identical input authenticates identically
// regardless of how the platform composed it.
type API struct {
	client Doer
}

var _ AuthClient = (*API)(nil)

// NewAPI creates an auth endpoint client over the given HTTP client.
func NewAPI(client Doer) *API {
	return &API{client: client}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login posts credentials to the login endpoint. The backend answers with a
// session cookie and a CSRF cookie; both land in the client's jar.
func (a *API) Login(ctx context.Context, username, password string) error {
	body := loginRequest{
		Username: username,
		Password: norm.NFKD.String(password),
	}
	return a.client.Do(ctx, http.MethodPost, "/api/auth/login/", nil, body, nil)
}

// Register posts a new account to the register endpoint.
func (a *API) Register(ctx context.Context, username, email, password string) error {
	body := registerRequest{
		Username: username,
		Email:    email,
		Password: norm.NFKD.String(password),
	}
	return a.client.Do(ctx, http.MethodPost, "/api/auth/register/", nil, body, nil)
}

// Logout posts to the logout endpoint, invalidating the server-side session.
func (a *API) Logout(ctx context.Context) error {
	return a.client.Do(ctx, http.MethodPost, "/api/auth/logout/", nil, nil, nil)
}
