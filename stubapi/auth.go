package stubapi

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// handleRegister handles POST /auth/register/. Registration does not log
// the account in; the client sends the user through login afterwards.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[registerRequest](w, r)
	if !ok {
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	s.mu.Lock()
	if _, exists := s.accounts[req.Username]; exists {
		s.mu.Unlock()
		writeError(w, http.StatusBadRequest, "username already exists")
		return
	}
	s.accounts[req.Username] = account{email: req.Email, passwordHash: hash}
	s.mu.Unlock()

	s.logger.Info("account registered", slog.String("username", req.Username))
	writeDetail(w, http.StatusCreated, "registration successful")
}

// handleLogin handles POST /auth/login/. On success a session cookie and a
// readable CSRF cookie are issued.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[loginRequest](w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	acct, exists := s.accounts[req.Username]
	s.mu.Unlock()
	if !exists || bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = req.Username
	s.mu.Unlock()

	writeSessionCookies(w, token)
	s.logger.Info("login", slog.String("username", req.Username))
	writeDetail(w, http.StatusOK, "login successful")
}

// handleLogout handles POST /auth/logout/. Logout is idempotent: a request
// without a live session still succeeds.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		s.mu.Lock()
		delete(s.sessions, cookie.Value)
		s.mu.Unlock()
	}
	clearSessionCookies(w)
	writeDetail(w, http.StatusOK, "logout successful")
}
