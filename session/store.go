// Package session owns the client's record of who is logged in. The Store
// is an explicit object handed to page flows rather than a process-wide
// singleton: flows read snapshots and subscribe to changes, and all mutation
// happens inside the store's own methods.
package session

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// Identity describes the logged-in user as known to the client.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// State is a snapshot of the session. The zero value is the initial state:
// unauthenticated, no user, not loading.
type State struct {
	Authenticated bool
	User          *Identity
	Loading       bool
}

// AuthClient is the slice of the backend the store depends on.
type AuthClient interface {
	Login(ctx context.Context, username, password string) error
	Register(ctx context.Context, username, email, password string) error
	Logout(ctx context.Context) error
}

// Store holds the session state and performs the auth operations that
// mutate it.
type Store struct {
	mu     sync.Mutex
	state  State
	auth   AuthClient
	logger *slog.Logger

	nextSubID int
	subs      map[int]func(State)
}

// NewStore creates a Store in the initial (unauthenticated) state. A nil
// logger discards output.
func NewStore(auth AuthClient, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{
		auth:   auth,
		logger: logger,
		subs:   make(map[int]func(State)),
	}
}

// Current returns a snapshot of the session state.
func (s *Store) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// snapshot copies the state so callers cannot mutate the stored identity.
// Callers must hold s.mu.
func (s *Store) snapshot() State {
	st := s.state
	if st.User != nil {
		user := *st.User
		st.User = &user
	}
	return st
}

// Subscribe registers an observer invoked with a snapshot after every state
// change. The returned function cancels the subscription.
func (s *Store) Subscribe(fn func(State)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// set applies mutate under the lock and notifies subscribers outside it.
func (s *Store) set(mutate func(*State)) {
	s.mu.Lock()
	mutate(&s.state)
	snap := s.snapshot()
	observers := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		observers = append(observers, fn)
	}
	s.mu.Unlock()
	for _, fn := range observers {
		fn(snap)
	}
}

// Login authenticates against the backend. On success the store marks the
// session authenticated and synthesizes a local Identity: the login endpoint
// returns no user record, so the id and email here are placeholders and must
// not be treated as authoritative. On failure the state is left
// unauthenticated and the original error is returned for display.
func (s *Store) Login(ctx context.Context, username, password string) error {
	s.set(func(st *State) { st.Loading = true })
	if err := s.auth.Login(ctx, username, password); err != nil {
		s.set(func(st *State) { st.Loading = false })
		return err
	}
	s.set(func(st *State) {
		st.Authenticated = true
		st.User = &Identity{ID: 1, Username: username, Email: username + "@example.com"}
		st.Loading = false
	})
	return nil
}

// Register creates an account. It does not authenticate; callers send the
// user through Login afterwards.
func (s *Store) Register(ctx context.Context, username, email, password string) error {
	s.set(func(st *State) { st.Loading = true })
	err := s.auth.Register(ctx, username, email, password)
	s.set(func(st *State) { st.Loading = false })
	return err
}

// Logout is best-effort: the backend call may fail, but the local session
// always clears so the client can never be stuck logged in after a failed
// round trip.
func (s *Store) Logout(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		s.logger.Warn("logout request failed, clearing local session anyway",
			slog.Any("error", err))
	}
	s.set(func(st *State) { *st = State{} })
}

// SetUser overrides the current user. A nil user marks the session
// unauthenticated. Used to rehydrate a session whose cookies are still
// valid from a previous run.
func (s *Store) SetUser(user *Identity) {
	s.set(func(st *State) {
		if user == nil {
			*st = State{}
			return
		}
		u := *user
		st.User = &u
		st.Authenticated = true
	})
}
