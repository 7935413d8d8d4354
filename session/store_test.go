package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	loginErr    error
	registerErr error
	logoutErr   error

	loginCalls    int
	registerCalls int
	logoutCalls   int
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) error {
	f.loginCalls++
	return f.loginErr
}

func (f *fakeAuth) Register(ctx context.Context, username, email, password string) error {
	f.registerCalls++
	return f.registerErr
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func TestStoreInitialState(t *testing.T) {
	s := NewStore(&fakeAuth{}, nil)
	st := s.Current()
	assert.False(t, st.Authenticated)
	assert.Nil(t, st.User)
	assert.False(t, st.Loading)
}

func TestStoreLoginSuccess(t *testing.T) {
	auth := &fakeAuth{}
	s := NewStore(auth, nil)

	require.NoError(t, s.Login(t.Context(), "chiamaka", "secret"))

	st := s.Current()
	assert.True(t, st.Authenticated)
	assert.False(t, st.Loading)
	require.NotNil(t, st.User)
	assert.Equal(t, "chiamaka", st.User.Username)
	assert.Equal(t, "chiamaka@example.com", st.User.Email)
	assert.Equal(t, 1, auth.loginCalls)
}

func TestStoreLoginFailureLeavesUnauthenticated(t *testing.T) {
	auth := &fakeAuth{loginErr: errors.New("invalid credentials")}
	s := NewStore(auth, nil)

	err := s.Login(t.Context(), "chiamaka", "wrong")
	require.EqualError(t, err, "invalid credentials")

	st := s.Current()
	assert.False(t, st.Authenticated)
	assert.Nil(t, st.User)
	assert.False(t, st.Loading)
}

func TestStoreLoginLoadingTransitions(t *testing.T) {
	s := NewStore(&fakeAuth{}, nil)

	var loading []bool
	cancel := s.Subscribe(func(st State) { loading = append(loading, st.Loading) })
	defer cancel()

	require.NoError(t, s.Login(t.Context(), "u", "p"))
	require.Len(t, loading, 2)
	assert.True(t, loading[0], "first notification should mark loading")
	assert.False(t, loading[1], "final notification should clear loading")
}

func TestStoreRegisterDoesNotAuthenticate(t *testing.T) {
	auth := &fakeAuth{}
	s := NewStore(auth, nil)

	require.NoError(t, s.Register(t.Context(), "nneka", "nneka@example.com", "secret"))

	st := s.Current()
	assert.False(t, st.Authenticated)
	assert.Nil(t, st.User)
	assert.Equal(t, 1, auth.registerCalls)
}

func TestStoreLogoutAlwaysClears(t *testing.T) {
	tests := []struct {
		name      string
		logoutErr error
	}{
		{"backend succeeds", nil},
		{"backend fails", errors.New("network down")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuth{logoutErr: tt.logoutErr}
			s := NewStore(auth, nil)
			require.NoError(t, s.Login(t.Context(), "u", "p"))

			s.Logout(t.Context())

			st := s.Current()
			assert.False(t, st.Authenticated)
			assert.Nil(t, st.User)
			assert.Equal(t, 1, auth.logoutCalls)
		})
	}
}

func TestStoreSubscribeAndCancel(t *testing.T) {
	s := NewStore(&fakeAuth{}, nil)

	calls := 0
	cancel := s.Subscribe(func(State) { calls++ })

	s.SetUser(&Identity{ID: 1, Username: "u"})
	assert.Equal(t, 1, calls)

	cancel()
	s.SetUser(nil)
	assert.Equal(t, 1, calls, "cancelled subscriber must not fire")
}

func TestStoreSetUser(t *testing.T) {
	s := NewStore(&fakeAuth{}, nil)

	s.SetUser(&Identity{ID: 7, Username: "restored", Email: "restored@example.com"})
	st := s.Current()
	assert.True(t, st.Authenticated)
	require.NotNil(t, st.User)
	assert.Equal(t, "restored", st.User.Username)

	s.SetUser(nil)
	st = s.Current()
	assert.False(t, st.Authenticated)
	assert.Nil(t, st.User)
}

func TestStoreSnapshotIsACopy(t *testing.T) {
	s := NewStore(&fakeAuth{}, nil)
	s.SetUser(&Identity{ID: 1, Username: "original"})

	st := s.Current()
	st.User.Username = "tampered"

	assert.Equal(t, "original", s.Current().User.Username)
}
