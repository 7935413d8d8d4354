package session

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDoer struct {
	method string
	path   string
	body   any
}

func (d *recordingDoer) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	d.method = method
	d.path = path
	d.body = body
	return nil
}

func TestAPILoginNormalizesPassword(t *testing.T) {
	doer := &recordingDoer{}
	api := NewAPI(doer)

	// U+00E9 (precomposed) and U+0065 U+0301 (decomposed) are the same
	// character typed two ways; both must hit the wire identically.
	require.NoError(t, api.Login(t.Context(), "amaka", "caf\u00e9"))
	first := doer.body.(loginRequest)

	require.NoError(t, api.Login(t.Context(), "amaka", "cafe\u0301"))
	second := doer.body.(loginRequest)

	assert.Equal(t, first.Password, second.Password)
	assert.Equal(t, "POST", doer.method)
	assert.Equal(t, "/api/auth/login/", doer.path)
}

func TestAPIRegister(t *testing.T) {
	doer := &recordingDoer{}
	api := NewAPI(doer)

	require.NoError(t, api.Register(t.Context(), "amaka", "amaka@example.com", "secret"))
	assert.Equal(t, "/api/auth/register/", doer.path)
	body := doer.body.(registerRequest)
	assert.Equal(t, "amaka", body.Username)
	assert.Equal(t, "amaka@example.com", body.Email)
	assert.Equal(t, "secret", body.Password)
}

func TestAPILogout(t *testing.T) {
	doer := &recordingDoer{}
	api := NewAPI(doer)

	require.NoError(t, api.Logout(t.Context()))
	assert.Equal(t, "POST", doer.method)
	assert.Equal(t, "/api/auth/logout/", doer.path)
	assert.Nil(t, doer.body)
}
