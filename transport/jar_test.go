package transport

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJarPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.db")
	u, _ := url.Parse("http://localhost:8000")

	jar, err := NewJarFromFile(path, nil)
	require.NoError(t, err)
	jar.SetCookies(u, []*http.Cookie{
		{Name: "sessionid", Value: "abc"},
		{Name: CSRFCookieName, Value: "tok"},
	})
	require.NoError(t, jar.Close())

	reopened, err := NewJarFromFile(path, nil)
	require.NoError(t, err)
	defer reopened.Close()

	cookies := reopened.Cookies(u)
	values := map[string]string{}
	for _, c := range cookies {
		values[c.Name] = c.Value
	}
	assert.Equal(t, "abc", values["sessionid"])
	assert.Equal(t, "tok", values[CSRFCookieName])
}

func TestJarDropsExpiredOnRestore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.db")
	u, _ := url.Parse("http://localhost:8000")

	jar, err := NewJarFromFile(path, nil)
	require.NoError(t, err)
	jar.SetCookies(u, []*http.Cookie{
		{Name: "keep", Value: "1", Expires: time.Now().Add(time.Hour)},
		{Name: "stale", Value: "1", Expires: time.Now().Add(time.Millisecond)},
	})
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, jar.Close())

	reopened, err := NewJarFromFile(path, nil)
	require.NoError(t, err)
	defer reopened.Close()

	names := map[string]bool{}
	for _, c := range reopened.Cookies(u) {
		names[c.Name] = true
	}
	assert.True(t, names["keep"])
	assert.False(t, names["stale"])
}

func TestJarDeletionRemovesPersistedCookie(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.db")
	u, _ := url.Parse("http://localhost:8000")

	jar, err := NewJarFromFile(path, nil)
	require.NoError(t, err)
	jar.SetCookies(u, []*http.Cookie{{Name: "sessionid", Value: "abc"}})
	// A MaxAge<0 cookie is how the server logs the client out.
	jar.SetCookies(u, []*http.Cookie{{Name: "sessionid", Value: "", MaxAge: -1}})
	require.NoError(t, jar.Close())

	reopened, err := NewJarFromFile(path, nil)
	require.NoError(t, err)
	defer reopened.Close()

	for _, c := range reopened.Cookies(u) {
		assert.NotEqual(t, "sessionid", c.Name)
	}
}

func TestJarWarnsWhenPersistenceFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.db")
	u, _ := url.Parse("http://localhost:8000")

	var logOutput bytes.Buffer
	jar, err := NewJarFromFile(path, nil,
		WithJarLogger(slog.New(slog.NewTextHandler(&logOutput, nil))))
	require.NoError(t, err)

	// Closing the database makes every subsequent write fail.
	require.NoError(t, jar.Close())
	jar.SetCookies(u, []*http.Cookie{{Name: "sessionid", Value: "abc"}})

	assert.Contains(t, logOutput.String(), "failed to persist cookies")

	// The in-memory jar still serves the cookie for this process.
	require.Len(t, jar.Cookies(u), 1)
	assert.Equal(t, "sessionid", jar.Cookies(u)[0].Name)
}

func TestJarHostsAreIsolated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.db")
	a, _ := url.Parse("http://a.example.com")
	b, _ := url.Parse("http://b.example.com")

	jar, err := NewJarFromFile(path, nil)
	require.NoError(t, err)
	defer jar.Close()

	jar.SetCookies(a, []*http.Cookie{{Name: "sessionid", Value: "for-a"}})
	assert.Empty(t, jar.Cookies(b))
}
