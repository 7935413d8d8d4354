package transport

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"time"

	"go.etcd.io/bbolt"
)

var cookiesBucket = []byte("cookies")

// JarOption configures a Jar.
type JarOption func(*Jar)

// WithJarLogger sets the structured logger. If not set, output is discarded.
func WithJarLogger(logger *slog.Logger) JarOption {
	return func(j *Jar) {
		j.logger = logger
	}
}

// Jar is a cookie jar that mirrors every update into a bbolt bucket so that
// sessions survive process restarts, the way a browser's cookie store does.
// Lookups are served from the in-memory jar; the database is only touched on
// writes and at open time.
type Jar struct {
	mu     sync.Mutex
	inner  http.CookieJar
	db     *bbolt.DB
	logger *slog.Logger
}

var _ http.CookieJar = (*Jar)(nil)

// NewJar builds a persistent jar on top of an open bbolt database and
// restores any cookies saved by a previous run. Expired cookies are dropped
// during restore.
func NewJar(db *bbolt.DB, opts ...JarOption) (*Jar, error) {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}
	j := &Jar{
		inner:  inner,
		db:     db,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(j)
	}
	if err := j.restore(); err != nil {
		return nil, fmt.Errorf("restoring cookies: %w", err)
	}
	return j, nil
}

// NewJarFromFile opens a bbolt database at the given path and returns a
// persistent jar backed by it. Close releases the database.
func NewJarFromFile(path string, options *bbolt.Options, opts ...JarOption) (*Jar, error) {
	db, err := bbolt.Open(path, 0o600, options)
	if err != nil {
		return nil, fmt.Errorf("opening cookie db: %w", err)
	}
	return NewJar(db, opts...)
}

// Close closes the underlying database.
func (j *Jar) Close() error {
	return j.db.Close()
}

// SetCookies stores the cookies in memory and merges them into the persisted
// set for the URL's host. Cookies without an expiry are kept until the
// server overwrites or deletes them.
func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.inner.SetCookies(u, cookies)

	key := hostKey(u)
	err := j.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(cookiesBucket)
		if err != nil {
			return err
		}
		merged := make(map[string]*http.Cookie)
		if data := b.Get([]byte(key)); data != nil {
			var previous []*http.Cookie
			if err := json.Unmarshal(data, &previous); err == nil {
				for _, cookie := range previous {
					merged[cookie.Name] = cookie
				}
			}
		}
		for _, cookie := range cookies {
			if cookie.MaxAge < 0 || expired(cookie) {
				delete(merged, cookie.Name)
				continue
			}
			merged[cookie.Name] = cookie
		}
		out := make([]*http.Cookie, 0, len(merged))
		for _, cookie := range merged {
			out = append(out, cookie)
		}
		data, err := json.Marshal(out)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), data)
	})
	if err != nil {
		// The in-memory jar already holds the cookies; losing persistence
		// only costs the next run a fresh login.
		j.logger.Warn("failed to persist cookies",
			slog.String("host", key), slog.Any("error", err))
	}
}

// Cookies returns the cookies to send for the URL.
func (j *Jar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.inner.Cookies(u)
}

func (j *Jar) restore() error {
	return j.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(cookiesBucket)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			u, err := url.Parse(string(k))
			if err != nil {
				return nil
			}
			var cookies []*http.Cookie
			if err := json.Unmarshal(v, &cookies); err != nil {
				return nil
			}
			live := cookies[:0]
			for _, cookie := range cookies {
				if expired(cookie) {
					continue
				}
				live = append(live, cookie)
			}
			j.inner.SetCookies(u, live)
			return nil
		})
	})
}

func hostKey(u *url.URL) string {
	return u.Scheme + "://" + u.Host
}

func expired(cookie *http.Cookie) bool {
	return !cookie.Expires.IsZero() && cookie.Expires.Before(time.Now())
}
