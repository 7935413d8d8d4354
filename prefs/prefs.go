// Package prefs persists the handful of client-side settings that survive
// restarts: the theme preference and the saved login used to rehydrate the
// session store.
package prefs

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/adaeze/nairamart/session"
)

// Theme is the display theme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// ParseTheme maps stored or user-provided text to a Theme. Anything
// unrecognized falls back to system.
func ParseTheme(s string) Theme {
	switch Theme(s) {
	case ThemeLight, ThemeDark, ThemeSystem:
		return Theme(s)
	}
	return ThemeSystem
}

// Effective resolves the system theme against the host's dark-mode hint.
func (t Theme) Effective(systemDark bool) Theme {
	if t != ThemeSystem {
		return t
	}
	if systemDark {
		return ThemeDark
	}
	return ThemeLight
}

var (
	settingsBucket = []byte("settings")
	themeKey       = []byte("theme")
	savedLoginKey  = []byte("saved_login")
)

// Store reads and writes persisted settings backed by a bbolt database.
type Store struct {
	db *bbolt.DB
}

// NewStore returns a Store over an open bbolt database.
func NewStore(db *bbolt.DB) *Store {
	return &Store{db: db}
}

// NewStoreFromFile opens a bbolt database at the given path and returns a
// new Store.
func NewStoreFromFile(path string, options *bbolt.Options) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, options)
	if err != nil {
		return nil, fmt.Errorf("opening prefs db: %w", err)
	}
	return NewStore(db), nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Theme returns the persisted theme preference, defaulting to system.
func (s *Store) Theme() (Theme, error) {
	theme := ThemeSystem
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(settingsBucket)
		if b == nil {
			return nil
		}
		if v := b.Get(themeKey); v != nil {
			theme = ParseTheme(string(v))
		}
		return nil
	})
	if err != nil {
		return ThemeSystem, err
	}
	return theme, nil
}

// SetTheme persists the theme preference.
func (s *Store) SetTheme(t Theme) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(settingsBucket)
		if err != nil {
			return err
		}
		return b.Put(themeKey, []byte(t))
	})
}

// SavedLogin returns the identity remembered from the last successful
// login, or nil when none is saved.
func (s *Store) SavedLogin() (*session.Identity, error) {
	var user *session.Identity
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(settingsBucket)
		if b == nil {
			return nil
		}
		data := b.Get(savedLoginKey)
		if data == nil {
			return nil
		}
		var id session.Identity
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		user = &id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// SetSavedLogin remembers the identity of the logged-in user so the next
// run can rehydrate the session alongside the persisted cookies.
func (s *Store) SetSavedLogin(user session.Identity) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(settingsBucket)
		if err != nil {
			return err
		}
		data, err := json.Marshal(user)
		if err != nil {
			return err
		}
		return b.Put(savedLoginKey, data)
	})
}

// ClearSavedLogin forgets the remembered identity.
func (s *Store) ClearSavedLogin() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(settingsBucket)
		if b == nil {
			return nil
		}
		return b.Delete(savedLoginKey)
	})
}
