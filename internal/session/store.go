// Package session persists the authentication token and user record between
// runs. Presence of a token is the only client-side check; staleness is
// discovered when an API call comes back unauthorized.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ledgerline/ledgerline/internal/errors"
)

const sessionFile = "session.json"

// User is the authenticated user's record as returned by the login endpoint
type User struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Session holds the opaque API token and the user it belongs to
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Store reads and writes the session file under a base directory
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the standard per-user location, ~/.ledgerline
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeSessionReadFailed, "cannot resolve home directory", err)
	}
	return filepath.Join(home, ".ledgerline"), nil
}

// DefaultStore creates a Store at the standard location
func DefaultStore() (*Store, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return NewStore(dir), nil
}

func (s *Store) path() string {
	return filepath.Join(s.dir, sessionFile)
}

// Save writes the session to disk, creating the directory if needed
func (s *Store) Save(sess Session) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeSessionWriteFailed, "cannot create session directory", err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeSessionWriteFailed, "cannot encode session", err)
	}

	if err := os.WriteFile(s.path(), data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeSessionWriteFailed, "cannot write session file", err)
	}
	return nil
}

// Load reads the session from disk. A missing file yields a not-logged-in error.
func (s *Store) Load() (Session, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, errors.NewNotLoggedInError()
		}
		return Session{}, errors.Wrap(errors.ErrCodeSessionReadFailed, "cannot read session file", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, errors.Wrap(errors.ErrCodeSessionCorrupt, "session file is corrupt", err)
	}
	if sess.Token == "" {
		return Session{}, errors.NewNotLoggedInError()
	}
	return sess, nil
}

// Active reports whether a token is present. It is an existence check only;
// the token may still be rejected by the server.
func (s *Store) Active() bool {
	sess, err := s.Load()
	return err == nil && sess.Token != ""
}

// Clear removes the session file. Clearing an absent session is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeSessionWriteFailed, "cannot remove session file", err)
	}
	return nil
}

// Require is the route guard: it returns the session or a not-logged-in error
// before any protected operation runs.
func (s *Store) Require() (Session, error) {
	return s.Load()
}
