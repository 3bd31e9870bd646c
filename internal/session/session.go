package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Hamidziya/crm-edfront/internal/models"
)

// ErrNotLoggedIn is returned when a command needs a session and none
// is stored.
var ErrNotLoggedIn = errors.New("not logged in, run 'leadctl login' first")

// Session is the authentication context handed to every API caller:
// the bearer token plus the profile returned at sign-in. It replaces
// ambient browser storage with an explicit login/logout lifecycle.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// IsAdmin reports whether the signed-in account has the admin role.
func (s *Session) IsAdmin() bool {
	return s.User.Role == models.RoleAdmin
}

// Store persists the session to a single JSON file.
type Store struct {
	path string
}

// NewStore creates a session store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted session. ErrNotLoggedIn is returned when
// no session file exists or the stored token is empty.
func (st *Store) Load() (*Session, error) {
	f, err := os.Open(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}
	defer f.Close()

	var s Session
	if err := json.NewDecoder(f).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	if s.Token == "" {
		return nil, ErrNotLoggedIn
	}
	return &s, nil
}

// Save writes the session, creating the parent directory if needed.
// The file is user-only: it holds a bearer token.
func (st *Store) Save(s *Session) error {
	dir := filepath.Dir(st.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	f, err := os.OpenFile(st.path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open session file for writing: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	return encoder.Encode(s)
}

// Clear removes the persisted session. Clearing an absent session is
// not an error.
func (st *Store) Clear() error {
	if err := os.Remove(st.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
