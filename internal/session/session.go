package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"reframe-cli/internal/config"
)

// State is the persisted client-side session: the bearer token plus the
// one-shot date handoff for the record browser.
type State struct {
	Token string `json:"token,omitempty"`
	// FilterDate (YYYY-MM-DD) is consumed and cleared by the next record
	// browser load.
	FilterDate string `json:"filterDate,omitempty"`
}

// Store owns the session file. A token's presence is trusted as "session
// valid" at startup; staleness is only discovered when the records API
// returns 401, at which point Clear is called and the user re-authenticates.
type Store struct {
	dir   string
	state State
}

func Open() (*Store, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	s := &Store{dir: dir}
	b, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(b, &s.state); err != nil {
		// A corrupt session file should not brick the client; start logged out.
		s.state = State{}
	}
	return s, nil
}

func (s *Store) path() string {
	return filepath.Join(s.dir, "session.json")
}

func (s *Store) Token() string { return s.state.Token }

func (s *Store) Active() bool { return strings.TrimSpace(s.state.Token) != "" }

func (s *Store) SetToken(token string) error {
	s.state.Token = strings.TrimSpace(token)
	return s.save()
}

// Clear drops the token but keeps any pending filter date.
func (s *Store) Clear() error {
	s.state.Token = ""
	return s.save()
}

var errBadDate = errors.New("filter date must be YYYY-MM-DD")

func (s *Store) SetFilterDate(date string) error {
	date = strings.TrimSpace(date)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return errBadDate
	}
	s.state.FilterDate = date
	return s.save()
}

// FilterDate peeks at the pending filter date without consuming it.
func (s *Store) FilterDate() string { return s.state.FilterDate }

// TakeFilterDate returns the pending filter date and clears it, so a filtered
// browse happens exactly once per handoff.
func (s *Store) TakeFilterDate() string {
	date := s.state.FilterDate
	if date == "" {
		return ""
	}
	s.state.FilterDate = ""
	_ = s.save()
	return date
}

func (s *Store) save() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(&s.state, "", "  ")
	if err != nil {
		return err
	}
	f, err := os.CreateTemp(s.dir, "session.json.*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// The token is a credential; keep the file private.
	_ = os.Chmod(tmp, 0o600)
	return os.Rename(tmp, s.path())
}
