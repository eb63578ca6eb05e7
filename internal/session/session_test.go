package session

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	t.Setenv("REFRAME_CONFIG_DIR", t.TempDir())
	s, err := Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func TestTokenPersistsAcrossOpens(t *testing.T) {
	s := openTestStore(t)
	if s.Active() {
		t.Fatalf("fresh store should be logged out")
	}
	if err := s.SetToken("  tok-1  "); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	reopened, err := Open()
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.Token() != "tok-1" {
		t.Fatalf("token = %q, want trimmed tok-1", reopened.Token())
	}
	if !reopened.Active() {
		t.Fatalf("store with token should be active")
	}
}

func TestClearKeepsFilterDate(t *testing.T) {
	s := openTestStore(t)
	if err := s.SetToken("tok"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	if err := s.SetFilterDate("2026-08-29"); err != nil {
		t.Fatalf("SetFilterDate: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	reopened, err := Open()
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.Active() {
		t.Fatalf("cleared store should be logged out")
	}
	if got := reopened.TakeFilterDate(); got != "2026-08-29" {
		t.Fatalf("filter date = %q, want it to survive logout", got)
	}
}

func TestSetFilterDate_RejectsBadDates(t *testing.T) {
	s := openTestStore(t)
	for _, bad := range []string{"", "29-08-2026", "2026/08/29", "tomorrow", "2026-13-01"} {
		if err := s.SetFilterDate(bad); err == nil {
			t.Fatalf("%q should be rejected", bad)
		}
	}
}

func TestTakeFilterDate_IsOneShot(t *testing.T) {
	s := openTestStore(t)
	if err := s.SetFilterDate("2026-08-29"); err != nil {
		t.Fatalf("SetFilterDate: %v", err)
	}
	if got := s.TakeFilterDate(); got != "2026-08-29" {
		t.Fatalf("first take = %q", got)
	}
	if got := s.TakeFilterDate(); got != "" {
		t.Fatalf("second take = %q, want empty", got)
	}

	// The consumption must be durable, not just in-memory.
	reopened, err := Open()
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got := reopened.TakeFilterDate(); got != "" {
		t.Fatalf("take after reopen = %q, want empty", got)
	}
}

func TestOpen_CorruptFileStartsLoggedOut(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("REFRAME_CONFIG_DIR", dir)
	if err := os.WriteFile(filepath.Join(dir, "session.json"), []byte("{nope"), 0o600); err != nil {
		t.Fatalf("writing corrupt file: %v", err)
	}

	s, err := Open()
	if err != nil {
		t.Fatalf("Open should tolerate a corrupt file, got %v", err)
	}
	if s.Active() {
		t.Fatalf("corrupt session must start logged out")
	}
}
