package kv

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteGetMissing(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Get("nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for missing key")
	}
}

func TestSQLiteSetGet(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set("userProfile", `{"name":"Jane"}`); err != nil {
		t.Fatalf("set: %v", err)
	}

	v, ok, err := s.Get("userProfile")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true")
	}
	if v != `{"name":"Jane"}` {
		t.Errorf("value = %q, want %q", v, `{"name":"Jane"}`)
	}
}

func TestSQLiteSetReplaces(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set("k", "first"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set("k", "second"); err != nil {
		t.Fatalf("set again: %v", err)
	}

	v, _, err := s.Get("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v != "second" {
		t.Errorf("value = %q, want %q", v, "second")
	}
}

func TestSQLiteDelete(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set("k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get("k"); ok {
		t.Fatal("expected key to be gone after delete")
	}

	// Deleting an absent key is not an error.
	if err := s.Delete("k"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}

func TestSQLitePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Set("progress:user_guest", `{"3":true}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	v, ok, err := s2.Get("progress:user_guest")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if !ok || v != `{"3":true}` {
		t.Errorf("got (%q, %v), want (%q, true)", v, ok, `{"3":true}`)
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}
