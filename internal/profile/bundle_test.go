package profile

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/learnpy/internal/kv"
)

func TestExportEmptyIdentity(t *testing.T) {
	s, _ := newTestStore(t)

	b, err := s.Export("user_nobody")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if b.UserID != "user_nobody" {
		t.Errorf("userId = %q", b.UserID)
	}
	if b.Profile == nil || b.Profile.ID != "user_nobody" || b.Profile.Name != "Guest" {
		t.Errorf("profile = %+v, want guest stand-in with the id", b.Profile)
	}
	if len(b.Progress) != 0 || len(b.QuizStats) != 0 {
		t.Error("expected empty mappings for unknown id")
	}
	if _, err := time.Parse(time.RFC3339, b.ExportedAt); err != nil {
		t.Errorf("exportedAt %q is not RFC 3339: %v", b.ExportedAt, err)
	}
}

func TestExportIncludesMatchingActiveIdentity(t *testing.T) {
	s, _ := newTestStore(t)

	jane := Identity{Name: "Jane", Email: "jane@example.com", ID: DeriveID("jane@example.com")}
	if err := s.SetActiveIdentity(jane); err != nil {
		t.Fatalf("set identity: %v", err)
	}

	b, err := s.Export(jane.ID)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if *b.Profile != jane {
		t.Errorf("profile = %+v, want active identity", b.Profile)
	}

	// Exporting a different id gets a stand-in, not the active identity.
	other, err := s.Export("user_other")
	if err != nil {
		t.Fatalf("export other: %v", err)
	}
	if other.Profile.Name != "Guest" || other.Profile.ID != "user_other" {
		t.Errorf("profile = %+v, want stand-in", other.Profile)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src, _ := newTestStore(t)
	id := DeriveID("jane@example.com")

	progress := ProgressRecord{"3": true, "7": true}
	stats := QuizStats{"3": {Attempts: 2, Correct: 1}}
	if err := src.SetActiveIdentity(Identity{Name: "Jane", Email: "jane@example.com", ID: id}); err != nil {
		t.Fatalf("set identity: %v", err)
	}
	if err := src.SetProgress(id, progress); err != nil {
		t.Fatalf("set progress: %v", err)
	}
	if err := src.SetQuizStats(id, stats); err != nil {
		t.Fatalf("set stats: %v", err)
	}

	b, err := src.Export(id)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	raw, err := b.MarshalPretty()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// Import into a fresh store reproduces the state.
	dst := New(kv.NewMem())
	got, err := dst.Import(raw)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if got.UserID != id {
		t.Errorf("imported userId = %q, want %q", got.UserID, id)
	}

	gotProgress, err := dst.Progress(id)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if !reflect.DeepEqual(gotProgress, progress) {
		t.Errorf("progress = %v, want %v", gotProgress, progress)
	}
	gotStats, err := dst.QuizStats(id)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !reflect.DeepEqual(gotStats, stats) {
		t.Errorf("stats = %v, want %v", gotStats, stats)
	}
	active, err := dst.ActiveIdentity()
	if err != nil {
		t.Fatalf("active identity: %v", err)
	}
	if active.Name != "Jane" {
		t.Errorf("active identity = %+v, want imported profile", active)
	}
}

func TestImportRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "not json"},
		{"missing userId", `{"progress":{}}`},
		{"empty userId", `{"userId":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := kv.NewMem()
			s := New(mem)

			_, err := s.Import([]byte(tt.raw))
			if !errors.Is(err, ErrInvalidFormat) {
				t.Fatalf("err = %v, want ErrInvalidFormat", err)
			}
			// Validation happens before any write.
			if mem.Len() != 0 {
				t.Errorf("store mutated by failed import (%d keys)", mem.Len())
			}
		})
	}
}

func TestImportErrorMessagesDistinguishReasons(t *testing.T) {
	s := New(kv.NewMem())

	_, err := s.Import([]byte("not json"))
	if err == nil || !strings.Contains(err.Error(), "not valid JSON") {
		t.Errorf("err = %v, want JSON parse reason", err)
	}

	_, err = s.Import([]byte(`{"progress":{}}`))
	if err == nil || !strings.Contains(err.Error(), "userId") {
		t.Errorf("err = %v, want missing-userId reason", err)
	}
}

func TestImportOverwritesWholesale(t *testing.T) {
	s := New(kv.NewMem())
	if err := s.SetProgress("user_abc", ProgressRecord{"1": true, "2": true}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err := s.Import([]byte(`{"userId":"user_abc","progress":{"9":true}}`))
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	got, err := s.Progress("user_abc")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	want := ProgressRecord{"9": true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("progress = %v, want %v (import overwrites, never merges)", got, want)
	}
}

func TestImportSkipsAbsentSections(t *testing.T) {
	s := New(kv.NewMem())
	if err := s.SetProgress("user_abc", ProgressRecord{"1": true}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// A bundle without progress leaves existing progress alone.
	_, err := s.Import([]byte(`{"userId":"user_abc","quizStats":{"1":{"attempts":1,"correct":1}}}`))
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	got, err := s.Progress("user_abc")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if !got["1"] {
		t.Error("progress overwritten by bundle that carried none")
	}
}

// The original site writes bundle.progress under bundle.userId but
// adopts bundle.profile as the active identity without checking that
// profile.id matches. That decoupling is kept on purpose: importing
// another learner's progress while keeping your own display identity is
// allowed.
func TestImportProfileIndependentOfUserID(t *testing.T) {
	s := New(kv.NewMem())

	raw := `{
		"userId": "user_data_owner",
		"profile": {"name": "Someone Else", "email": "else@example.com", "id": "user_else"},
		"progress": {"5": true}
	}`
	if _, err := s.Import([]byte(raw)); err != nil {
		t.Fatalf("import: %v", err)
	}

	rec, err := s.Progress("user_data_owner")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if !rec["5"] {
		t.Error("progress not stored under bundle.userId")
	}

	active, err := s.ActiveIdentity()
	if err != nil {
		t.Fatalf("active identity: %v", err)
	}
	if active.ID != "user_else" {
		t.Errorf("active id = %q, want profile.id adopted unchanged", active.ID)
	}
}

func TestImportStoresProfileVerbatim(t *testing.T) {
	s := New(kv.NewMem())

	// Unlike SetActiveIdentity, import does not normalize the email or
	// re-derive the id; the profile lands exactly as exported.
	raw := `{
		"userId": "user_original",
		"profile": {"name": "Jane", "email": "Jane@Example.com", "id": "user_original"}
	}`
	if _, err := s.Import([]byte(raw)); err != nil {
		t.Fatalf("import: %v", err)
	}

	active, err := s.ActiveIdentity()
	if err != nil {
		t.Fatalf("active identity: %v", err)
	}
	if active.Email != "Jane@Example.com" {
		t.Errorf("email = %q, want stored without normalization", active.Email)
	}
	if active.ID != "user_original" {
		t.Errorf("id = %q, want stored id untouched", active.ID)
	}
}

func TestMarshalPrettyUsesTwoSpaceIndent(t *testing.T) {
	b := &Bundle{ExportedAt: "2026-08-28T00:00:00Z", UserID: "user_abc"}
	raw, err := b.MarshalPretty()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), "\n  \"userId\"") {
		t.Errorf("expected 2-space indentation, got:\n%s", raw)
	}
	if !json.Valid(raw) {
		t.Error("output is not valid JSON")
	}
}

func TestExportFilename(t *testing.T) {
	tests := []struct {
		name, id, want string
	}{
		{"Jane Doe", "user_abc", "Jane-Doe-user_abc.json"},
		{"Jane  van  Doe", "user_abc", "Jane-van-Doe-user_abc.json"},
		{"", "user_abc", "progress-user_abc.json"},
		{"", "", "learn-python-export.json"},
	}
	for _, tt := range tests {
		got := ExportFilename(tt.name, tt.id)
		if got != tt.want {
			t.Errorf("ExportFilename(%q, %q) = %q, want %q", tt.name, tt.id, got, tt.want)
		}
	}
}

// Full scenario from the site's workflow: sign in, complete a lesson,
// export, import on a fresh install.
func TestScenarioSignInCompleteExportImport(t *testing.T) {
	s := New(kv.NewMem())

	email := "Jane@Example.com"
	id := DeriveID(email)
	if err := s.SetActiveIdentity(Identity{Name: "Jane", Email: email}); err != nil {
		t.Fatalf("set identity: %v", err)
	}
	active, err := s.ActiveIdentity()
	if err != nil {
		t.Fatalf("active identity: %v", err)
	}
	if active.ID != id || active.Email != "jane@example.com" {
		t.Fatalf("active = %+v", active)
	}

	// Completing lesson 3.
	rec, err := s.Progress(id)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	rec["3"] = true
	if err := s.SetProgress(id, rec); err != nil {
		t.Fatalf("set progress: %v", err)
	}

	b, err := s.Export(id)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if b.UserID != id {
		t.Errorf("export userId = %q, want derived id %q", b.UserID, id)
	}

	raw, err := b.MarshalPretty()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	fresh := New(kv.NewMem())
	if _, err := fresh.Import(raw); err != nil {
		t.Fatalf("import: %v", err)
	}
	got, err := fresh.Progress(id)
	if err != nil {
		t.Fatalf("progress on fresh store: %v", err)
	}
	if !got["3"] {
		t.Error("lesson 3 completion lost in export/import round trip")
	}
}
