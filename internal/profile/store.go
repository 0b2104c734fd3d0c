// Package profile manages the active identity and per-identity lesson
// progress and quiz statistics, namespaced by derived identity id.
package profile

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/learnpy/internal/kv"
)

// Backing-store keys. Progress and quiz stats are namespaced per
// identity id; the active-identity pointer is a single well-known key.
const keyProfile = "userProfile"

func progressKey(id string) string { return "progress:" + id }
func quizStatsKey(id string) string { return "quizStats:" + id }

// ProgressRecord maps lesson ids to completion state.
type ProgressRecord map[string]bool

// LessonStats holds quiz outcomes for a single lesson.
type LessonStats struct {
	Attempts    int    `json:"attempts"`
	Correct     int    `json:"correct"`
	LastAttempt string `json:"lastAttempt,omitempty"`
	LastSession string `json:"lastSession,omitempty"`
}

// QuizStats maps lesson ids to quiz outcome data.
type QuizStats map[string]LessonStats

// Store owns identity, progress, and quiz-stats persistence over a
// kv.Store. It is an explicit handle: independent stores (for example
// memory-backed ones in tests) can coexist.
type Store struct {
	kv kv.Store
}

// New creates a Store over the given backing store.
func New(backing kv.Store) *Store {
	return &Store{kv: backing}
}

// readState describes the outcome of a keyed read, distinguishing an
// absent key from one whose stored JSON failed to decode. The exported
// accessors collapse both to an empty default.
type readState int

const (
	readHit readState = iota
	readMiss
	readCorrupt
)

// lookup reads key and decodes its JSON value into v.
func (s *Store) lookup(key string, v any) (readState, error) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		return readMiss, fmt.Errorf("read %q: %w", key, err)
	}
	if !ok {
		return readMiss, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return readCorrupt, nil
	}
	return readHit, nil
}

func (s *Store) write(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := s.kv.Set(key, string(raw)); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

// ActiveIdentity returns the currently active identity. When none is
// stored (or the stored value is unreadable) it persists and returns
// the Guest default.
func (s *Store) ActiveIdentity() (Identity, error) {
	var id Identity
	state, err := s.lookup(keyProfile, &id)
	if err != nil {
		return Guest(), err
	}
	if state == readHit && id.ID != "" {
		return id, nil
	}

	guest := Guest()
	if err := s.write(keyProfile, guest); err != nil {
		return guest, err
	}
	return guest, nil
}

// SetActiveIdentity persists identity as the sole active identity. A
// blank id is repaired by deriving from the email, falling back to the
// guest id. Namespaced progress and stats are untouched.
func (s *Store) SetActiveIdentity(identity Identity) error {
	if identity.ID == "" {
		identity.ID = DeriveID(identity.Email)
	}
	identity.Email = NormalizeEmail(identity.Email)
	return s.write(keyProfile, identity)
}

// ClearActiveIdentity removes the active-identity pointer only. The
// previously active identity's progress and stats remain stored and
// become reachable again by re-entering the same email.
func (s *Store) ClearActiveIdentity() error {
	if err := s.kv.Delete(keyProfile); err != nil {
		return fmt.Errorf("clear identity: %w", err)
	}
	return nil
}

// Progress returns the progress record for id. Missing or corrupt
// stored data yields an empty record, never an error from decoding.
func (s *Store) Progress(id string) (ProgressRecord, error) {
	rec := make(ProgressRecord)
	if _, err := s.lookup(progressKey(id), &rec); err != nil {
		return make(ProgressRecord), err
	}
	if rec == nil {
		rec = make(ProgressRecord)
	}
	return rec, nil
}

// SetProgress replaces the entire progress record for id. Callers
// wanting incremental updates read, modify, and write back.
func (s *Store) SetProgress(id string, rec ProgressRecord) error {
	return s.write(progressKey(id), rec)
}

// QuizStats returns the quiz statistics for id, empty when absent.
func (s *Store) QuizStats(id string) (QuizStats, error) {
	stats := make(QuizStats)
	if _, err := s.lookup(quizStatsKey(id), &stats); err != nil {
		return make(QuizStats), err
	}
	if stats == nil {
		stats = make(QuizStats)
	}
	return stats, nil
}

// SetQuizStats replaces the entire quiz-stats record for id.
func (s *Store) SetQuizStats(id string, stats QuizStats) error {
	return s.write(quizStatsKey(id), stats)
}

// Reset deletes id's progress and quiz stats. When id is the active
// identity, the identity pointer is cleared too.
func (s *Store) Reset(id string) error {
	if err := s.kv.Delete(progressKey(id)); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	if err := s.kv.Delete(quizStatsKey(id)); err != nil {
		return fmt.Errorf("reset quiz stats: %w", err)
	}
	active, err := s.ActiveIdentity()
	if err != nil {
		return err
	}
	if active.ID == id {
		return s.ClearActiveIdentity()
	}
	return nil
}
