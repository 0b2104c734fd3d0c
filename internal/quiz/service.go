// Package quiz records quiz attempts and lesson completion against the
// active identity's namespaced records.
package quiz

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/learnpy/internal/profile"
)

// Service wraps a profile.Store with read-modify-write helpers. The
// store itself only replaces whole records; incremental updates live
// here.
type Service struct {
	store *profile.Store

	// sessionID tags every attempt recorded by this Service instance.
	sessionID string
}

// NewService creates a Service bound to store with a fresh session id.
func NewService(store *profile.Store) *Service {
	return &Service{
		store:     store,
		sessionID: uuid.New().String(),
	}
}

// SessionID returns the id tagged onto attempts from this service.
func (s *Service) SessionID() string {
	return s.sessionID
}

func (s *Service) activeID() (string, error) {
	identity, err := s.store.ActiveIdentity()
	if err != nil {
		return "", fmt.Errorf("resolve active identity: %w", err)
	}
	return identity.ID, nil
}

// RecordAttempt adds one quiz attempt for lessonID to the active
// identity's stats.
func (s *Service) RecordAttempt(lessonID string, correct bool) error {
	id, err := s.activeID()
	if err != nil {
		return err
	}

	stats, err := s.store.QuizStats(id)
	if err != nil {
		return err
	}

	ls := stats[lessonID]
	ls.Attempts++
	if correct {
		ls.Correct++
	}
	ls.LastAttempt = time.Now().UTC().Format(time.RFC3339)
	ls.LastSession = s.sessionID
	stats[lessonID] = ls

	return s.store.SetQuizStats(id, stats)
}

// CompleteLesson marks lessonID complete for the active identity.
func (s *Service) CompleteLesson(lessonID string) error {
	id, err := s.activeID()
	if err != nil {
		return err
	}

	rec, err := s.store.Progress(id)
	if err != nil {
		return err
	}
	rec[lessonID] = true
	return s.store.SetProgress(id, rec)
}

// Completed reports whether lessonID is marked complete.
func (s *Service) Completed(lessonID string) (bool, error) {
	id, err := s.activeID()
	if err != nil {
		return false, err
	}
	rec, err := s.store.Progress(id)
	if err != nil {
		return false, err
	}
	return rec[lessonID], nil
}

// Summary aggregates the active identity's completion and accuracy.
type Summary struct {
	Completed int
	Attempts  int
	Correct   int
	PerLesson map[string]profile.LessonStats
}

// Accuracy returns overall quiz accuracy in [0, 1], 0 when unattempted.
func (sum Summary) Accuracy() float64 {
	if sum.Attempts == 0 {
		return 0
	}
	return float64(sum.Correct) / float64(sum.Attempts)
}

// Summarize computes the active identity's summary.
func (s *Service) Summarize() (Summary, error) {
	id, err := s.activeID()
	if err != nil {
		return Summary{}, err
	}

	rec, err := s.store.Progress(id)
	if err != nil {
		return Summary{}, err
	}
	stats, err := s.store.QuizStats(id)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{PerLesson: stats}
	for _, done := range rec {
		if done {
			sum.Completed++
		}
	}
	for _, ls := range stats {
		sum.Attempts += ls.Attempts
		sum.Correct += ls.Correct
	}
	return sum, nil
}
