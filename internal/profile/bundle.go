package profile

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

// DefaultExportFilename is used when no profile name is available.
const DefaultExportFilename = "learn-python-export.json"

// Bundle is a self-describing snapshot of one identity's state,
// serializable to a single JSON document.
type Bundle struct {
	ExportedAt string         `json:"exportedAt"`
	UserID     string         `json:"userId"`
	Profile    *Identity      `json:"profile,omitempty"`
	Progress   ProgressRecord `json:"progress,omitempty"`
	QuizStats  QuizStats      `json:"quizStats,omitempty"`
}

// MarshalPretty renders the bundle as the 2-space-indented JSON document
// written to export files.
func (b *Bundle) MarshalPretty() ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

// Export assembles a bundle for id. The active identity is included
// when its id matches; otherwise a Guest stand-in carries the id.
// Missing progress or stats become empty mappings, never a failure.
func (s *Store) Export(id string) (*Bundle, error) {
	prof := Identity{ID: id, Name: "Guest", Email: ""}
	if active, err := s.ActiveIdentity(); err == nil && active.ID == id {
		prof = active
	}

	progress, err := s.Progress(id)
	if err != nil {
		return nil, err
	}
	stats, err := s.QuizStats(id)
	if err != nil {
		return nil, err
	}

	return &Bundle{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		UserID:     id,
		Profile:    &prof,
		Progress:   progress,
		QuizStats:  stats,
	}, nil
}

// Import parses raw as a bundle and writes its contents. It fails with
// ErrInvalidFormat before any mutation when raw is not valid JSON or
// lacks a non-empty userId.
//
// Progress and quizStats are written under bundle.userId while the
// profile (when present) is stored verbatim as the active identity,
// with no email normalization or id re-derivation. The writes are
// deliberately independent: a bundle may carry progress for one id
// alongside a different display identity, and the store does not
// cross-validate them.
func (s *Store) Import(raw []byte) (*Bundle, error) {
	var b Bundle
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("%w: not valid JSON: %v", ErrInvalidFormat, err)
	}
	if b.UserID == "" {
		return nil, fmt.Errorf("%w: missing userId field", ErrInvalidFormat)
	}

	if b.Progress != nil {
		if err := s.SetProgress(b.UserID, b.Progress); err != nil {
			return nil, err
		}
	}
	if b.QuizStats != nil {
		if err := s.SetQuizStats(b.UserID, b.QuizStats); err != nil {
			return nil, err
		}
	}
	if b.Profile != nil {
		if err := s.write(keyProfile, b.Profile); err != nil {
			return nil, err
		}
	}

	return &b, nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// ExportFilename builds the download filename for an export:
// "<name-with-hyphens>-<id>.json", with "progress" standing in for a
// blank name. With no identity at all it falls back to the generic
// DefaultExportFilename.
func ExportFilename(name, id string) string {
	if name == "" && id == "" {
		return DefaultExportFilename
	}
	if name == "" {
		name = "progress"
	}
	return whitespaceRun.ReplaceAllString(name, "-") + "-" + id + ".json"
}
