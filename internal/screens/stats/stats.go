package stats

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpy/internal/catalog"
	"github.com/abhisek/learnpy/internal/quiz"
	"github.com/abhisek/learnpy/internal/screen"
	"github.com/abhisek/learnpy/internal/ui/components"
	"github.com/abhisek/learnpy/internal/ui/layout"
	"github.com/abhisek/learnpy/internal/ui/theme"
)

// StatsScreen shows the active learner's progress and quiz accuracy.
type StatsScreen struct {
	cat *catalog.Catalog
	svc *quiz.Service
	sum quiz.Summary
	err error
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a stats screen.
func New(cat *catalog.Catalog, svc *quiz.Service) *StatsScreen {
	s := &StatsScreen{cat: cat, svc: svc}
	s.sum, s.err = svc.Summarize()
	return s
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(screen.StatsChangedMsg); ok {
		s.sum, s.err = s.svc.Summarize()
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.err != nil {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Incorrect.Render("could not load stats: " + s.err.Error()))
	}

	var b strings.Builder

	total := s.cat.Len()
	b.WriteString(theme.Title.Render("Your progress") + "\n\n")

	bar := components.NewProgressBar(
		fmt.Sprintf("Lessons %d/%d", s.sum.Completed, total),
		percent(s.sum.Completed, total), true, 48)
	b.WriteString(bar.View() + "\n\n")

	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"Quiz answers: %d correct of %d (%.0f%%)",
		s.sum.Correct, s.sum.Attempts, s.sum.Accuracy()*100)) + "\n")

	if len(s.sum.PerLesson) > 0 {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("By lesson") + "\n")

		keys := make([]string, 0, len(s.sum.PerLesson))
		for k := range s.sum.PerLesson {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, key := range keys {
			ls := s.sum.PerLesson[key]
			title := key
			if id, err := catalog.ParseKey(key); err == nil {
				if lesson, ok := s.cat.Lesson(id); ok {
					title = lesson.Title
				}
			}
			b.WriteString(theme.Body.Render(fmt.Sprintf(
				"  %-30s %d/%d correct", title, ls.Correct, ls.Attempts)) + "\n")
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.Card.Render(b.String()))
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
