package lesson

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpy/internal/catalog"
	"github.com/abhisek/learnpy/internal/playground"
	"github.com/abhisek/learnpy/internal/quiz"
	"github.com/abhisek/learnpy/internal/router"
	"github.com/abhisek/learnpy/internal/screen"
	"github.com/abhisek/learnpy/internal/screens/quizrun"
	"github.com/abhisek/learnpy/internal/ui/layout"
	"github.com/abhisek/learnpy/internal/ui/theme"
)

// LessonScreen shows a single lesson: its content, sample code, and
// exercises. The sample code can be copied to the clipboard or turned
// into a shareable playground link.
type LessonScreen struct {
	lesson        catalog.Lesson
	svc           *quiz.Service
	playgroundURL string

	completed     bool
	showHints     bool
	showSolutions bool
	notice        string
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a lesson screen.
func New(lesson catalog.Lesson, svc *quiz.Service, playgroundURL string) *LessonScreen {
	done, _ := svc.Completed(catalog.Key(lesson.ID))
	return &LessonScreen{
		lesson:        lesson,
		svc:           svc,
		playgroundURL: playgroundURL,
		completed:     done,
	}
}

func (l *LessonScreen) Init() tea.Cmd {
	return nil
}

func (l *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	l.notice = ""

	switch kmsg.String() {
	case "c":
		if l.lesson.Code == "" {
			return l, nil
		}
		if err := playground.Copy(l.lesson.Code); err != nil {
			l.notice = "copy failed: " + err.Error()
		} else {
			l.notice = "Code copied to clipboard."
		}
	case "p":
		if l.lesson.Code == "" {
			return l, nil
		}
		l.notice = "Playground: " + playground.BuildURL(l.playgroundURL, l.lesson.Code)
	case "h":
		l.showHints = !l.showHints
	case "s":
		l.showSolutions = !l.showSolutions
	case "m":
		if err := l.svc.CompleteLesson(catalog.Key(l.lesson.ID)); err != nil {
			l.notice = "save failed: " + err.Error()
			return l, nil
		}
		l.completed = true
		l.notice = "Lesson marked complete."
		return l, func() tea.Msg { return screen.StatsChangedMsg{} }
	case "q":
		if len(l.lesson.Quiz) == 0 {
			return l, nil
		}
		return l, func() tea.Msg {
			return router.PushScreenMsg{Screen: quizrun.New(l.lesson, l.svc)}
		}
	}

	return l, nil
}

func (l *LessonScreen) View(width, height int) string {
	var b strings.Builder

	title := l.lesson.Title
	if l.completed {
		title += "  " + theme.Done.Render("✔ completed")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(title))
	b.WriteString("\n" + theme.Subtitle.Render(l.lesson.Category) + "\n\n")

	b.WriteString(theme.Body.Render(l.lesson.Content) + "\n")

	if l.lesson.Code != "" {
		b.WriteString("\n" + theme.Code.Render(l.lesson.Code) + "\n")
	}

	if len(l.lesson.Exercises) > 0 {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Exercises") + "\n")
		for i, ex := range l.lesson.Exercises {
			b.WriteString(theme.Body.Render(exerciseLine(i, ex)) + "\n")
			if ex.StarterCode != "" {
				b.WriteString(theme.Code.Render(ex.StarterCode) + "\n")
			}
			if l.showHints && ex.Hint != "" {
				b.WriteString(theme.Hint.Render("   hint: "+ex.Hint) + "\n")
			}
			if l.showSolutions && ex.Solution != "" {
				b.WriteString(theme.Code.Render(ex.Solution) + "\n")
			}
		}
	}

	if l.notice != "" {
		b.WriteString("\n" + theme.Hint.Render(l.notice))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(b.String())
}

func exerciseLine(i int, ex catalog.Exercise) string {
	return fmt.Sprintf("%d. %s", i+1, ex.Prompt)
}

func (l *LessonScreen) Title() string {
	return l.lesson.Title
}

func (l *LessonScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if l.lesson.Code != "" {
		hints = append(hints,
			layout.KeyHint{Key: "c", Description: "Copy code"},
			layout.KeyHint{Key: "p", Description: "Playground link"},
		)
	}
	if len(l.lesson.Exercises) > 0 {
		hints = append(hints,
			layout.KeyHint{Key: "h", Description: "Hints"},
			layout.KeyHint{Key: "s", Description: "Solutions"},
		)
	}
	hints = append(hints, layout.KeyHint{Key: "m", Description: "Mark complete"})
	if len(l.lesson.Quiz) > 0 {
		hints = append(hints, layout.KeyHint{Key: "q", Description: "Take quiz"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}
