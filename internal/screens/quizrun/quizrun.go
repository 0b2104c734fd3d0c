package quizrun

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpy/internal/catalog"
	"github.com/abhisek/learnpy/internal/quiz"
	"github.com/abhisek/learnpy/internal/router"
	"github.com/abhisek/learnpy/internal/screen"
	"github.com/abhisek/learnpy/internal/ui/components"
	"github.com/abhisek/learnpy/internal/ui/layout"
	"github.com/abhisek/learnpy/internal/ui/theme"
)

// QuizScreen runs a lesson's multiple-choice quiz and records each attempt.
type QuizScreen struct {
	lesson  catalog.Lesson
	svc     *quiz.Service
	current int
	choice  components.MultiChoice
	correct int
	done    bool
	err     error
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen for the given lesson.
func New(lesson catalog.Lesson, svc *quiz.Service) *QuizScreen {
	q := &QuizScreen{
		lesson: lesson,
		svc:    svc,
	}
	if len(lesson.Quiz) > 0 {
		q.choice = newChoice(lesson.Quiz[0])
	} else {
		q.done = true
	}
	return q
}

func newChoice(question catalog.Question) components.MultiChoice {
	return components.NewMultiChoice(question.Text, question.Options, question.Answer)
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return q, nil
	}

	if q.done {
		if kmsg.String() == "enter" {
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return q, nil
	}

	if q.choice.Submitted {
		if kmsg.String() == "enter" {
			return q, q.advance()
		}
		return q, nil
	}

	wasSubmitted := q.choice.Submitted
	var cmd tea.Cmd
	q.choice, cmd = q.choice.Update(msg)

	if q.choice.Submitted && !wasSubmitted {
		ok := q.choice.IsCorrect()
		if ok {
			q.correct++
		}
		if err := q.svc.RecordAttempt(catalog.Key(q.lesson.ID), ok); err != nil {
			q.err = err
		}
		return q, func() tea.Msg { return screen.StatsChangedMsg{} }
	}

	return q, cmd
}

// advance moves to the next question, or finishes the quiz. A perfect
// run marks the lesson complete.
func (q *QuizScreen) advance() tea.Cmd {
	q.current++
	if q.current < len(q.lesson.Quiz) {
		q.choice = newChoice(q.lesson.Quiz[q.current])
		return nil
	}

	q.done = true
	if q.correct == len(q.lesson.Quiz) {
		if err := q.svc.CompleteLesson(catalog.Key(q.lesson.ID)); err != nil {
			q.err = err
		}
	}
	return func() tea.Msg { return screen.StatsChangedMsg{} }
}

func (q *QuizScreen) View(width, height int) string {
	if q.done {
		return q.viewSummary(width, height)
	}

	question := q.lesson.Quiz[q.current]

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(
		fmt.Sprintf("Question %d of %d", q.current+1, len(q.lesson.Quiz))))
	b.WriteString("\n\n")
	b.WriteString(q.choice.View())

	if q.choice.Submitted {
		b.WriteString("\n")
		if q.choice.IsCorrect() {
			b.WriteString(theme.Correct.Render("Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render("Not quite."))
		}
		if question.Explanation != "" {
			b.WriteString("\n" + theme.Hint.Render(question.Explanation))
		}
	}

	if q.err != nil {
		b.WriteString("\n\n" + theme.Incorrect.Render("save failed: "+q.err.Error()))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.Card.Render(b.String()))
}

func (q *QuizScreen) viewSummary(width, height int) string {
	total := len(q.lesson.Quiz)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Quiz complete") + "\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("You got %d out of %d right.", q.correct, total)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Score", percent(q.correct, total), true, 40)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	if total > 0 && q.correct == total {
		b.WriteString(theme.Correct.Render("Lesson marked complete!"))
	} else {
		b.WriteString(theme.Hint.Render("A perfect score marks the lesson complete."))
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

func (q *QuizScreen) Title() string {
	return "Quiz: " + q.lesson.Title
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.done {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back to lesson"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	if q.choice.Submitted {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
