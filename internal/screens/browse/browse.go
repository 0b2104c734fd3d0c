package browse

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpy/internal/catalog"
	"github.com/abhisek/learnpy/internal/quiz"
	"github.com/abhisek/learnpy/internal/router"
	"github.com/abhisek/learnpy/internal/screen"
	lessonscreen "github.com/abhisek/learnpy/internal/screens/lesson"
	"github.com/abhisek/learnpy/internal/screens/quizrun"
	"github.com/abhisek/learnpy/internal/ui/components"
	"github.com/abhisek/learnpy/internal/ui/layout"
	"github.com/abhisek/learnpy/internal/ui/theme"
)

// BrowseScreen lists lessons grouped by category. In quiz mode it
// lists only lessons that carry a quiz and opens the quiz directly.
type BrowseScreen struct {
	cat           *catalog.Catalog
	svc           *quiz.Service
	playgroundURL string
	quizMode      bool
	menu          components.Menu
	headings      map[int]string // menu index -> category heading shown above it
}

var _ screen.Screen = (*BrowseScreen)(nil)
var _ screen.KeyHintProvider = (*BrowseScreen)(nil)

// New creates a lesson browser.
func New(cat *catalog.Catalog, svc *quiz.Service, playgroundURL string) *BrowseScreen {
	return build(cat, svc, playgroundURL, false)
}

// NewQuizPicker creates a browser over lessons that have a quiz; picking
// one starts the quiz straight away.
func NewQuizPicker(cat *catalog.Catalog, svc *quiz.Service) *BrowseScreen {
	return build(cat, svc, "", true)
}

func build(cat *catalog.Catalog, svc *quiz.Service, playgroundURL string, quizMode bool) *BrowseScreen {
	b := &BrowseScreen{
		cat:           cat,
		svc:           svc,
		playgroundURL: playgroundURL,
		quizMode:      quizMode,
		headings:      make(map[int]string),
	}

	var items []components.MenuItem
	for _, group := range cat.Categories() {
		heading := group.Name
		for _, ls := range group.Lessons {
			ls := ls
			if quizMode && len(ls.Quiz) == 0 {
				continue
			}
			if heading != "" {
				b.headings[len(items)] = heading
				heading = ""
			}
			badge := ""
			if done, _ := svc.Completed(catalog.Key(ls.ID)); done {
				badge = "✔"
			}
			items = append(items, components.MenuItem{
				Label: ls.Title,
				Badge: badge,
				Action: func() tea.Cmd {
					return func() tea.Msg {
						if quizMode {
							return router.PushScreenMsg{Screen: quizrun.New(ls, svc)}
						}
						return router.PushScreenMsg{
							Screen: lessonscreen.New(ls, svc, playgroundURL),
						}
					}
				},
			})
		}
	}

	b.menu = components.NewMenu(items)
	return b
}

func (b *BrowseScreen) Init() tea.Cmd {
	return nil
}

func (b *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(screen.StatsChangedMsg); ok {
		// Refresh completion badges when a lesson below us changes state.
		selected := b.menu.Selected
		refreshed := build(b.cat, b.svc, b.playgroundURL, b.quizMode)
		if selected < len(refreshed.menu.Items) {
			refreshed.menu.Selected = selected
		}
		return refreshed, nil
	}

	var cmd tea.Cmd
	b.menu, cmd = b.menu.Update(msg)
	return b, cmd
}

func (b *BrowseScreen) View(width, height int) string {
	var s strings.Builder

	headingStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	for i, item := range b.menu.Items {
		if heading, ok := b.headings[i]; ok {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString("  " + headingStyle.Render(heading) + "\n")
		}
		if i == b.menu.Selected {
			s.WriteString(theme.Selected.Render("  ▸ " + item.Label))
		} else {
			s.WriteString(theme.Unselected.Render("    " + item.Label))
		}
		if item.Badge != "" {
			s.WriteString("  " + theme.Done.Render(item.Badge))
		}
		s.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(s.String())
}

func (b *BrowseScreen) Title() string {
	if b.quizMode {
		return "Quizzes"
	}
	return "Lessons"
}

func (b *BrowseScreen) KeyHints() []layout.KeyHint {
	open := "Open lesson"
	if b.quizMode {
		open = "Start quiz"
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: open},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
