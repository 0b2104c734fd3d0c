package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpy/internal/catalog"
	"github.com/abhisek/learnpy/internal/profile"
	"github.com/abhisek/learnpy/internal/quiz"
	"github.com/abhisek/learnpy/internal/router"
	"github.com/abhisek/learnpy/internal/screen"
	"github.com/abhisek/learnpy/internal/screens/account"
	"github.com/abhisek/learnpy/internal/screens/browse"
	"github.com/abhisek/learnpy/internal/screens/stats"
	"github.com/abhisek/learnpy/internal/ui/components"
	"github.com/abhisek/learnpy/internal/ui/theme"
)

// HomeScreen is the main screen of the application.
type HomeScreen struct {
	store         *profile.Store
	svc           *quiz.Service
	cat           *catalog.Catalog
	playgroundURL string

	menu      components.Menu
	learner   string
	completed int
	attempts  int
	accuracy  float64
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(cat *catalog.Catalog, store *profile.Store, svc *quiz.Service, playgroundURL string) *HomeScreen {
	h := &HomeScreen{
		store:         store,
		svc:           svc,
		cat:           cat,
		playgroundURL: playgroundURL,
	}
	h.refresh()

	items := []components.MenuItem{
		{Label: "LESSONS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: browse.New(cat, svc, playgroundURL)}
			}
		}},
		{Label: "QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: browse.NewQuizPicker(cat, svc)}
			}
		}},
		{Label: "STATS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(cat, svc)}
			}
		}},
		{Label: "PROFILE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: account.New(store)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) refresh() {
	identity, err := h.store.ActiveIdentity()
	if err == nil {
		h.learner = identity.Name
	}
	if h.learner == "" {
		h.learner = "Guest"
	}

	sum, err := h.svc.Summarize()
	if err != nil {
		return
	}
	h.completed = sum.Completed
	h.attempts = sum.Attempts
	h.accuracy = sum.Accuracy()
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(screen.StatsChangedMsg); ok {
		h.refresh()
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("learnpy"))
	sections = append(sections, theme.Subtitle.Render("Learn Python in your terminal"))

	greeting := fmt.Sprintf("Welcome back, %s!", h.learner)
	sections = append(sections, theme.Body.Render(greeting))

	statsLine := fmt.Sprintf("%d/%d lessons complete", h.completed, h.cat.Len())
	if h.attempts > 0 {
		statsLine += fmt.Sprintf("   quiz accuracy %.0f%%", h.accuracy*100)
	}
	sections = append(sections, theme.Hint.Render(statsLine))

	sections = append(sections, "")
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
