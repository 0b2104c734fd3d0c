package account

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpy/internal/profile"
	"github.com/abhisek/learnpy/internal/screen"
	"github.com/abhisek/learnpy/internal/ui/components"
	"github.com/abhisek/learnpy/internal/ui/layout"
	"github.com/abhisek/learnpy/internal/ui/theme"
)

// AccountScreen edits the active identity. Saving re-derives the
// identity id from the email, which switches the progress namespace.
type AccountScreen struct {
	store  *profile.Store
	name   components.TextInput
	email  components.TextInput
	focus  int // 0 = name, 1 = email
	id     string
	notice string
}

var _ screen.Screen = (*AccountScreen)(nil)
var _ screen.KeyHintProvider = (*AccountScreen)(nil)

// New creates an account screen seeded from the stored identity. The
// guest default stays out of the inputs, "Guest" is placeholder only.
func New(store *profile.Store) *AccountScreen {
	identity, _ := store.ActiveIdentity()

	name := identity.Name
	if identity.ID == profile.GuestID {
		name = ""
	}

	a := &AccountScreen{
		store: store,
		name:  components.NewTextInput("Name ", "Guest", name, 40),
		email: components.NewTextInput("Email", "you@example.com", identity.Email, 80),
		id:    identity.ID,
	}
	a.email.Blur()
	return a
}

func (a *AccountScreen) Init() tea.Cmd {
	return a.name.Focus()
}

func (a *AccountScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "shift+tab":
			a.notice = ""
			if a.focus == 0 {
				a.focus = 1
				a.name.Blur()
				return a, a.email.Focus()
			}
			a.focus = 0
			a.email.Blur()
			return a, a.name.Focus()

		case "enter":
			return a, a.save()

		case "ctrl+x":
			if err := a.store.ClearActiveIdentity(); err != nil {
				a.notice = "sign out failed: " + err.Error()
				return a, nil
			}
			guest := profile.Guest()
			a.name = components.NewTextInput("Name ", "Guest", "", 40)
			a.email = components.NewTextInput("Email", "you@example.com", "", 80)
			a.focus = 0
			a.email.Blur()
			a.id = guest.ID
			a.notice = "Signed out. Progress is kept for when you sign back in."
			return a, tea.Batch(
				a.name.Focus(),
				func() tea.Msg { return screen.StatsChangedMsg{} },
			)
		}
	}

	var cmd tea.Cmd
	if a.focus == 0 {
		a.name, cmd = a.name.Update(msg)
	} else {
		a.email, cmd = a.email.Update(msg)
	}
	return a, cmd
}

func (a *AccountScreen) save() tea.Cmd {
	identity := profile.Identity{
		Name:  strings.TrimSpace(a.name.Value()),
		Email: a.email.Value(),
	}
	if err := a.store.SetActiveIdentity(identity); err != nil {
		a.notice = "save failed: " + err.Error()
		return nil
	}

	saved, err := a.store.ActiveIdentity()
	if err != nil {
		a.notice = "save failed: " + err.Error()
		return nil
	}
	a.id = saved.ID
	a.notice = "Profile saved."
	return func() tea.Msg { return screen.StatsChangedMsg{} }
}

func (a *AccountScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Your profile") + "\n\n")
	b.WriteString(a.name.View() + "\n")
	b.WriteString(a.email.View() + "\n\n")
	b.WriteString(theme.Hint.Render("id: "+a.id) + "\n")

	if a.notice != "" {
		b.WriteString("\n" + theme.Body.Render(a.notice))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.Card.Render(b.String()))
}

func (a *AccountScreen) Title() string {
	return "Profile"
}

func (a *AccountScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch field"},
		{Key: "Enter", Description: "Save"},
		{Key: "Ctrl+X", Description: "Sign out"},
		{Key: "Esc", Description: "Back"},
	}
}
