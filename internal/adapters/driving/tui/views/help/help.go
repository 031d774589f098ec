// Package help provides the keybinding reference view for the TUI.
package help

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/recipe-book/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/recipe-book/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/recipe-book/internal/adapters/driving/tui/styles"
)

var groupTitles = []string{"Form", "Table", "General"}

// View lists every keybinding.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	width  int
	height int
}

// NewView creates a new help view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{styles: s, keymap: km}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update returns to the recipes view on esc, q or ?.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q", "?":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewRecipes}
			}
		}
	}
	return v, nil
}

// View renders the help screen.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Keybindings"))
	b.WriteString("\n")

	for i, group := range v.keymap.FullHelp() {
		b.WriteString("\n")
		if i < len(groupTitles) {
			b.WriteString(v.styles.Subtitle.Render(groupTitles[i]))
			b.WriteString("\n")
		}
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-12s %s\n", h.Key, v.styles.Muted.Render(h.Desc)))
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("esc: back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
