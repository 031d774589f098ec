// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/recipe-book/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/recipe-book/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateSaving  State = "saving"
	StateError   State = "error"
	StateHelp    State = "help"
)

// Hints selects which keybinding hints the bar shows.
type Hints int

const (
	HintsShort Hints = iota
	HintsForm
	HintsTable
)

// Bar displays application status and keybinding hints.
type Bar struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	state       State
	hints       Hints
	message     string
	recipeCount int
	width       int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - s.styles.StatusBar.GetHorizontalFrameSize() -
		lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Loading recipes...")
	case StateSaving:
		return s.styles.Warning.Render("Saving...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateHelp:
		return s.styles.Normal.Render("Help")
	case StateReady:
		if s.message != "" {
			return s.styles.Success.Render(s.message)
		}
	}
	return s.styles.Normal.Render(countLabel(s.recipeCount))
}

func countLabel(n int) string {
	switch n {
	case 0:
		return "No recipes"
	case 1:
		return "1 recipe"
	default:
		return fmt.Sprintf("%d recipes", n)
	}
}

func (s *Bar) renderRight() string {
	var bindings []key.Binding
	switch s.hints {
	case HintsForm:
		bindings = s.keymap.FormHelp()
	case HintsTable:
		bindings = s.keymap.TableHelp()
	default:
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetHints selects the keybinding hints to show.
func (s *Bar) SetHints(h Hints) {
	s.hints = h
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetError switches to the error state with the error's text.
func (s *Bar) SetError(err error) {
	s.state = StateError
	s.message = err.Error()
}

// SetRecipeCount sets the number of recipes shown.
func (s *Bar) SetRecipeCount(count int) {
	s.recipeCount = count
}

// RecipeCount returns the current recipe count.
func (s *Bar) RecipeCount() int {
	return s.recipeCount
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the state and message. The recipe count is kept.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
